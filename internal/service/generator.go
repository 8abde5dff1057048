package service

import (
	"github.com/templui/fittrack/internal/model"
)

// Generator produces the placeholder "AI" results. Every plan is fixed; only
// the badges reflect the submitted form.
type Generator struct {
	content *ContentService
}

func NewGenerator(content *ContentService) *Generator {
	return &Generator{content: content}
}

func (g *Generator) WorkoutPlan(req model.WorkoutPlanRequest) *model.WorkoutPlan {
	return &model.WorkoutPlan{
		Badges: req.Badges(),
		Days: []model.WorkoutDay{
			{
				Title:       "Day 1: Upper Body",
				Weekday:     "Monday",
				DurationMin: 45,
				Exercises: []model.Exercise{
					{Name: "Bench Press", Prescription: "3 sets x 8-10 reps"},
					{Name: "Bent Over Rows", Prescription: "3 sets x 10-12 reps"},
					{Name: "Shoulder Press", Prescription: "3 sets x 8-10 reps"},
					{Name: "Bicep Curls", Prescription: "3 sets x 12 reps"},
					{Name: "Tricep Extensions", Prescription: "3 sets x 12 reps"},
				},
			},
			{
				Title:       "Day 2: Lower Body",
				Weekday:     "Wednesday",
				DurationMin: 45,
				Exercises: []model.Exercise{
					{Name: "Squats", Prescription: "4 sets x 8-10 reps"},
					{Name: "Romanian Deadlifts", Prescription: "3 sets x 10 reps"},
					{Name: "Leg Press", Prescription: "3 sets x 12 reps"},
					{Name: "Calf Raises", Prescription: "3 sets x 15 reps"},
					{Name: "Leg Curls", Prescription: "3 sets x 12 reps"},
				},
			},
			{
				Title:       "Day 3: Full Body",
				Weekday:     "Friday",
				DurationMin: 45,
				Exercises: []model.Exercise{
					{Name: "Deadlifts", Prescription: "3 sets x 6-8 reps"},
					{Name: "Pull-ups", Prescription: "3 sets x 8-10 reps"},
					{Name: "Push-ups", Prescription: "3 sets x 12-15 reps"},
					{Name: "Lunges", Prescription: "3 sets x 10 reps each leg"},
					{Name: "Plank", Prescription: "3 sets x 45 seconds"},
				},
			},
		},
		Recommendations: g.content.Narrative("workout-recommendations"),
	}
}

func (g *Generator) NutritionPlan(req model.NutritionRequest) *model.NutritionPlan {
	return &model.NutritionPlan{
		Badges:  req.Badges(),
		Summary: model.MacroSummary{Calories: 2650, ProteinG: 175, CarbsG: 265, FatG: 88},
		Meals: []model.Meal{
			{Name: "Breakfast", Time: "7:00 - 8:00 AM", Items: []model.MealItem{
				{Name: "Oatmeal with berries and nuts", Calories: 350},
				{Name: "Greek yogurt", Calories: 150},
				{Name: "Protein shake", Calories: 150},
			}},
			{Name: "Lunch", Time: "12:00 - 1:00 PM", Items: []model.MealItem{
				{Name: "Grilled chicken breast", Calories: 250},
				{Name: "Brown rice", Calories: 200},
				{Name: "Mixed vegetables", Calories: 100},
				{Name: "Olive oil (1 tbsp)", Calories: 120},
				{Name: "Apple", Calories: 80},
			}},
			{Name: "Snack", Time: "3:30 - 4:00 PM", Items: []model.MealItem{
				{Name: "Protein bar", Calories: 200},
				{Name: "Banana", Calories: 100},
			}},
			{Name: "Dinner", Time: "7:00 - 8:00 PM", Items: []model.MealItem{
				{Name: "Salmon fillet", Calories: 300},
				{Name: "Sweet potato", Calories: 150},
				{Name: "Steamed broccoli", Calories: 50},
				{Name: "Quinoa", Calories: 120},
				{Name: "Olive oil (1 tbsp)", Calories: 120},
			}},
			{Name: "Evening Snack", Time: "9:30 PM", Items: []model.MealItem{
				{Name: "Cottage cheese", Calories: 150},
				{Name: "Almonds (small handful)", Calories: 100},
			}},
		},
		FoodGroups: []model.FoodGroup{
			{
				Title:       "Protein Sources",
				Description: "High-quality protein foods to support muscle growth",
				Foods: []model.Food{
					{Name: "Chicken Breast", Note: "Lean protein source, low in fat"},
					{Name: "Salmon", Note: "Rich in protein and omega-3 fatty acids"},
					{Name: "Greek Yogurt", Note: "High protein, contains probiotics"},
					{Name: "Eggs", Note: "Complete protein with essential nutrients"},
					{Name: "Lean Beef", Note: "Rich in protein, iron, and B vitamins"},
				},
			},
			{
				Title:       "Carbohydrate Sources",
				Description: "Quality carbs for energy and recovery",
				Foods: []model.Food{
					{Name: "Brown Rice", Note: "Complex carbs with fiber"},
					{Name: "Sweet Potatoes", Note: "Rich in vitamins and slow-digesting carbs"},
					{Name: "Oatmeal", Note: "Provides sustained energy and fiber"},
					{Name: "Quinoa", Note: "Complete protein and complex carbs"},
					{Name: "Fruits", Note: "Natural sugars, vitamins, and antioxidants"},
				},
			},
			{
				Title:       "Healthy Fats",
				Description: "Essential fats for hormone production and health",
				Foods: []model.Food{
					{Name: "Avocados", Note: "Monounsaturated fats and fiber"},
					{Name: "Nuts and Seeds", Note: "Healthy fats, protein, and micronutrients"},
					{Name: "Olive Oil", Note: "Rich in monounsaturated fats"},
					{Name: "Fatty Fish", Note: "Omega-3 fatty acids for heart health"},
				},
			},
			{
				Title:       "Vegetables and Micronutrients",
				Description: "Essential vitamins and minerals for optimal health",
				Foods: []model.Food{
					{Name: "Leafy Greens", Note: "Rich in vitamins, minerals, and antioxidants"},
					{Name: "Cruciferous Vegetables", Note: "Broccoli, cauliflower, brussels sprouts"},
					{Name: "Bell Peppers", Note: "High in vitamin C and antioxidants"},
					{Name: "Berries", Note: "Antioxidants and lower in sugar"},
				},
			},
		},
		Supplements: []model.Supplement{
			{
				Name:           "Protein Powder",
				Purpose:        "Helps meet daily protein requirements for muscle growth and recovery.",
				Recommendation: "1-2 scoops (25-50g) daily, preferably post-workout or between meals.",
			},
			{
				Name:           "Creatine Monohydrate",
				Purpose:        "Enhances strength, power, and muscle growth during high-intensity exercise.",
				Recommendation: "5g daily, timing doesn't matter significantly.",
			},
			{
				Name:           "Vitamin D",
				Purpose:        "Important for bone health, immune function, and hormone regulation.",
				Recommendation: "1000-2000 IU daily, especially if limited sun exposure.",
			},
			{
				Name:           "Omega-3 Fish Oil",
				Purpose:        "Supports heart health, reduces inflammation, and may aid recovery.",
				Recommendation: "1-2g combined EPA/DHA daily with meals.",
			},
		},
		Note: g.content.Narrative("nutrition-note"),
	}
}

// Section keys of the progress report.
const (
	ProgressSectionPerformance     = "performance"
	ProgressSectionWorkouts        = "workouts"
	ProgressSectionBodyComposition = "body-composition"
)

func (g *Generator) ProgressReport(req model.ProgressRequest) *model.ProgressReport {
	summary := g.content.Narrative("progress-summary")

	return &model.ProgressReport{
		Timeframe: model.LabelFor(model.TimeframeOptions, req.Timeframe),
		Highlights: []model.Highlight{
			{Title: "Overall Progress", Value: "8.5/10", Detail: "You're making excellent progress! Your consistency is paying off."},
			{Title: "Strength Gains", Value: "+15%", Detail: "Your strength has increased significantly in the last 3 months."},
			{Title: "Body Composition", Value: "+4kg/-4kg", Detail: "You've gained 4kg of muscle while losing 4kg of fat. Great recomposition!"},
		},
		Sections: []model.ProgressSection{
			{
				Key:           ProgressSectionPerformance,
				Tab:           "Performance",
				Title:         "Performance Metrics",
				AnalysisTitle: "AI Analysis",
				Labels:        []string{"Jan", "Feb", "Mar", "Apr", "May"},
				Series: []model.Series{
					{Name: "Strength", Color: "purple", Values: []float64{65, 68, 72, 75, 80}},
					{Name: "Endurance", Color: "emerald", Values: []float64{70, 72, 75, 78, 82}},
					{Name: "Recovery", Color: "blue", Values: []float64{75, 73, 74, 76, 78}},
				},
				Analysis: []string{
					"Your strength metrics have improved by 23% over the past 3 months.",
					"Endurance has shown steady improvement, with a 17% increase.",
					"Recovery scores indicate good adaptation to your training load.",
				},
				Recommendations: []string{
					"Consider increasing training volume for continued strength gains.",
					"Add one more HIIT session per week to further improve endurance.",
					"Maintain your current recovery protocols as they're working well.",
				},
			},
			{
				Key:           ProgressSectionWorkouts,
				Tab:           "Workouts",
				Title:         "Workout Distribution",
				AnalysisTitle: "Workout Analysis",
				Labels:        []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"},
				Series: []model.Series{
					{Name: "Running", Color: "emerald", Values: []float64{12, 15, 18, 16, 20}},
					{Name: "Weightlifting", Color: "purple", Values: []float64{8, 10, 12, 15, 16}},
					{Name: "Yoga", Color: "amber", Values: []float64{3, 4, 5, 6, 7}},
				},
				Analysis: []string{
					"Your workout consistency has improved by 35% over the past 5 weeks.",
					"Weightlifting sessions have doubled, contributing to your strength gains.",
					"The addition of yoga has improved your flexibility and recovery.",
				},
				Recommendations: []string{
					"Maintain your current workout distribution as it's well-balanced.",
					"Consider adding one more yoga session for enhanced recovery.",
					"Gradually increase the intensity of your running sessions.",
				},
			},
			{
				Key:           ProgressSectionBodyComposition,
				Tab:           "Body Composition",
				Title:         "Body Composition Changes",
				AnalysisTitle: "Body Composition Analysis",
				Labels:        BodyMetricLabels,
				Series:        BodyMetricSeries(),
				Analysis: []string{
					"Your body weight has decreased by 2.5kg over the past 5 months.",
					"Muscle mass has increased by 4kg, indicating successful body recomposition.",
					"Body fat percentage has decreased from 18% to 14%.",
				},
				Recommendations: []string{
					"Continue your current nutrition plan as it's supporting muscle growth.",
					"Consider increasing protein intake slightly to support further muscle development.",
					"Maintain your current caloric intake as your body composition is improving.",
				},
			},
		},
		Summary: summary,
	}
}

// BodyMetricLabels are the months of the recorded body measurements.
var BodyMetricLabels = []string{"Jan", "Feb", "Mar", "Apr", "May"}

// BodyMetricSeries returns the recorded body measurements. They are also the
// body metrics included in data exports.
func BodyMetricSeries() []model.Series {
	return []model.Series{
		{Name: "Weight (kg)", Color: "blue", Values: []float64{75, 74, 73.5, 73, 72.5}},
		{Name: "Muscle Mass (kg)", Color: "purple", Values: []float64{32, 33, 34, 35, 36}},
		{Name: "Body Fat (%)", Color: "amber", Values: []float64{18, 17, 16, 15, 14}},
	}
}

// Result builds the result for a job from its stored request.
func (g *Generator) Result(job *model.GenerationJob) *model.GenerationResult {
	result := &model.GenerationResult{}
	switch job.Kind {
	case model.JobKindWorkoutPlan:
		if job.Workout != nil {
			result.WorkoutPlan = g.WorkoutPlan(*job.Workout)
		}
	case model.JobKindNutrition:
		if job.Nutrition != nil {
			result.NutritionPlan = g.NutritionPlan(*job.Nutrition)
		}
	case model.JobKindProgress:
		if job.Progress != nil {
			result.ProgressReport = g.ProgressReport(*job.Progress)
		}
	}
	return result
}
