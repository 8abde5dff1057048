package model

import (
	"fmt"
	"time"
)

// Option is a value/label pair for selects and checkbox groups.
type Option struct {
	Value string
	Label string
}

func LabelFor(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

var (
	WorkoutGoalOptions = []Option{
		{"weight-loss", "Weight Loss"},
		{"muscle-gain", "Muscle Gain"},
		{"strength", "Strength"},
		{"endurance", "Endurance"},
		{"flexibility", "Flexibility"},
		{"general-fitness", "General Fitness"},
	}
	FitnessLevelOptions = []Option{
		{"beginner", "Beginner"},
		{"intermediate", "Intermediate"},
		{"advanced", "Advanced"},
	}
	EquipmentOptions = []Option{
		{"none", "No Equipment"},
		{"dumbbells", "Dumbbells"},
		{"barbell", "Barbell"},
		{"kettlebell", "Kettlebell"},
		{"resistance-bands", "Resistance Bands"},
		{"pull-up-bar", "Pull-up Bar"},
		{"bench", "Bench"},
		{"treadmill", "Treadmill"},
	}
	FocusAreaOptions = []Option{
		{"upper-body", "Upper Body"},
		{"lower-body", "Lower Body"},
		{"core", "Core"},
		{"cardio", "Cardio"},
		{"flexibility", "Flexibility"},
		{"full-body", "Full Body"},
	}

	NutritionGoalOptions = []Option{
		{"weight-loss", "Weight Loss"},
		{"muscle-gain", "Muscle Gain"},
		{"maintenance", "Maintenance"},
		{"performance", "Athletic Performance"},
		{"health", "General Health"},
	}
	GenderOptions = []Option{
		{"male", "Male"},
		{"female", "Female"},
		{"other", "Other"},
		{"prefer-not-to-say", "Prefer not to say"},
	}
	ActivityLevelOptions = []Option{
		{"sedentary", "Sedentary (little or no exercise)"},
		{"light", "Lightly active (light exercise 1-3 days/week)"},
		{"moderate", "Moderately active (moderate exercise 3-5 days/week)"},
		{"active", "Very active (hard exercise 6-7 days/week)"},
		{"very-active", "Extra active (very hard exercise & physical job)"},
	}
	DietaryRestrictionOptions = []Option{
		{"vegetarian", "Vegetarian"},
		{"vegan", "Vegan"},
		{"gluten-free", "Gluten-Free"},
		{"dairy-free", "Dairy-Free"},
		{"nut-free", "Nut-Free"},
		{"keto", "Keto"},
		{"paleo", "Paleo"},
	}

	TimeframeOptions = []Option{
		{"1-month", "Last Month"},
		{"3-months", "Last 3 Months"},
		{"6-months", "Last 6 Months"},
		{"1-year", "Last Year"},
	}
)

// Short badge labels for activity levels on the nutrition results.
var activityLevelBadges = map[string]string{
	"sedentary":   "Sedentary",
	"light":       "Lightly Active",
	"moderate":    "Moderately Active",
	"active":      "Very Active",
	"very-active": "Extra Active",
}

type WorkoutPlanRequest struct {
	Goal            string   `form:"goal" json:"goal" validate:"required,oneof=weight-loss muscle-gain strength endurance flexibility general-fitness" msg:"Please select a fitness goal."`
	FitnessLevel    string   `form:"fitness_level" json:"fitness_level" validate:"required,oneof=beginner intermediate advanced" msg:"Please select your fitness level."`
	WorkoutsPerWeek int      `form:"workouts_per_week" json:"workouts_per_week" validate:"min=1,max=7"`
	TimePerWorkout  int      `form:"time_per_workout" json:"time_per_workout" validate:"min=15,max=120"`
	Equipment       []string `form:"equipment" json:"equipment" validate:"omitempty,dive,oneof=none dumbbells barbell kettlebell resistance-bands pull-up-bar bench treadmill"`
	FocusAreas      []string `form:"focus_areas" json:"focus_areas" validate:"min=1,dive,oneof=upper-body lower-body core cardio flexibility full-body" msg:"Please select at least one focus area."`
}

func DefaultWorkoutPlanRequest() WorkoutPlanRequest {
	return WorkoutPlanRequest{WorkoutsPerWeek: 3, TimePerWorkout: 45}
}

func (r WorkoutPlanRequest) Badges() []string {
	return []string{
		LabelFor(WorkoutGoalOptions, r.Goal),
		LabelFor(FitnessLevelOptions, r.FitnessLevel),
		fmt.Sprintf("%dx Weekly", r.WorkoutsPerWeek),
		fmt.Sprintf("%d min", r.TimePerWorkout),
	}
}

type NutritionRequest struct {
	Goal                string   `form:"goal" json:"goal" validate:"required,oneof=weight-loss muscle-gain maintenance performance health" msg:"Please select a nutrition goal."`
	Weight              float64  `form:"weight" json:"weight" validate:"min=30,max=250"`
	Height              float64  `form:"height" json:"height" validate:"min=100,max=250"`
	Age                 int      `form:"age" json:"age" validate:"min=18,max=100"`
	Gender              string   `form:"gender" json:"gender" validate:"required,oneof=male female other prefer-not-to-say" msg:"Please select your gender."`
	ActivityLevel       string   `form:"activity_level" json:"activity_level" validate:"required,oneof=sedentary light moderate active very-active" msg:"Please select your activity level."`
	DietaryRestrictions []string `form:"dietary_restrictions" json:"dietary_restrictions" validate:"omitempty,dive,oneof=vegetarian vegan gluten-free dairy-free nut-free keto paleo"`
}

func DefaultNutritionRequest() NutritionRequest {
	return NutritionRequest{Weight: 70, Height: 175, Age: 30}
}

func (r NutritionRequest) Badges() []string {
	level, ok := activityLevelBadges[r.ActivityLevel]
	if !ok {
		level = r.ActivityLevel
	}
	return []string{
		LabelFor(NutritionGoalOptions, r.Goal),
		fmt.Sprintf("%s, %d years", LabelFor(GenderOptions, r.Gender), r.Age),
		fmt.Sprintf("%g kg, %g cm", r.Weight, r.Height),
		level,
	}
}

type ProgressRequest struct {
	Timeframe string `form:"timeframe" json:"timeframe" validate:"required,oneof=1-month 3-months 6-months 1-year" msg:"Please select a timeframe."`
}

func DefaultProgressRequest() ProgressRequest {
	return ProgressRequest{Timeframe: "3-months"}
}

// Narrative is rendered markdown attached to a generated result.
type Narrative struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

type Exercise struct {
	Name         string `json:"name"`
	Prescription string `json:"prescription"`
}

type WorkoutDay struct {
	Title       string     `json:"title"`
	Weekday     string     `json:"weekday"`
	DurationMin int        `json:"duration_min"`
	Exercises   []Exercise `json:"exercises"`
}

type WorkoutPlan struct {
	Badges          []string     `json:"badges"`
	Days            []WorkoutDay `json:"days"`
	Recommendations Narrative    `json:"recommendations"`
}

type MacroSummary struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

type MealItem struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type Meal struct {
	Name  string     `json:"name"`
	Time  string     `json:"time"`
	Items []MealItem `json:"items"`
}

func (m Meal) Calories() int {
	total := 0
	for _, item := range m.Items {
		total += item.Calories
	}
	return total
}

type Food struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type FoodGroup struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Foods       []Food `json:"foods"`
}

type Supplement struct {
	Name           string `json:"name"`
	Purpose        string `json:"purpose"`
	Recommendation string `json:"recommendation"`
}

type NutritionPlan struct {
	Badges      []string     `json:"badges"`
	Summary     MacroSummary `json:"summary"`
	Meals       []Meal       `json:"meals"`
	FoodGroups  []FoodGroup  `json:"food_groups"`
	Supplements []Supplement `json:"supplements"`
	Note        Narrative    `json:"note"`
}

type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// MaxValue returns the largest value across all series, used to scale bars.
func MaxValue(series []Series) float64 {
	m := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	return m
}

type Highlight struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

type ProgressSection struct {
	Key             string   `json:"key"`
	Tab             string   `json:"tab"`
	Title           string   `json:"title"`
	AnalysisTitle   string   `json:"analysis_title"`
	Labels          []string `json:"labels"`
	Series          []Series `json:"series"`
	Analysis        []string `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

type ProgressReport struct {
	Timeframe  string            `json:"timeframe"`
	Highlights []Highlight       `json:"highlights"`
	Sections   []ProgressSection `json:"sections"`
	Summary    Narrative         `json:"summary"`
}

const (
	JobKindWorkoutPlan = "workout-plan"
	JobKindNutrition   = "nutrition"
	JobKindProgress    = "progress"
)

const (
	JobStatusPending = "pending"
	JobStatusReady   = "ready"
)

// GenerationJob is one placeholder "AI" generation. It starts pending and
// becomes ready once, carrying the result for its kind.
type GenerationJob struct {
	ID        string              `json:"id"`
	Kind      string              `json:"kind"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	ReadyAt   *time.Time          `json:"ready_at,omitempty"`
	Workout   *WorkoutPlanRequest `json:"workout_request,omitempty"`
	Nutrition *NutritionRequest   `json:"nutrition_request,omitempty"`
	Progress  *ProgressRequest    `json:"progress_request,omitempty"`
	Result    *GenerationResult   `json:"result,omitempty"`
}

func (j *GenerationJob) IsReady() bool {
	return j.Status == JobStatusReady
}

type GenerationResult struct {
	WorkoutPlan    *WorkoutPlan    `json:"workout_plan,omitempty"`
	NutritionPlan  *NutritionPlan  `json:"nutrition_plan,omitempty"`
	ProgressReport *ProgressReport `json:"progress_report,omitempty"`
}
