package model

import "time"

var (
	WeightUnitOptions      = []Option{{"kg", "Kilograms (kg)"}, {"lbs", "Pounds (lbs)"}}
	HeightUnitOptions      = []Option{{"cm", "Centimeters (cm)"}, {"ft", "Feet and inches (ft)"}}
	DistanceUnitOptions    = []Option{{"km", "Kilometers (km)"}, {"miles", "Miles"}}
	TemperatureUnitOptions = []Option{{"celsius", "Celsius (°C)"}, {"fahrenheit", "Fahrenheit (°F)"}}

	VisibilityOptions = []Option{
		{"public", "Public"},
		{"friends", "Friends Only"},
		{"private", "Private"},
	}

	ExportFormatOptions = []Option{{"csv", "CSV"}, {"json", "JSON"}}
	DateRangeOptions    = []Option{
		{"all", "All Time"},
		{"last-month", "Last Month"},
		{"last-3-months", "Last 3 Months"},
		{"last-year", "Last Year"},
		{"custom", "Custom Range"},
	}
)

type UnitsPreferences struct {
	WeightUnit      string `form:"weight_unit" json:"weight_unit" validate:"required,oneof=kg lbs" msg:"Please select a weight unit."`
	HeightUnit      string `form:"height_unit" json:"height_unit" validate:"required,oneof=cm ft" msg:"Please select a height unit."`
	DistanceUnit    string `form:"distance_unit" json:"distance_unit" validate:"required,oneof=km miles" msg:"Please select a distance unit."`
	TemperatureUnit string `form:"temperature_unit" json:"temperature_unit" validate:"required,oneof=celsius fahrenheit" msg:"Please select a temperature unit."`
}

func DefaultUnitsPreferences() UnitsPreferences {
	return UnitsPreferences{WeightUnit: "kg", HeightUnit: "cm", DistanceUnit: "km", TemperatureUnit: "celsius"}
}

type PrivacyPreferences struct {
	ProfileVisibility   string `form:"profile_visibility" json:"profile_visibility" validate:"required,oneof=public friends private" msg:"Please select a profile visibility."`
	ActivitySharing     bool   `form:"activity_sharing" json:"activity_sharing"`
	GoalSharing         bool   `form:"goal_sharing" json:"goal_sharing"`
	AllowDataCollection bool   `form:"allow_data_collection" json:"allow_data_collection"`
}

func DefaultPrivacyPreferences() PrivacyPreferences {
	return PrivacyPreferences{ProfileVisibility: "friends", ActivitySharing: true, GoalSharing: false, AllowDataCollection: true}
}

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

const (
	DateRangeAll         = "all"
	DateRangeLastMonth   = "last-month"
	DateRangeLast3Months = "last-3-months"
	DateRangeLastYear    = "last-year"
	DateRangeCustom      = "custom"
)

type ExportRequest struct {
	Format             string `form:"format" json:"format" validate:"required,oneof=csv json" msg:"Please select an export format."`
	DateRange          string `form:"date_range" json:"date_range" validate:"required,oneof=all last-month last-3-months last-year custom" msg:"Please select a date range."`
	IncludeActivities  bool   `form:"include_activities" json:"include_activities"`
	IncludeGoals       bool   `form:"include_goals" json:"include_goals" validate:"required_without_all=IncludeActivities IncludeBodyMetrics" msg:"Select at least one kind of data to export."`
	IncludeBodyMetrics bool   `form:"include_body_metrics" json:"include_body_metrics"`
}

func DefaultExportRequest() ExportRequest {
	return ExportRequest{
		Format:             ExportFormatCSV,
		DateRange:          DateRangeAll,
		IncludeActivities:  true,
		IncludeGoals:       true,
		IncludeBodyMetrics: true,
	}
}

// Since returns the lower bound of the range relative to now. The zero time
// means no bound; "custom" has no bounds of its own and exports everything.
func (r ExportRequest) Since(now time.Time) time.Time {
	switch r.DateRange {
	case DateRangeLastMonth:
		return now.AddDate(0, -1, 0)
	case DateRangeLast3Months:
		return now.AddDate(0, -3, 0)
	case DateRangeLastYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

const (
	ExportStatusPending = "pending"
	ExportStatusReady   = "ready"
	ExportStatusFailed  = "failed"
)

// Export records a requested data export and where its file ended up.
type Export struct {
	ID          string     `db:"id"`
	Format      string     `db:"format"`
	DateRange   string     `db:"date_range"`
	Sections    string     `db:"sections"`
	Status      string     `db:"status"`
	StoragePath string     `db:"storage_path"`
	Error       string     `db:"error"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}
