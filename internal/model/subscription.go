package model

import "fmt"

const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Plan describes the workspace's subscription tier. There is no billing;
// the settings page only shows what the current plan includes.
type Plan struct {
	ID        string
	Name      string
	Amount    int // cents per month
	Currency  string
	GoalLimit int // -1 means unlimited
	Features  []string
}

var FreePlan = Plan{
	ID:        PlanFree,
	Name:      "Free Plan",
	Currency:  "usd",
	GoalLimit: -1,
	Features: []string{
		"Unlimited goals and activities",
		"AI workout, nutrition and progress plans",
		"CSV and JSON data exports",
	},
}

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
}

// Price formats the monthly amount, e.g. "$0" or "$12".
func (p Plan) Price() string {
	symbol, ok := currencySymbols[p.Currency]
	if !ok {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.0f", symbol, float64(p.Amount)/100)
}

func (p Plan) IsPaid() bool {
	return p.Amount > 0
}
