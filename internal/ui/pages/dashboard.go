package pages

import (
	"strconv"
	"time"

	"github.com/templui/fittrack/internal/service"
)

type DashboardPage struct {
	*service.Dashboard
	Today time.Time
}

var tipAccents = map[string]string{
	"emerald": "border-emerald-200 bg-emerald-50 text-emerald-900",
	"blue":    "border-blue-200 bg-blue-50 text-blue-900",
	"amber":   "border-amber-200 bg-amber-50 text-amber-900",
	"purple":  "border-purple-200 bg-purple-50 text-purple-900",
}

func tipAccent(color string) string {
	if c, ok := tipAccents[color]; ok {
		return c
	}
	return "border-gray-200 bg-white"
}

func trendClass(pct int) string {
	if pct < 0 {
		return "mt-1 text-xs text-red-600"
	}
	return "mt-1 text-xs text-emerald-600"
}

func signedPercent(pct int) string {
	if pct >= 0 {
		return "+" + strconv.Itoa(pct) + "%"
	}
	return strconv.Itoa(pct) + "%"
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}
