package ui

import (
	"fmt"
	"math"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Cn joins classes, letting later tailwind classes win over earlier ones.
func Cn(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}

// Number formats integers with thousands separators ("48,293").
func Number(v any) string {
	switch n := v.(type) {
	case int:
		return printer.Sprintf("%d", n)
	case int64:
		return printer.Sprintf("%d", n)
	case float64:
		if n == math.Trunc(n) {
			return printer.Sprintf("%d", int64(n))
		}
		return printer.Sprintf("%.1f", n)
	default:
		return fmt.Sprint(v)
	}
}

func Decimal(f float64) string {
	return printer.Sprintf("%.1f", f)
}

// Title turns a slug like "weight-loss" into "Weight Loss".
func Title(s string) string {
	return titler.String(strings.ReplaceAll(s, "-", " "))
}

// Percent returns v as a whole percentage of maxValue, clamped to [0,100].
func Percent(v, maxValue any) int {
	a, b := toFloat(v), toFloat(maxValue)
	if b <= 0 {
		return 0
	}
	return max(0, min(100, int(math.Round(a/b*100))))
}

func Width(pct int) string {
	return fmt.Sprintf("width: %d%%", pct)
}

func Height(pct int) string {
	return fmt.Sprintf("height: %d%%", pct)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(part)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
