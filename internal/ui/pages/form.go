package pages

import "github.com/templui/fittrack/internal/validation"

const (
	inputBase   = "mt-1 w-full rounded-md border px-3 py-2 text-sm"
	tabActive   = "bg-white shadow-sm"
	tabInactive = "text-gray-500 hover:text-gray-900"
)

// inputClass styles a form control, outlined red when field failed validation.
func inputClass(errs validation.Errors, field string) string {
	if errs.Has(field) {
		return inputBase + " border-red-500"
	}
	return inputBase + " border-gray-300"
}

func tabClass(active bool) string {
	if active {
		return tabActive
	}
	return tabInactive
}
