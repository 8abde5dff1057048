package toast

import "github.com/a-h/templ"

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

const defaultDuration = 3000

type Props struct {
	Title       string
	Description string
	Variant     Variant
	Icon        bool
	Dismissible bool
	Duration    int // milliseconds before the toast dismisses itself
}

// Class is the variant's accent merged onto the base toast classes.
func (p Props) Class() string {
	switch p.Variant {
	case VariantSuccess:
		return "border-emerald-200"
	case VariantError:
		return "border-red-200 bg-red-50"
	case VariantInfo:
		return "border-blue-200"
	default:
		return ""
	}
}

func (p Props) Symbol() string {
	switch p.Variant {
	case VariantSuccess:
		return "✅"
	case VariantError:
		return "⚠️"
	case VariantInfo:
		return "ℹ️"
	default:
		return "🔔"
	}
}

func Toast(p Props) templ.Component {
	if p.Duration <= 0 {
		p.Duration = defaultDuration
	}
	if p.Variant == "" {
		p.Variant = VariantDefault
	}
	return view(p)
}
