package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// now is the clock used by date rules.
var now = time.Now

var (
	once     sync.Once
	validate *validator.Validate
)

// Errors maps a form field name to the message shown next to it.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validator returns the shared validator with the app's custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		mustRegister("future", future)
		mustRegister("notblank", notBlank)
		mustRegister("finite", finite)
		mustRegister("positive", positive)
		mustRegister("nonnegative", nonNegative)
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	err := validate.RegisterValidation(tag, fn)
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct validates v and returns field-level messages, or nil when v is valid.
// Messages come from the field's `msg_<tag>` struct tag, then `msg`, then a
// generic message for the failed rule.
func Struct(v any) Errors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": err.Error()}
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := Errors{}
	for _, fe := range verrs {
		key := stripIndex(fe.Field())
		if out.Has(key) {
			continue
		}
		out[key] = message(t, fe)
	}
	return out
}

func message(t reflect.Type, fe validator.FieldError) string {
	if field, ok := t.FieldByName(stripIndex(fe.StructField())); ok {
		if msg := field.Tag.Get("msg_" + fe.Tag()); msg != "" {
			return msg
		}
		if msg := field.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	return defaultMessage(fe)
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "min":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("Number must be greater than or equal to %s.", fe.Param())
		}
		return fmt.Sprintf("Must contain at least %s.", fe.Param())
	case "max":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("Number must be less than or equal to %s.", fe.Param())
		}
		return fmt.Sprintf("Must contain at most %s.", fe.Param())
	case "oneof":
		return "Please select a valid option."
	case "numeric":
		return "Please enter a number."
	case "future":
		return "Please select a date in the future."
	case "finite":
		return "Number is too large."
	default:
		return "Invalid value."
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func stripIndex(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// ParseDate parses a date input value (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.UTC)
}

// Today returns the current day at midnight UTC.
func Today() time.Time {
	y, m, d := now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// future accepts dates strictly after today. Works on date strings and time.Time.
func future(fl validator.FieldLevel) bool {
	var day time.Time
	switch v := fl.Field().Interface().(type) {
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return false
		}
		day = parsed
	case time.Time:
		y, m, d := v.UTC().Date()
		day = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	default:
		return false
	}
	return day.After(Today())
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// finite rejects numbers outside the float64 range, which would otherwise
// parse as an infinity.
func finite(fl validator.FieldLevel) bool {
	f, ok := parseNumber(fl)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func positive(fl validator.FieldLevel) bool {
	f, ok := parseNumber(fl)
	return ok && f > 0
}

func nonNegative(fl validator.FieldLevel) bool {
	f, ok := parseNumber(fl)
	return ok && f >= 0
}

func parseNumber(fl validator.FieldLevel) (float64, bool) {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(field.String()), 64)
		return f, err == nil
	case reflect.Float32, reflect.Float64:
		return field.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(field.Int()), true
	}
	return 0, false
}
