package ui_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/components/toast"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "48,293", ui.Number(48293))
	assert.Equal(t, "1,250", ui.Number(int64(1250)))
	assert.Equal(t, "2,650", ui.Number(2650.0))
	assert.Equal(t, "12.5", ui.Number(12.5))
	assert.Equal(t, "n/a", ui.Number("n/a"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Weight Loss", ui.Title("weight-loss"))
	assert.Equal(t, "Hiit", ui.Title("hiit"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50, ui.Percent(250, 500))
	assert.Equal(t, 100, ui.Percent(700.0, 500))
	assert.Equal(t, 0, ui.Percent(-5, 500))
	assert.Equal(t, 0, ui.Percent(10, 0))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AM", ui.Initials("Alex Morgan"))
	assert.Equal(t, "AJ", ui.Initials("alex j. morgan"))
	assert.Equal(t, "", ui.Initials("  "))
}

func TestCn(t *testing.T) {
	assert.Equal(t, "rounded-lg border p-5 border-red-200", ui.Cn("rounded-lg border p-5", "border-red-200"))
	assert.Equal(t, "px-4", ui.Cn("px-2", "px-4"))
}

func TestWidthAndHeight(t *testing.T) {
	assert.Equal(t, "width: 45%", ui.Width(45))
	assert.Equal(t, "height: 100%", ui.Height(100))
}

func TestRenderOOB(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	ui.RenderOOB(w, r, toast.Toast(toast.Props{Title: "Saved", Variant: toast.VariantSuccess}), "beforeend:#toast-container")

	body := w.Body.String()
	assert.Contains(t, body, `<div hx-swap-oob="beforeend:#toast-container">`)
	assert.Contains(t, body, "Saved")
	assert.Contains(t, body, `data-duration="3000"`)
}

func TestHTMXHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	assert.False(t, ui.IsHTMX(r))

	r.Header.Set("HX-Request", "true")
	r.Header.Set("HX-Target", "goals-content")
	assert.True(t, ui.IsHTMX(r))
	assert.Equal(t, "goals-content", ui.HXTarget(r))

	r.Header.Set("HX-History-Restore-Request", "true")
	assert.False(t, ui.IsHTMX(r))

	w := httptest.NewRecorder()
	ui.Retarget(w, "#goal-form", "outerHTML")
	assert.Equal(t, "#goal-form", w.Header().Get("HX-Retarget"))
	assert.Equal(t, "outerHTML", w.Header().Get("HX-Reswap"))
}
