package ui

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderStatus renders c after writing status.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path, "status", status)
	}
}

// RenderOOB wraps c in an out-of-band swap for target, e.g. "beforeend:#toast-container".
func RenderOOB(w http.ResponseWriter, r *http.Request, c templ.Component, target string) {
	_, err := fmt.Fprintf(w, `<div hx-swap-oob="%s">`, target)
	if err != nil {
		slog.Error("render oob write wrapper start failed", "error", err)
		return
	}

	err = c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render oob component render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	_, err = w.Write([]byte(`</div>`))
	if err != nil {
		slog.Error("render oob write wrapper end failed", "error", err)
	}
}

// IsHTMX reports whether r was issued by htmx (and not a history restore).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-History-Restore-Request") != "true"
}

// HXTarget returns the id of the element htmx will swap into.
func HXTarget(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// Retarget redirects the swap of an htmx response, e.g. to re-render a form
// with errors in place of the list it would normally replace.
func Retarget(w http.ResponseWriter, target, swap string) {
	w.Header().Set("HX-Retarget", target)
	w.Header().Set("HX-Reswap", swap)
}
