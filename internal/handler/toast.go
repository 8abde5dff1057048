package handler

import (
	"net/http"

	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/components/toast"
	"github.com/templui/fittrack/internal/ui/pages"
)

const toastTarget = "beforeend:#toast-container"

func successToast(w http.ResponseWriter, r *http.Request, title, description string) {
	ui.RenderOOB(w, r, toast.Toast(toast.Props{
		Title:       title,
		Description: description,
		Variant:     toast.VariantSuccess,
		Icon:        true,
		Dismissible: true,
	}), toastTarget)
}

func errorToast(w http.ResponseWriter, r *http.Request, title, description string) {
	ui.RenderOOB(w, r, toast.Toast(toast.Props{
		Title:       title,
		Description: description,
		Variant:     toast.VariantError,
		Icon:        true,
		Dismissible: true,
		Duration:    6000,
	}), toastTarget)
}

// failWithToast keeps the page as it is and only shows an error toast.
func failWithToast(w http.ResponseWriter, r *http.Request, title, description string) {
	w.Header().Set("HX-Reswap", "none")
	errorToast(w, r, title, description)
}

func closeDialog(w http.ResponseWriter, r *http.Request) {
	ui.RenderOOB(w, r, pages.Empty(), "innerHTML:#dialog")
}
