package handler

import (
	"net/http"

	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home())
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
