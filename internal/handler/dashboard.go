package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.Dashboard()
	if err != nil {
		slog.Error("failed to build dashboard", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Dashboard(pages.DashboardPage{
		Dashboard: dashboard,
		Today:     time.Now().UTC(),
	}))
}
