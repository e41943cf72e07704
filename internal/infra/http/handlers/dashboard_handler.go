package handlers

import (
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type DashboardHandler struct {
	StatsUC *usecase.DashboardUseCase
}

func NewDashboardHandler(statsUC *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{StatsUC: statsUC}
}

// HandleGetStats (GET /api/dashboard/stats)
func (h *DashboardHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
