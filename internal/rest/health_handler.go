package rest

import (
	"net/http"
	"time"

	"cantina-be/internal/metrics"
	"cantina-be/internal/utils"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":       "OK",
		"message":      "Cantina Digital API running",
		"uptime":       time.Since(h.startedAt).Round(time.Second).String(),
		"requests":     metrics.HTTPRequests.Load(),
		"errors":       metrics.HTTPErrors.Load(),
		"ordersPlaced": metrics.OrdersPlaced.Load(),
	})
}
