package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/service/dashboard"
)

// DashboardHandler serves the admin dashboard summary.
type DashboardHandler struct {
	aggregator dashboard.Aggregator
	logger     *zap.Logger
}

// NewDashboardHandler constructs the dashboard HTTP adapter.
func NewDashboardHandler(aggregator dashboard.Aggregator, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{aggregator: aggregator, logger: logger}
}

// Summary returns the current dashboard figures. The aggregator degrades
// per figure, so this endpoint always answers 200.
func (h *DashboardHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.aggregator.Summary(c.Request.Context()))
}
