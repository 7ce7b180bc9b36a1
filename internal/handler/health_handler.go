package handler

import (
	"context"
	"log/slog"
	"net/http"

	"shadowpulse/internal/model"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ReportHistory interface {
	GetRecentReports(ctx context.Context, limit int) ([]model.ReportLog, error)
}

// HealthHandler reports on the optional backing stores. A nil dependency
// is reported as disabled.
type HealthHandler struct {
	database Pinger
	cache    Pinger
}

func NewHealthHandler(database, cache Pinger) *HealthHandler {
	return &HealthHandler{database: database, cache: cache}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	res := gin.H{"status": "healthy"}
	status := http.StatusOK

	for name, dep := range map[string]Pinger{"database": h.database, "cache": h.cache} {
		if dep == nil {
			res[name] = "disabled"
			continue
		}
		if err := dep.Ping(c.Request.Context()); err != nil {
			res[name] = "disconnected"
			res["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		res[name] = "connected"
	}

	c.JSON(status, res)
}

type HistoryHandler struct {
	repository ReportHistory
}

func NewHistoryHandler(repository ReportHistory) *HistoryHandler {
	return &HistoryHandler{repository: repository}
}

func (h *HistoryHandler) GetReports(c *gin.Context) {
	limit := getQueryLimit(c)

	reports, err := h.repository.GetRecentReports(c.Request.Context(), limit)
	if err != nil {
		slog.Error("error fetching report history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]ReportLogResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, toReportLogResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{"reports": res, "limit": limit})
}
