package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shadowpulse/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func (h *DashboardHandler) GetChart(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))

	headlines, err := h.analyzer.Headlines(c.Request.Context(), topic)
	if err != nil {
		status, msg := errorStatus(err, topic)
		if status >= http.StatusInternalServerError {
			slog.Error("error building chart", "topic", topic, "error", err)
		}
		c.String(status, msg)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := sentimentChart(topic, headlines).Render(c.Writer); err != nil {
		slog.Error("error rendering chart", "topic", topic, "error", err)
	}
}

func sentimentChart(topic string, headlines []model.ScoredHeadline) *charts.Bar {
	labels := make([]string, len(headlines))
	items := make([]opts.BarData, len(headlines))
	for i, hl := range headlines {
		labels[i] = "#" + strconv.Itoa(i+1)
		items[i] = opts.BarData{Name: hl.Title, Value: hl.Sentiment}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "ShadowPulse", Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Headline sentiment", Subtitle: topic}),
		charts.WithYAxisOpts(opts.YAxis{Name: "compound", Min: -1, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
	)
	bar.SetXAxis(labels).AddSeries("Sentiment", items)

	return bar
}
