package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"html/template"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"shadowpulse/internal/model"
	"shadowpulse/internal/service"

	"github.com/gin-gonic/gin"
)

type Analyzer interface {
	Analyze(ctx context.Context, topic string) (*model.Analysis, error)
	Headlines(ctx context.Context, topic string) ([]model.ScoredHeadline, error)
	Report(ctx context.Context, topic string) (*service.Download, error)
	Export(ctx context.Context, analysis *model.Analysis) (*service.Download, error)
}

type DashboardHandler struct {
	analyzer Analyzer
}

func NewDashboardHandler(analyzer Analyzer) *DashboardHandler {
	return &DashboardHandler{analyzer: analyzer}
}

type pageData struct {
	Topic      string
	Message    string
	Analysis   *model.Analysis
	Chart      string
	ReportFile string
	ReportURL  template.URL
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	if topic == "" {
		c.HTML(http.StatusOK, dashboardTemplate, pageData{})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), topic)
	if err != nil {
		status, msg := errorStatus(err, topic)
		if status >= http.StatusInternalServerError {
			slog.Error("error analyzing topic", "topic", topic, "error", err)
		}
		c.HTML(status, dashboardTemplate, pageData{Topic: topic, Message: msg})
		return
	}

	page := pageData{Topic: topic, Analysis: analysis}

	var chart bytes.Buffer
	if err := sentimentChart(analysis.Topic, analysis.Headlines).Render(&chart); err != nil {
		slog.Error("error rendering chart", "topic", topic, "error", err)
	} else {
		page.Chart = chart.String()
	}

	// The download is built from this analysis so it matches what the page shows.
	dl, err := h.analyzer.Export(c.Request.Context(), analysis)
	if err != nil {
		slog.Error("error building report", "topic", topic, "error", err)
		page.Message = "Could not build the PDF report for " + topic
	} else {
		page.ReportFile = dl.FileName
		page.ReportURL = dataURL(dl)
	}

	c.HTML(http.StatusOK, dashboardTemplate, page)
}

func dataURL(dl *service.Download) template.URL {
	return template.URL("data:" + dl.ContentType + ";base64," + base64.StdEncoding.EncodeToString(dl.Data))
}

func (h *DashboardHandler) GetAnalysis(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))

	analysis, err := h.analyzer.Analyze(c.Request.Context(), topic)
	if err != nil {
		status, msg := errorStatus(err, topic)
		if status >= http.StatusInternalServerError {
			slog.Error("error analyzing topic", "topic", topic, "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(analysis))
}

func (h *DashboardHandler) GetReport(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))

	dl, err := h.analyzer.Report(c.Request.Context(), topic)
	if err != nil {
		status, msg := errorStatus(err, topic)
		if status >= http.StatusInternalServerError {
			slog.Error("error building report", "topic", topic, "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	slog.Info("report generated", "topic", topic, "bytes", len(dl.Data))

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.FileName}))
	c.Header("Content-Length", strconv.Itoa(len(dl.Data)))
	c.Data(http.StatusOK, dl.ContentType, dl.Data)
}

func errorStatus(err error, topic string) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyTopic):
		return http.StatusBadRequest, "Please enter a topic"
	case errors.Is(err, service.ErrNoHeadlines):
		return http.StatusNotFound, "No data found for " + topic
	default:
		return http.StatusBadGateway, "Could not analyze " + topic + ", please try again"
	}
}
