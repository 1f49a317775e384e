package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/staffdesk/internal/http/middleware"
	"github.com/nurpe/staffdesk/internal/service"
)

type Handler struct {
	insights *service.InsightsService
	staffing *service.StaffingService
	log      zerolog.Logger
}

func NewHandler(insights *service.InsightsService, staffing *service.StaffingService, log zerolog.Logger) *Handler {
	return &Handler{insights: insights, staffing: staffing, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)

	protected.GET("/snapshot", h.getSnapshot)
	protected.GET("/dashboard", h.getDashboard)
	protected.GET("/contracts/details", h.getContractDetails)
	protected.GET("/contracts/expiring", h.getExpiringContracts)
	protected.GET("/forecasts/occupancy", h.getOccupancyForecasts)
	protected.GET("/clients/summaries", h.getClientSummaries)
	protected.GET("/teams", h.getTeamViews)
	protected.GET("/stacks/distribution", h.getStackDistributions)
	protected.GET("/leaders/metrics", h.getLeaderMetrics)
	protected.GET("/timeline", h.getTimeline)

	protected.GET("/factory/dashboard", h.getFactoryDashboard)
	protected.GET("/factory/projects/details", h.getFactoryProjects)
	protected.GET("/factory/forecasts", h.getFactoryIdleForecasts)
	protected.GET("/factory/gantt", h.getFactoryGantt)

	protected.POST("/reports/expirations", h.exportExpirationReport)
	protected.POST("/reports/occupancy", h.exportOccupancyReport)

	h.registerCRUD(protected)
}

func (h *Handler) getSnapshot(c *gin.Context) {
	snapshot, err := h.insights.Snapshot(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) getDashboard(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	metrics, err := h.insights.Dashboard(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *Handler) getContractDetails(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	contracts, err := h.insights.ContractsWithDetails(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) getExpiringContracts(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	groups, err := h.insights.ExpiringContracts(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *Handler) getOccupancyForecasts(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	forecasts, err := h.insights.OccupancyForecasts(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecasts)
}

func (h *Handler) getClientSummaries(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	summaries, err := h.insights.ClientSummaries(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) getTeamViews(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	teams, err := h.insights.TeamViews(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *Handler) getStackDistributions(c *gin.Context) {
	distributions, err := h.insights.StackDistributions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributions)
}

func (h *Handler) getLeaderMetrics(c *gin.Context) {
	metrics, err := h.insights.LeaderMetrics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *Handler) getTimeline(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	months, err := monthsParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
		return
	}
	timelines, err := h.insights.Timeline(c.Request.Context(), at, months)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, timelines)
}

func (h *Handler) getFactoryDashboard(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	metrics, err := h.insights.FactoryDashboard(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *Handler) getFactoryProjects(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	projects, err := h.insights.FactoryProjects(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getFactoryIdleForecasts(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	forecasts, err := h.insights.FactoryIdleForecasts(c.Request.Context(), at)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecasts)
}

func (h *Handler) getFactoryGantt(c *gin.Context) {
	at, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}
	months, err := monthsParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
		return
	}
	entries, err := h.insights.FactoryGantt(c.Request.Context(), at, months)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type exportReportRequest struct {
	At string `json:"at"`
}

func (h *Handler) exportExpirationReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	at, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}

	result, err := h.insights.GenerateExpirationReport(c.Request.Context(), service.GenerateReportInput{
		At:        at,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) exportOccupancyReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	at, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at"})
		return
	}

	result, err := h.insights.GenerateOccupancyReport(c.Request.Context(), service.GenerateReportInput{
		At:        at,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// referenceDate reads the optional ?at=YYYY-MM-DD query parameter. Missing
// means today.
func referenceDate(c *gin.Context) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("at"))
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(raw)
}

// reportDate reads the date from the request body, falling back to today
// when the body is empty.
func reportDate(c *gin.Context) (time.Time, error) {
	var req exportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		return time.Time{}, err
	}
	if strings.TrimSpace(req.At) == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(req.At)
}

func monthsParam(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("months"))
	if raw == "" {
		return 6, nil
	}
	return strconv.Atoi(raw)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
