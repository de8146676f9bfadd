package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/report"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// ReportHandler handles revenue reporting endpoints
type ReportHandler struct {
	BaseHandler
	revenueService *reportapp.RevenueService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(revenueService *reportapp.RevenueService) *ReportHandler {
	return &ReportHandler{revenueService: revenueService}
}

// Revenue returns the revenue dashboard for a reporting window
func (h *ReportHandler) Revenue(c *gin.Context) {
	filter := reportapp.TimeFilter(c.DefaultQuery("filter", string(reportapp.TimeFilterMonth)))

	customStart, err := parseDateQuery(c, "start_date")
	if err != nil {
		h.BadRequest(c, "Invalid start_date value")
		return
	}
	customEnd, err := parseDateQuery(c, "end_date")
	if err != nil {
		h.BadRequest(c, "Invalid end_date value")
		return
	}

	summary, err := h.revenueService.ComputeRevenue(c.Request.Context(), filter, customStart, customEnd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// MonthlyTrend returns total revenue per month for a trailing window
func (h *ReportHandler) MonthlyTrend(c *gin.Context) {
	months, err := parseIntQuery(c, "months")
	if err != nil {
		h.BadRequest(c, "Invalid months value")
		return
	}
	monthsBack := 12
	if months != nil {
		monthsBack = *months
	}

	points, err := h.revenueService.ComputeMonthlyTrend(c.Request.Context(), monthsBack)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, points)
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports", middleware.RequireAdmin())
	{
		reports.GET("/revenue", h.Revenue)
		reports.GET("/revenue/trend", h.MonthlyTrend)
	}
}
