package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/SscSPs/shopbooks/internal/reports"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the analytical views
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService, now: time.Now}

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/dashboard.pdf", h.getDashboardPDF)
		reportingGroup.GET("/sales", h.getSalesReport)
		reportingGroup.GET("/shops", h.getShopComparison)
		reportingGroup.GET("/bank", h.getBankReport)
		reportingGroup.GET("/forecast", h.getForecast)
	}
}

// getDashboard godoc
// @Summary Dashboard figures
// @Description Totals, this month's sales, bank balance, pending cheques, monthly performance of the last 180 days and next month's forecast
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	dashboard, ok := h.dashboard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// getDashboardPDF godoc
// @Summary Dashboard as PDF
// @Description Renders the dashboard figures as a printable summary
// @Tags reports
// @Produce application/pdf
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard.pdf [get]
func (h *reportingHandler) getDashboardPDF(c *gin.Context) {
	dashboard, ok := h.dashboard(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pdf, err := reports.DashboardPDF(dashboard)
	if err != nil {
		logger.Error("Failed to render dashboard pdf", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	filename := "dashboard-" + dashboard.AsOf.Format(domain.DateLayout) + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *reportingHandler) dashboard(c *gin.Context) (*domain.Dashboard, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, err := dto.FilterParams{AsOf: c.Query("asOf")}.AsOfDate(h.now())
	if err != nil {
		respondError(c, logger, err, "Invalid asOf date")
		return nil, false
	}
	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return nil, false
	}
	return dashboard, true
}

// getSalesReport godoc
// @Summary Sales analytics
// @Description Sales over time, profit trend, shop comparison, expense breakdown and sales distribution
// @Tags reports
// @Produce json
// @Param shop query string false "Shop name"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param granularity query string false "day, week or month" default(week)
// @Param bins query int false "Histogram bins" default(20)
// @Success 200 {object} domain.SalesReport
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Invalid query parameters")
		return
	}
	g, err := domain.ParseGranularity(params.Granularity, domain.GranularityWeek)
	if err != nil {
		respondError(c, logger, err, "Invalid granularity")
		return
	}

	report, err := h.reportingService.SalesReport(c.Request.Context(), filter, g, params.Bins)
	if err != nil {
		respondError(c, logger, err, "Failed to generate sales report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getShopComparison godoc
// @Summary Shop comparison
// @Description Sales, profit, margins and contributions per shop
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} domain.ShopPerformance
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/shops [get]
func (h *reportingHandler) getShopComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	shops, err := h.reportingService.ShopComparison(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to compare shops")
		return
	}
	if shops == nil {
		shops = []domain.ShopPerformance{}
	}
	c.JSON(http.StatusOK, shops)
}

// getBankReport godoc
// @Summary Bank deposits and cheques
// @Description Deposit summary for the filter, cheque status summary and bank balance
// @Tags reports
// @Produce json
// @Param shop query string false "Shop name"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} domain.BankReport
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/bank [get]
func (h *reportingHandler) getBankReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	report, err := h.reportingService.BankReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate bank report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getForecast godoc
// @Summary Next month's sales forecast
// @Description Per-shop mean of the last three months of sales up to asOf
// @Tags reports
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.Forecast
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/forecast [get]
func (h *reportingHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, err := dto.FilterParams{AsOf: c.Query("asOf")}.AsOfDate(h.now())
	if err != nil {
		respondError(c, logger, err, "Invalid asOf date")
		return
	}
	forecast, err := h.reportingService.Forecast(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate forecast")
		return
	}
	c.JSON(http.StatusOK, forecast)
}

func (h *reportingHandler) bindFilter(c *gin.Context) (domain.TransactionFilter, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.TransactionFilter{}, false
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Invalid query parameters")
		return domain.TransactionFilter{}, false
	}
	return filter, true
}
