package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the shortage recap and the monthly memo.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	exportService    portssvc.ExportSvc
}

// registerReportingRoutes registers routes related to shortage reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, exportService portssvc.ExportSvc) {
	h := &reportingHandler{reportingService: reportingService, exportService: exportService}

	reports := rg.Group("/reports")
	{
		reports.GET("/deliveries", h.getDeliveryRecap)
		reports.GET("/deliveries/export.xlsx", h.exportDeliveryRecap)
		reports.GET("/memo", h.getMonthlyMemo)
		reports.GET("/memo/export.pdf", h.exportMonthlyMemo)
	}
}

// getDeliveryRecap godoc
// @Summary Delivery shortage recap
// @Description Valuates the deliveries of a period, one row per delivery. Deliveries without a price are listed as skipped.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param date query string false "Exact delivery date (YYYY-MM-DD)"
// @Param id query int false "Delivery ID"
// @Param order query string false "Order reference contains"
// @Param bl query string false "BL number contains"
// @Param depot query string false "Depot ID"
// @Param carrier query string false "Carrier ID"
// @Param tractor query string false "Tractor contains"
// @Param tank query string false "Tank contains"
// @Param driver query string false "Driver contains"
// @Success 200 {object} dto.RecapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/deliveries [get]
func (h *reportingHandler) getDeliveryRecap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DeliveryRecapParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	recap, err := h.reportingService.DeliveryRecap(c.Request.Context(), params, viewer)
	if err != nil {
		respondError(c, err, "Failed to generate delivery recap")
		return
	}

	logger.Info("Delivery recap served", slog.Int("rows", len(recap.Rows)), slog.Int("skipped", len(recap.Skipped)))
	c.JSON(http.StatusOK, dto.ToRecapResponse(recap))
}

// exportDeliveryRecap godoc
// @Summary Export the delivery recap
// @Description Same filters as the recap, rendered as the RECAP workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/deliveries/export.xlsx [get]
func (h *reportingHandler) exportDeliveryRecap(c *gin.Context) {
	var params dto.DeliveryRecapParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	file, err := h.exportService.RecapWorkbook(c.Request.Context(), params, viewer)
	if err != nil {
		respondError(c, err, "Failed to export delivery recap")
		return
	}
	attachment(c, file.FileName, file.ContentType, file.Content)
}

// getMonthlyMemo godoc
// @Summary Monthly regularization memo
// @Description Totals the reimbursable shortages of a month by carrier and by site
// @Tags reports
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} dto.MemoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/memo [get]
func (h *reportingHandler) getMonthlyMemo(c *gin.Context) {
	var params dto.MemoParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	memo, err := h.reportingService.MonthlyMemo(c.Request.Context(), params, viewer)
	if err != nil {
		respondError(c, err, "Failed to generate monthly memo")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemoResponse(memo))
}

// exportMonthlyMemo godoc
// @Summary Export the monthly memo
// @Tags reports
// @Produce application/pdf
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/memo/export.pdf [get]
func (h *reportingHandler) exportMonthlyMemo(c *gin.Context) {
	var params dto.MemoParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	file, err := h.exportService.MemoPDF(c.Request.Context(), params, viewer)
	if err != nil {
		respondError(c, err, "Failed to export monthly memo")
		return
	}
	attachment(c, file.FileName, file.ContentType, file.Content)
}
