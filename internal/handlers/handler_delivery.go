package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deliveryHandler handles HTTP requests related to deliveries.
type deliveryHandler struct {
	deliveryService portssvc.DeliverySvcFacade
	exportService   portssvc.ExportSvc
}

// registerDeliveryRoutes registers the delivery routes. Recording a delivery is
// reserved to admins and commercials; carriers only read their own.
func registerDeliveryRoutes(rg *gin.RouterGroup, deliveryService portssvc.DeliverySvcFacade, exportService portssvc.ExportSvc) {
	h := &deliveryHandler{deliveryService: deliveryService, exportService: exportService}

	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("", middleware.RequireRole(domain.RoleAdmin, domain.RoleCommercial), h.createDelivery)
		deliveries.GET("", h.listDeliveries)
		deliveries.GET("/by-bl/:blNumber", h.getDeliveryByBL)
		deliveries.GET("/:deliveryID", h.getDelivery)
		deliveries.GET("/:deliveryID/summary.pdf", h.getDeliverySummary)
		deliveries.GET("/:deliveryID/documents/:kind", h.getDocument)
	}
}

// formDocuments collects the optional bl and ocst attachments of the form.
// The returned files must be closed by the caller.
func formDocuments(c *gin.Context) ([]dto.DocumentUpload, []multipart.File, error) {
	var (
		uploads []dto.DocumentUpload
		opened  []multipart.File
	)
	for _, kind := range []domain.DocumentKind{domain.DocumentBL, domain.DocumentOCST} {
		header, err := c.FormFile(string(kind))
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, opened, err
		}
		f, err := header.Open()
		if err != nil {
			return nil, opened, err
		}
		opened = append(opened, f)
		uploads = append(uploads, dto.DocumentUpload{
			Kind:        kind,
			FileName:    path.Base(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return uploads, opened, nil
}

// createDelivery godoc
// @Summary Record a delivery
// @Description Records a delivery with its compartments (JSON array in the compartments field) and optional BL and OCST scans.
// @Tags deliveries
// @Accept multipart/form-data
// @Produce json
// @Param date formData string true "Delivery date (YYYY-MM-DD)"
// @Param orderReference formData string true "Order reference"
// @Param blNumber formData string true "BL number"
// @Param depotID formData string true "Depot ID"
// @Param carrierID formData string true "Carrier ID"
// @Param commercialID formData string false "Commercial ID (defaults to the site's)"
// @Param siteID formData string true "Site ID"
// @Param driver formData string false "Driver"
// @Param tractor formData string false "Tractor registration"
// @Param tank formData string false "Tank registration"
// @Param compartments formData string true "Compartments as a JSON array"
// @Param bl formData file false "BL scan"
// @Param ocst formData file false "OCST scan"
// @Success 201 {object} dto.DeliveryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "BL number already recorded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries [post]
func (h *deliveryHandler) createDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDeliveryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid delivery form: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	uploads, opened, err := formDocuments(c)
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	if err != nil {
		logger.Warn("Failed to read uploaded documents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document upload"})
		return
	}

	delivery, err := h.deliveryService.CreateDelivery(c.Request.Context(), req, uploads, viewer.UserID)
	if err != nil {
		respondError(c, err, "Failed to record delivery")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeliveryResponse(delivery))
}

// listDeliveries godoc
// @Summary List deliveries
// @Description Lists deliveries, optionally by site and period. Carriers only see their own.
// @Tags deliveries
// @Produce json
// @Param site_id query string false "Site ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.DeliveryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries [get]
func (h *deliveryHandler) listDeliveries(c *gin.Context) {
	var params dto.ListDeliveriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	deliveries, err := h.deliveryService.ListDeliveries(c.Request.Context(), params, viewer)
	if err != nil {
		respondError(c, err, "Failed to list deliveries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDeliveryResponse(deliveries))
}

// getDelivery godoc
// @Summary Get a delivery
// @Tags deliveries
// @Produce json
// @Param deliveryID path int true "Delivery ID"
// @Success 200 {object} dto.DeliveryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries/{deliveryID} [get]
func (h *deliveryHandler) getDelivery(c *gin.Context) {
	id, ok := deliveryIDParam(c)
	if !ok {
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	delivery, err := h.deliveryService.GetDelivery(c.Request.Context(), id, viewer)
	if err != nil {
		respondError(c, err, "Failed to get delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryResponse(delivery))
}

// getDeliveryByBL godoc
// @Summary Find a delivery by BL number
// @Tags deliveries
// @Produce json
// @Param blNumber path string true "BL number"
// @Success 200 {object} dto.DeliveryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries/by-bl/{blNumber} [get]
func (h *deliveryHandler) getDeliveryByBL(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	delivery, err := h.deliveryService.GetDeliveryByBL(c.Request.Context(), c.Param("blNumber"), viewer)
	if err != nil {
		respondError(c, err, "Failed to get delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryResponse(delivery))
}

// getDeliverySummary godoc
// @Summary Delivery summary PDF
// @Description Renders general information, compartment detail and per-product totals of a delivery
// @Tags deliveries
// @Produce application/pdf
// @Param deliveryID path int true "Delivery ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries/{deliveryID}/summary.pdf [get]
func (h *deliveryHandler) getDeliverySummary(c *gin.Context) {
	id, ok := deliveryIDParam(c)
	if !ok {
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	file, err := h.exportService.DeliverySummaryPDF(c.Request.Context(), id, viewer)
	if err != nil {
		respondError(c, err, "Failed to render delivery summary")
		return
	}
	attachment(c, file.FileName, file.ContentType, file.Content)
}

// getDocument godoc
// @Summary Download a delivery document
// @Tags deliveries
// @Produce octet-stream
// @Param deliveryID path int true "Delivery ID"
// @Param kind path string true "Document kind" Enums(bl, ocst)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deliveries/{deliveryID}/documents/{kind} [get]
func (h *deliveryHandler) getDocument(c *gin.Context) {
	id, ok := deliveryIDParam(c)
	if !ok {
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	content, name, err := h.deliveryService.OpenDocument(c.Request.Context(), id, domain.DocumentKind(c.Param("kind")), viewer)
	if err != nil {
		respondError(c, err, "Failed to open document")
		return
	}
	defer content.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, content, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": name}),
	})
}
