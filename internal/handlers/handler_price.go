package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler handles HTTP requests related to selling prices.
type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

// registerPriceRoutes registers the price routes, reserved to admins.
func registerPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := &priceHandler{priceService: priceService}

	prices := rg.Group("/prices", middleware.RequireRole(domain.RoleAdmin))
	{
		prices.GET("", h.listPrices)
		prices.GET("/current", h.currentPrices)
		prices.POST("", h.createPrice)
		prices.DELETE("/:priceID", h.deletePrice)
	}
}

// listPrices godoc
// @Summary List prices
// @Description Returns the price history, most recently recorded first
// @Tags prices
// @Produce json
// @Success 200 {array} dto.PriceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices [get]
func (h *priceHandler) listPrices(c *gin.Context) {
	prices, err := h.priceService.ListPrices(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceResponse(prices))
}

// currentPrices godoc
// @Summary Prices in effect
// @Description Returns, for each catalog product, the price in effect on a date (today by default)
// @Tags prices
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.CurrentPriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices/current [get]
func (h *priceHandler) currentPrices(c *gin.Context) {
	var params dto.CurrentPricesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	on := domain.CivilDate(time.Now())
	if params.Date != "" {
		parsed, err := domain.ParseDate(params.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		on = parsed
	}

	current, err := h.priceService.CurrentPrices(c.Request.Context(), on)
	if err != nil {
		respondError(c, err, "Failed to resolve current prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrentPriceResponses(current))
}

// createPrice godoc
// @Summary Register a price
// @Description Registers a selling price for a validity window. Overlapping records are rejected with 409 unless replace is set.
// @Tags prices
// @Accept json
// @Produce json
// @Param price body dto.CreatePriceRequest true "Price details"
// @Success 201 {object} dto.PriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} dto.PriceConflictResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices [post]
func (h *priceHandler) createPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	record, err := h.priceService.CreatePrice(c.Request.Context(), req, viewer.UserID)
	if err != nil {
		var conflict *domain.PriceConflictError
		if errors.As(err, &conflict) {
			logger.Info("Price overlaps existing records", slog.Int("conflicts", len(conflict.Conflicts)))
			c.JSON(http.StatusConflict, dto.PriceConflictResponse{
				Error:     conflict.Error(),
				Conflicts: dto.ToListPriceResponse(conflict.Conflicts),
			})
			return
		}
		respondError(c, err, "Failed to register price")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPriceResponse(record))
}

// deletePrice godoc
// @Summary Delete a price
// @Tags prices
// @Param priceID path string true "Price ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices/{priceID} [delete]
func (h *priceHandler) deletePrice(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	if err := h.priceService.DeletePrice(c.Request.Context(), c.Param("priceID"), viewer.UserID); err != nil {
		respondError(c, err, "Failed to delete price")
		return
	}
	c.Status(http.StatusNoContent)
}
