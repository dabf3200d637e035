package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/importer"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves the reference tables behind the delivery form.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

// registerReferenceRoutes registers the reference routes. Reads are open to
// every authenticated user, writes to admins.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := &referenceHandler{referenceService: referenceService}

	ref := rg.Group("/reference")
	{
		ref.GET("/commercials", h.listCommercials)
		ref.GET("/sites", h.listSites)
		ref.GET("/carriers", h.listCarriers)
		ref.GET("/drivers", h.listDrivers)
		ref.GET("/tractors", h.listTractors)
		ref.GET("/tanks", h.listTanks)
		ref.GET("/depots", h.listDepots)
		ref.GET("/products", h.listProducts)
	}

	admin := ref.Group("", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/drivers", h.createDriver)
		admin.POST("/tractors", h.createTractor)
		admin.POST("/tanks", h.createTank)
		admin.POST("/import", h.importWorkbook)
	}
}

// listOrFail writes items, or the error of the listing.
func listOrFail[T any](c *gin.Context, items []T, err error, what string) {
	if err != nil {
		respondError(c, err, "Failed to list "+what)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// listCommercials godoc
// @Summary List commercials
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Commercial
// @Security BearerAuth
// @Router /reference/commercials [get]
func (h *referenceHandler) listCommercials(c *gin.Context) {
	items, err := h.referenceService.ListCommercials(c.Request.Context())
	listOrFail(c, items, err, "commercials")
}

// listSites godoc
// @Summary List sites
// @Tags reference
// @Produce json
// @Param commercial_id query string false "Only the sites of this commercial"
// @Success 200 {array} domain.Site
// @Security BearerAuth
// @Router /reference/sites [get]
func (h *referenceHandler) listSites(c *gin.Context) {
	items, err := h.referenceService.ListSites(c.Request.Context(), c.Query("commercial_id"))
	listOrFail(c, items, err, "sites")
}

// listCarriers godoc
// @Summary List carriers
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Carrier
// @Security BearerAuth
// @Router /reference/carriers [get]
func (h *referenceHandler) listCarriers(c *gin.Context) {
	items, err := h.referenceService.ListCarriers(c.Request.Context())
	listOrFail(c, items, err, "carriers")
}

// listDrivers godoc
// @Summary List drivers
// @Tags reference
// @Produce json
// @Param carrier_id query string false "Only the drivers of this carrier"
// @Success 200 {array} domain.Driver
// @Security BearerAuth
// @Router /reference/drivers [get]
func (h *referenceHandler) listDrivers(c *gin.Context) {
	items, err := h.referenceService.ListDrivers(c.Request.Context(), c.Query("carrier_id"))
	listOrFail(c, items, err, "drivers")
}

// listTractors godoc
// @Summary List tractors
// @Tags reference
// @Produce json
// @Param carrier_id query string false "Only the tractors of this carrier"
// @Success 200 {array} domain.Tractor
// @Security BearerAuth
// @Router /reference/tractors [get]
func (h *referenceHandler) listTractors(c *gin.Context) {
	items, err := h.referenceService.ListTractors(c.Request.Context(), c.Query("carrier_id"))
	listOrFail(c, items, err, "tractors")
}

// listTanks godoc
// @Summary List tanks
// @Tags reference
// @Produce json
// @Param carrier_id query string false "Only the tanks of this carrier"
// @Success 200 {array} domain.Tank
// @Security BearerAuth
// @Router /reference/tanks [get]
func (h *referenceHandler) listTanks(c *gin.Context) {
	items, err := h.referenceService.ListTanks(c.Request.Context(), c.Query("carrier_id"))
	listOrFail(c, items, err, "tanks")
}

// listDepots godoc
// @Summary List depots
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Depot
// @Security BearerAuth
// @Router /reference/depots [get]
func (h *referenceHandler) listDepots(c *gin.Context) {
	items, err := h.referenceService.ListDepots(c.Request.Context())
	listOrFail(c, items, err, "depots")
}

// listProducts godoc
// @Summary List products
// @Description Lists the configured product catalog, in report column order
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Product
// @Security BearerAuth
// @Router /reference/products [get]
func (h *referenceHandler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.referenceService.ListProducts(c.Request.Context()))
}

// createDriver godoc
// @Summary Register a driver
// @Description Registers a driver with the next CH identifier
// @Tags reference
// @Accept json
// @Produce json
// @Param driver body dto.CreateDriverRequest true "Driver"
// @Success 201 {object} domain.Driver
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reference/drivers [post]
func (h *referenceHandler) createDriver(c *gin.Context) {
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	driver, err := h.referenceService.CreateDriver(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register driver")
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// createTractor godoc
// @Summary Register a tractor
// @Description Registers a tractor with the next TRAC identifier
// @Tags reference
// @Accept json
// @Produce json
// @Param tractor body dto.CreateVehicleRequest true "Tractor"
// @Success 201 {object} domain.Tractor
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reference/tractors [post]
func (h *referenceHandler) createTractor(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	tractor, err := h.referenceService.CreateTractor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register tractor")
		return
	}
	c.JSON(http.StatusCreated, tractor)
}

// createTank godoc
// @Summary Register a tank
// @Description Registers a tank with the next CIT identifier
// @Tags reference
// @Accept json
// @Produce json
// @Param tank body dto.CreateVehicleRequest true "Tank"
// @Success 201 {object} domain.Tank
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reference/tanks [post]
func (h *referenceHandler) createTank(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	tank, err := h.referenceService.CreateTank(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register tank")
		return
	}
	c.JSON(http.StatusCreated, tank)
}

// importWorkbook godoc
// @Summary Import reference data
// @Description Upserts the reference sheets of a delivery workbook (commerciaux, transporteurs, depots, sites, chauffeurs, produits, citernes)
// @Tags reference
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reference/import [post]
func (h *referenceHandler) importWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A workbook is required in the file field"})
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read workbook")
		return
	}
	defer f.Close()

	parsed, err := importer.Parse(f)
	if err != nil {
		respondError(c, err, "Failed to parse workbook")
		return
	}
	if len(parsed.Missing) > 0 {
		logger.Warn("Workbook is missing reference sheets", slog.Any("sheets", parsed.Missing))
	}

	summary, err := h.referenceService.ImportReferenceData(c.Request.Context(), parsed.Data)
	if err != nil {
		respondError(c, err, "Failed to import reference data")
		return
	}
	c.JSON(http.StatusOK, summary)
}
