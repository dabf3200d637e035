package handlers

import (
	"net/http"

	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerMenuRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", getMenu)
}

// getMenu godoc
// @Summary Navigation menu
// @Description Lists the menu entries visible to the caller's role
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MenuResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /menu [get]
func getMenu(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToMenuResponse(viewer.Role))
}
