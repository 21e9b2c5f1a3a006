package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// shoeHandler handles HTTP requests for the shoe inventory.
type shoeHandler struct {
	shoeService portssvc.ShoeSvcFacade
}

func newShoeHandler(ss portssvc.ShoeSvcFacade) *shoeHandler {
	return &shoeHandler{shoeService: ss}
}

// registerPublicShoeRoutes registers the public inventory browse endpoints.
func registerPublicShoeRoutes(rg *gin.RouterGroup, ss portssvc.ShoeSvcFacade) {
	h := newShoeHandler(ss)
	rg.GET("/shoes", h.listShoes)
	rg.GET("/shoes/:id", h.getShoe)
}

// registerAdminShoeRoutes registers the admin inventory CRUD endpoints.
func registerAdminShoeRoutes(rg *gin.RouterGroup, ss portssvc.ShoeSvcFacade) {
	h := newShoeHandler(ss)

	shoes := rg.Group("/shoes")
	{
		shoes.POST("", h.createShoe)
		shoes.PATCH("/:id", h.updateShoe)
		shoes.DELETE("/:id", h.deleteShoe)
	}
}

// listShoes godoc
// @Summary Browse shoe inventory
// @Description Lists inventory records, optionally filtered by status, sport, and gender.
// @Tags shoes
// @Produce json
// @Param status query string false "Filter by status"
// @Param sport query string false "Filter by sport"
// @Param gender query string false "Filter by gender"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListShoesResponse
// @Failure 400 {object} ErrorResponse
// @Router /shoes [get]
func (h *shoeHandler) listShoes(c *gin.Context) {
	var params dto.ListShoesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	shoes, err := h.shoeService.ListShoes(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListShoesResponse{Shoes: make([]dto.ShoeResponse, len(shoes))}
	for i := range shoes {
		resp.Shoes[i] = dto.ToShoeResponse(&shoes[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getShoe godoc
// @Summary Get an inventory record
// @Tags shoes
// @Produce json
// @Param id path string true "Shoe ID"
// @Success 200 {object} dto.ShoeResponse
// @Failure 404 {object} ErrorResponse
// @Router /shoes/{id} [get]
func (h *shoeHandler) getShoe(c *gin.Context) {
	shoe, err := h.shoeService.GetShoeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShoeResponse(shoe))
}

// createShoe godoc
// @Summary Add a shoe to inventory
// @Tags shoes
// @Accept json
// @Produce json
// @Param shoe body dto.CreateShoeRequest true "Shoe details"
// @Success 201 {object} dto.ShoeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoes [post]
func (h *shoeHandler) createShoe(c *gin.Context) {
	var req dto.CreateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	shoe, err := h.shoeService.CreateShoe(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToShoeResponse(shoe))
}

// updateShoe godoc
// @Summary Update an inventory record
// @Tags shoes
// @Accept json
// @Produce json
// @Param id path string true "Shoe ID"
// @Param shoe body dto.UpdateShoeRequest true "Fields to update"
// @Success 200 {object} dto.ShoeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoes/{id} [patch]
func (h *shoeHandler) updateShoe(c *gin.Context) {
	var req dto.UpdateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	shoe, err := h.shoeService.UpdateShoe(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShoeResponse(shoe))
}

// deleteShoe godoc
// @Summary Remove an inventory record
// @Description Soft-deletes a shoe. Shoes reserved by an open request cannot be removed.
// @Tags shoes
// @Param id path string true "Shoe ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoes/{id} [delete]
func (h *shoeHandler) deleteShoe(c *gin.Context) {
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	if err := h.shoeService.DeleteShoe(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
