package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// orderHandler handles HTTP requests for fulfillment orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

func registerAdminOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := newOrderHandler(os)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.GET("/:referenceId", h.getOrder)
		orders.PATCH("/:referenceId/status", h.updateOrderStatus)
	}
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListOrdersResponse
// @Security BearerAuth
// @Router /admin/orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, nextToken, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListOrdersResponse{
		Orders:    make([]dto.OrderResponse, len(orders)),
		NextToken: nextToken,
	}
	for i := range orders {
		resp.Orders[i] = dto.ToOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getOrder godoc
// @Summary Get an order by reference ID
// @Tags orders
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/orders/{referenceId} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrderByReferenceID(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Update an order's status
// @Description Shipping marks the order's shoes shipped; cancelling returns them to the available pool.
// @Tags orders
// @Accept json
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/orders/{referenceId}/status [patch]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
