package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// requestHandler handles HTTP requests for shoe requests.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
	orderService   portssvc.OrderSvcFacade
}

func newRequestHandler(rs portssvc.RequestSvcFacade, os portssvc.OrderSvcFacade) *requestHandler {
	return &requestHandler{requestService: rs, orderService: os}
}

func registerPublicRequestRoutes(rg *gin.RouterGroup, rs portssvc.RequestSvcFacade) {
	h := newRequestHandler(rs, nil)
	rg.POST("/requests", h.createRequest)
}

func registerAdminRequestRoutes(rg *gin.RouterGroup, rs portssvc.RequestSvcFacade, os portssvc.OrderSvcFacade) {
	h := newRequestHandler(rs, os)

	requests := rg.Group("/requests")
	{
		requests.GET("", h.listRequests)
		requests.GET("/:referenceId", h.getRequest)
		requests.PATCH("/:referenceId/status", h.updateRequestStatus)
		requests.POST("/:referenceId/orders", h.createOrderFromRequest)
	}
}

// createRequest godoc
// @Summary Submit a shoe request
// @Description Records a public shoe request. Lines bound to inventory reserve their shoes immediately.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Request details (1 to 4 items)"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse
// @Router /requests [post]
func (h *requestHandler) createRequest(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.requestService.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

// listRequests godoc
// @Summary List shoe requests
// @Tags requests
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListRequestsResponse
// @Security BearerAuth
// @Router /admin/requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, nextToken, err := h.requestService.ListRequests(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListRequestsResponse{
		Requests:  make([]dto.RequestResponse, len(requests)),
		NextToken: nextToken,
	}
	for i := range requests {
		resp.Requests[i] = dto.ToRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getRequest godoc
// @Summary Get a shoe request by reference ID
// @Tags requests
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.RequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{referenceId} [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	request, err := h.requestService.GetRequestByReferenceID(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// updateRequestStatus godoc
// @Summary Update a shoe request's status
// @Description Applies a status change. Rejection releases any reserved inventory and is final.
// @Tags requests
// @Accept json
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{referenceId}/status [patch]
func (h *requestHandler) updateRequestStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	request, err := h.requestService.UpdateRequestStatus(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// createOrderFromRequest godoc
// @Summary Create a fulfillment order for an approved request
// @Tags orders
// @Accept json
// @Produce json
// @Param referenceId path string true "Request reference ID"
// @Param order body dto.CreateOrderRequest true "Shoes to ship"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{referenceId}/orders [post]
func (h *requestHandler) createOrderFromRequest(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrderFromRequest(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}
