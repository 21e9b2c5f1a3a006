package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// donationHandler handles HTTP requests for shoe donations.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

// registerPublicDonationRoutes registers the public donation form endpoint.
func registerPublicDonationRoutes(rg *gin.RouterGroup, ds portssvc.DonationSvcFacade) {
	h := newDonationHandler(ds)
	rg.POST("/donations", h.createDonation)
}

// registerAdminDonationRoutes registers the admin donation endpoints.
func registerAdminDonationRoutes(rg *gin.RouterGroup, ds portssvc.DonationSvcFacade) {
	h := newDonationHandler(ds)

	donations := rg.Group("/donations")
	{
		donations.GET("", h.listDonations)
		donations.GET("/:referenceId", h.getDonation)
		donations.PATCH("/:referenceId/status", h.updateDonationStatus)
	}
}

// createDonation godoc
// @Summary Submit a shoe donation
// @Description Records a public shoe donation form submission and returns its reference ID.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Router /donations [post]
func (h *donationHandler) createDonation(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	donations, nextToken, err := h.donationService.ListDonations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListDonationsResponse{
		Donations: make([]dto.DonationResponse, len(donations)),
		NextToken: nextToken,
	}
	for i := range donations {
		resp.Donations[i] = dto.ToDonationResponse(&donations[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getDonation godoc
// @Summary Get a donation by reference ID
// @Tags donations
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/donations/{referenceId} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	donation, err := h.donationService.GetDonationByReferenceID(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// updateDonationStatus godoc
// @Summary Update a donation's status
// @Description Applies a status change, enforcing the donation workflow.
// @Tags donations
// @Accept json
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/donations/{referenceId}/status [patch]
func (h *donationHandler) updateDonationStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	donation, err := h.donationService.UpdateDonationStatus(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}
