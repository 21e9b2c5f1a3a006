package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// moneyDonationHandler handles HTTP requests for money donations.
type moneyDonationHandler struct {
	moneyDonationService portssvc.MoneyDonationSvcFacade
}

func newMoneyDonationHandler(ms portssvc.MoneyDonationSvcFacade) *moneyDonationHandler {
	return &moneyDonationHandler{moneyDonationService: ms}
}

func registerPublicMoneyDonationRoutes(rg *gin.RouterGroup, ms portssvc.MoneyDonationSvcFacade) {
	h := newMoneyDonationHandler(ms)
	rg.POST("/money-donations", h.createMoneyDonation)
}

func registerAdminMoneyDonationRoutes(rg *gin.RouterGroup, ms portssvc.MoneyDonationSvcFacade) {
	h := newMoneyDonationHandler(ms)

	donations := rg.Group("/money-donations")
	{
		donations.GET("", h.listMoneyDonations)
		donations.GET("/:referenceId", h.getMoneyDonation)
		donations.PATCH("/:referenceId/status", h.updateMoneyDonationStatus)
	}
}

// createMoneyDonation godoc
// @Summary Submit a money donation
// @Description Records a public money donation form submission and returns its reference ID.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body dto.CreateMoneyDonationRequest true "Donation details"
// @Success 201 {object} dto.MoneyDonationResponse
// @Failure 400 {object} ErrorResponse
// @Router /money-donations [post]
func (h *moneyDonationHandler) createMoneyDonation(c *gin.Context) {
	var req dto.CreateMoneyDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.moneyDonationService.CreateMoneyDonation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMoneyDonationResponse(donation))
}

// listMoneyDonations godoc
// @Summary List money donations
// @Tags donations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListMoneyDonationsResponse
// @Security BearerAuth
// @Router /admin/money-donations [get]
func (h *moneyDonationHandler) listMoneyDonations(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	donations, nextToken, err := h.moneyDonationService.ListMoneyDonations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListMoneyDonationsResponse{
		Donations: make([]dto.MoneyDonationResponse, len(donations)),
		NextToken: nextToken,
	}
	for i := range donations {
		resp.Donations[i] = dto.ToMoneyDonationResponse(&donations[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getMoneyDonation godoc
// @Summary Get a money donation by reference ID
// @Tags donations
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.MoneyDonationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/money-donations/{referenceId} [get]
func (h *moneyDonationHandler) getMoneyDonation(c *gin.Context) {
	donation, err := h.moneyDonationService.GetMoneyDonationByReferenceID(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMoneyDonationResponse(donation))
}

// updateMoneyDonationStatus godoc
// @Summary Update a money donation's status
// @Tags donations
// @Accept json
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MoneyDonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/money-donations/{referenceId}/status [patch]
func (h *moneyDonationHandler) updateMoneyDonationStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	donation, err := h.moneyDonationService.UpdateMoneyDonationStatus(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMoneyDonationResponse(donation))
}
