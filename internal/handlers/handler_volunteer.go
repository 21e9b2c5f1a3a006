package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newstepsproject/backend/internal/core/domain"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// volunteerHandler handles the volunteer, partnership, and contact forms,
// which share one submission pipeline.
type volunteerHandler struct {
	volunteerService portssvc.VolunteerSvcFacade
}

func newVolunteerHandler(vs portssvc.VolunteerSvcFacade) *volunteerHandler {
	return &volunteerHandler{volunteerService: vs}
}

func registerPublicVolunteerRoutes(rg *gin.RouterGroup, vs portssvc.VolunteerSvcFacade) {
	h := newVolunteerHandler(vs)
	rg.POST("/volunteers", h.submit(domain.KindVolunteer))
	rg.POST("/partnerships", h.submit(domain.KindPartnership))
	rg.POST("/contact", h.submit(domain.KindContact))
}

func registerAdminVolunteerRoutes(rg *gin.RouterGroup, vs portssvc.VolunteerSvcFacade) {
	h := newVolunteerHandler(vs)

	volunteers := rg.Group("/volunteers")
	{
		volunteers.GET("", h.listVolunteers)
		volunteers.GET("/:referenceId", h.getVolunteer)
		volunteers.PATCH("/:referenceId/status", h.updateVolunteerStatus)
	}
}

// submit builds the create handler for one form kind. The three public
// forms differ only in the kind baked into the route.
func (h *volunteerHandler) submit(kind domain.VolunteerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateVolunteerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		volunteer, err := h.volunteerService.CreateVolunteer(c.Request.Context(), kind, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToVolunteerResponse(volunteer))
	}
}

// listVolunteers godoc
// @Summary List form submissions
// @Tags volunteers
// @Produce json
// @Param kind query string false "Filter by kind (volunteer, partnership, contact)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListVolunteersResponse
// @Security BearerAuth
// @Router /admin/volunteers [get]
func (h *volunteerHandler) listVolunteers(c *gin.Context) {
	var params dto.ListVolunteersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	volunteers, nextToken, err := h.volunteerService.ListVolunteers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListVolunteersResponse{
		Volunteers: make([]dto.VolunteerResponse, len(volunteers)),
		NextToken:  nextToken,
	}
	for i := range volunteers {
		resp.Volunteers[i] = dto.ToVolunteerResponse(&volunteers[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getVolunteer godoc
// @Summary Get a form submission by reference ID
// @Tags volunteers
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.VolunteerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/volunteers/{referenceId} [get]
func (h *volunteerHandler) getVolunteer(c *gin.Context) {
	volunteer, err := h.volunteerService.GetVolunteerByReferenceID(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}

// updateVolunteerStatus godoc
// @Summary Update a form submission's status
// @Tags volunteers
// @Accept json
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.VolunteerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/volunteers/{referenceId}/status [patch]
func (h *volunteerHandler) updateVolunteerStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := adminActor(c)
	if !ok {
		return
	}

	volunteer, err := h.volunteerService.UpdateVolunteerStatus(c.Request.Context(), c.Param("referenceId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}
