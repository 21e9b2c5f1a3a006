package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
)

// lookupHandler serves the public "where is my submission" endpoint.
type lookupHandler struct {
	lookupService portssvc.LookupSvcFacade
}

func newLookupHandler(ls portssvc.LookupSvcFacade) *lookupHandler {
	return &lookupHandler{lookupService: ls}
}

func registerPublicLookupRoutes(rg *gin.RouterGroup, ls portssvc.LookupSvcFacade) {
	h := newLookupHandler(ls)
	rg.GET("/status/:referenceId", h.lookupStatus)
}

// lookupStatus godoc
// @Summary Look up a submission's status by reference ID
// @Description Resolves any reference ID (donation, request, order, volunteer form) to its current status and history.
// @Tags lookup
// @Produce json
// @Param referenceId path string true "Reference ID"
// @Success 200 {object} dto.StatusLookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /status/{referenceId} [get]
func (h *lookupHandler) lookupStatus(c *gin.Context) {
	resp, err := h.lookupService.LookupStatus(c.Request.Context(), c.Param("referenceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
