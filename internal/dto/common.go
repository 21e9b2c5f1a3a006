package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// ListParams defines query parameters for cursor-paginated admin lists.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// UpdateStatusRequest is the body of every admin status PATCH. The status
// string is validated against the entity's own enum in the service layer.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// StatusHistoryEntryResponse is one row of an entity's status history.
type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToStatusHistoryResponse converts domain history entries for API output.
func ToStatusHistoryResponse(entries []domain.StatusHistoryEntry) []StatusHistoryEntryResponse {
	out := make([]StatusHistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = StatusHistoryEntryResponse{Status: e.Status, Note: e.Note, CreatedAt: e.CreatedAt}
	}
	return out
}
