package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// CreateVolunteerRequest is the payload shared by the volunteer, partnership,
// and contact forms. The kind comes from the route, not the body.
type CreateVolunteerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ListVolunteersParams filters the admin submissions list by kind.
type ListVolunteersParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=volunteer partnership contact"`
	ListParams
}

// VolunteerResponse is the API representation of a submission.
type VolunteerResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	Kind          string                       `json:"kind"`
	Name          string                       `json:"name"`
	Email         string                       `json:"email"`
	Phone         string                       `json:"phone"`
	Message       string                       `json:"message"`
	Status        string                       `json:"status"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToVolunteerResponse converts a domain.Volunteer for API output.
func ToVolunteerResponse(v *domain.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ReferenceID:   v.ReferenceID,
		Kind:          string(v.Kind),
		Name:          v.Name,
		Email:         v.Email,
		Phone:         v.Phone,
		Message:       v.Message,
		Status:        string(v.Status),
		StatusHistory: ToStatusHistoryResponse(v.StatusHistory),
		CreatedAt:     v.CreatedAt,
	}
}

// ListVolunteersResponse wraps a page of submissions.
type ListVolunteersResponse struct {
	Volunteers []VolunteerResponse `json:"volunteers"`
	NextToken  *string             `json:"nextToken,omitempty"`
}
