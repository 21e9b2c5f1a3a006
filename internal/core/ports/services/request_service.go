package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// RequestSvcFacade defines the business operations for shoe requests.
type RequestSvcFacade interface {
	// CreateRequest records a public request form submission. Lines bound to
	// inventory reserve their shoes in the same transaction.
	CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (*domain.ShoeRequest, error)

	GetRequestByReferenceID(ctx context.Context, referenceID string) (*domain.ShoeRequest, error)

	ListRequests(ctx context.Context, params dto.ListParams) ([]domain.ShoeRequest, *string, error)

	// UpdateRequestStatus applies an admin status change. Moving into
	// rejected releases the reserved inventory; the rejected state itself is
	// terminal.
	UpdateRequestStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.ShoeRequest, error)
}
