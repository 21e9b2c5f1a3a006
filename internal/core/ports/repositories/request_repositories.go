package repositories

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// InventoryCompensation describes the inventory adjustment written alongside
// a request-status change, in the same database transaction. CountDelta is
// +1 when rejecting releases stock and -1 when un-rejecting re-reserves it.
type InventoryCompensation struct {
	ShoeIDs    []string
	CountDelta int
	NewStatus  domain.ShoeStatus
}

// RequestReader defines read operations for shoe request data.
type RequestReader interface {
	// FindRequestByReferenceID retrieves a request with its line items and
	// status history.
	FindRequestByReferenceID(ctx context.Context, referenceID string) (*domain.ShoeRequest, error)

	RequestReferenceIDExists(ctx context.Context, referenceID string) (bool, error)

	ListRequests(ctx context.Context, limit int, nextToken *string) ([]domain.ShoeRequest, *string, error)
}

// RequestWriter defines write operations for shoe request data.
type RequestWriter interface {
	// SaveRequest persists a new request, its line items, its seed history
	// entry, and flips each shoe in reserveShoeIDs to requested, all in one
	// transaction. Reservation happens at creation, not at approval.
	SaveRequest(ctx context.Context, request domain.ShoeRequest, reserveShoeIDs []string) error

	// UpdateRequestStatus persists a status change, appends the history
	// entry, and applies the optional inventory compensation atomically.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, entry domain.StatusHistoryEntry, comp *InventoryCompensation, updatedBy string) error
}

// RequestRepositoryFacade combines all shoe request repository interfaces.
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
}
