package repositories

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// OrderReader defines read operations for order data.
type OrderReader interface {
	FindOrderByReferenceID(ctx context.Context, referenceID string) (*domain.Order, error)
	OrderReferenceIDExists(ctx context.Context, referenceID string) (bool, error)
	ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.Order, *string, error)
}

// OrderWriter defines write operations for order data.
type OrderWriter interface {
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderStatus persists a status change and appends the history
	// entry; shoeStatus, when non-nil, flips the order's shoes in the same
	// transaction (shipped on fulfillment, available again on cancellation).
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, entry domain.StatusHistoryEntry, shoeStatus *domain.ShoeStatus, updatedBy string) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
