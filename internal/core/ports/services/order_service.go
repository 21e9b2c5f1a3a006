package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// OrderSvcFacade defines the business operations for fulfillment orders.
type OrderSvcFacade interface {
	// CreateOrderFromRequest builds an order for an approved shoe request,
	// copying the requester's shipping details.
	CreateOrderFromRequest(ctx context.Context, requestReferenceID string, req dto.CreateOrderRequest, createdBy string) (*domain.Order, error)

	GetOrderByReferenceID(ctx context.Context, referenceID string) (*domain.Order, error)

	ListOrders(ctx context.Context, params dto.ListParams) ([]domain.Order, *string, error)

	// UpdateOrderStatus applies an admin status change. Shipping flips the
	// order's shoes to shipped; cancelling returns them to available.
	UpdateOrderStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Order, error)
}
