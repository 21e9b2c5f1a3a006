package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
	"github.com/newstepsproject/backend/internal/utils/refid"
)

type orderService struct {
	BaseService
	repo        portsrepo.OrderRepositoryFacade
	requestRepo portsrepo.RequestReader
	shoeRepo    portsrepo.ShoeReader
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// NewOrderService creates a new order service.
func NewOrderService(repo portsrepo.OrderRepositoryFacade, requestRepo portsrepo.RequestReader, shoeRepo portsrepo.ShoeReader) portssvc.OrderSvcFacade {
	return &orderService{
		repo:        repo,
		requestRepo: requestRepo,
		shoeRepo:    shoeRepo,
	}
}

func (s *orderService) CreateOrderFromRequest(ctx context.Context, requestReferenceID string, req dto.CreateOrderRequest, createdBy string) (*domain.Order, error) {
	request, err := s.requestRepo.FindRequestByReferenceID(ctx, requestReferenceID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestApproved {
		return nil, fmt.Errorf("orders require an approved request, request is %s: %w", request.Status, apperrors.ErrValidation)
	}

	shoes, err := s.shoeRepo.FindShoesByIDs(ctx, req.ShoeIDs)
	if err != nil {
		return nil, fmt.Errorf("loading order shoes: %w", err)
	}
	for _, id := range req.ShoeIDs {
		shoe, ok := shoes[id]
		if !ok {
			return nil, fmt.Errorf("shoe %s: %w", id, apperrors.ErrNotFound)
		}
		if shoe.Status == domain.ShoeShipped {
			return nil, fmt.Errorf("shoe %s has already shipped: %w", id, apperrors.ErrValidation)
		}
	}

	refID, err := newReferenceID(ctx, refid.Order, refid.Options{}, s.repo.OrderReferenceIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]domain.OrderItem, len(req.ShoeIDs))
	for i, shoeID := range req.ShoeIDs {
		items[i] = domain.OrderItem{ItemID: uuid.NewString(), ShoeID: shoeID}
	}

	order := domain.Order{
		OrderID:       uuid.NewString(),
		ReferenceID:   refID,
		RequestID:     &request.RequestID,
		RecipientName: request.RequesterName,
		Email:         request.Email,
		Street:        request.Street,
		City:          request.City,
		State:         request.State,
		ZipCode:       request.ZipCode,
		TrackingCode:  req.TrackingCode,
		Status:        domain.OrderSubmitted,
		Items:         items,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.OrderSubmitted), Note: "Order created", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	s.LogInfo(ctx, "order created",
		slog.String("reference_id", refID),
		slog.String("request_reference_id", requestReferenceID))
	return &order, nil
}

func (s *orderService) GetOrderByReferenceID(ctx context.Context, referenceID string) (*domain.Order, error) {
	return s.repo.FindOrderByReferenceID(ctx, referenceID)
}

func (s *orderService) ListOrders(ctx context.Context, params dto.ListParams) ([]domain.Order, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListOrders(ctx, limit, params.NextToken)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Order, error) {
	order, err := s.repo.FindOrderByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	next := domain.OrderStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, next, apperrors.ErrTransition)
	}

	// Shipping marks the order's shoes shipped; cancelling hands them back
	// to the browsable pool. Both flips ride the same transaction as the
	// status write.
	var shoeStatus *domain.ShoeStatus
	if next != order.Status {
		switch next {
		case domain.OrderShipped:
			st := domain.ShoeShipped
			shoeStatus = &st
		case domain.OrderCancelled:
			st := domain.ShoeAvailable
			shoeStatus = &st
		}
	}

	now := time.Now()
	entry := domain.StatusHistoryEntry{Status: string(next), Note: statusNote(req.Note, string(next)), CreatedAt: now}
	if err := s.repo.UpdateOrderStatus(ctx, order.OrderID, next, entry, shoeStatus, updatedBy); err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	order.Status = next
	order.StatusHistory = append(order.StatusHistory, entry)
	order.LastUpdatedAt = now
	order.LastUpdatedBy = updatedBy
	return order, nil
}
