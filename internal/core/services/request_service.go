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

// rejectedLockedMsg is the user-facing refusal for any status change on a
// rejected request, including rejected to rejected.
const rejectedLockedMsg = "Rejected requests cannot change status"

var requestNotifications = map[domain.RequestStatus]portssvc.NotificationTemplate{
	domain.RequestApproved: portssvc.TemplateRequestApproved,
	domain.RequestShipped:  portssvc.TemplateRequestShipped,
	domain.RequestRejected: portssvc.TemplateRequestRejected,
}

type requestService struct {
	BaseService
	repo     portsrepo.RequestRepositoryFacade
	shoeRepo portsrepo.ShoeReader
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// NewRequestService creates a new shoe request service.
func NewRequestService(repo portsrepo.RequestRepositoryFacade, shoeRepo portsrepo.ShoeReader, notifier portssvc.Notifier) portssvc.RequestSvcFacade {
	return &requestService{
		BaseService: BaseService{Notifier: notifier},
		repo:        repo,
		shoeRepo:    shoeRepo,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (*domain.ShoeRequest, error) {
	var boundIDs []string
	for _, item := range req.Items {
		if item.ShoeID != nil && *item.ShoeID != "" {
			boundIDs = append(boundIDs, *item.ShoeID)
		}
	}

	if len(boundIDs) > 0 {
		shoes, err := s.shoeRepo.FindShoesByIDs(ctx, boundIDs)
		if err != nil {
			return nil, fmt.Errorf("loading requested shoes: %w", err)
		}
		for _, id := range boundIDs {
			shoe, ok := shoes[id]
			if !ok {
				return nil, fmt.Errorf("shoe %s: %w", id, apperrors.ErrNotFound)
			}
			if shoe.Status != domain.ShoeAvailable {
				return nil, fmt.Errorf("shoe %s is not available: %w", id, apperrors.ErrValidation)
			}
		}
	}

	refID, err := newReferenceID(ctx, refid.ShoeRequest, refid.Options{}, s.repo.RequestReferenceIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]domain.RequestItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.RequestItem{
			ItemID: uuid.NewString(),
			ShoeID: item.ShoeID,
			Brand:  item.Brand,
			Sport:  item.Sport,
			Gender: item.Gender,
			Size:   item.Size,
			Notes:  item.Notes,
		}
	}

	request := domain.ShoeRequest{
		RequestID:     uuid.NewString(),
		ReferenceID:   refID,
		RequesterName: req.RequesterName,
		Email:         req.Email,
		Phone:         req.Phone,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Notes:         req.Notes,
		Status:        domain.RequestSubmitted,
		Items:         items,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.RequestSubmitted), Note: "Request submitted", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     publicActor,
			LastUpdatedAt: now,
			LastUpdatedBy: publicActor,
		},
	}

	// Bound shoes are reserved at submission, not at approval, so two
	// requesters cannot claim the same pair.
	if err := s.repo.SaveRequest(ctx, request, boundIDs); err != nil {
		return nil, fmt.Errorf("saving request: %w", err)
	}

	s.LogInfo(ctx, "request created", slog.String("reference_id", refID), slog.Int("items", len(items)))
	return &request, nil
}

func (s *requestService) GetRequestByReferenceID(ctx context.Context, referenceID string) (*domain.ShoeRequest, error) {
	return s.repo.FindRequestByReferenceID(ctx, referenceID)
}

func (s *requestService) ListRequests(ctx context.Context, params dto.ListParams) ([]domain.ShoeRequest, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRequests(ctx, limit, params.NextToken)
}

func (s *requestService) UpdateRequestStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.ShoeRequest, error) {
	request, err := s.repo.FindRequestByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	next := domain.RequestStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown request status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if request.Status == domain.RequestRejected {
		return nil, fmt.Errorf("%s: %w", rejectedLockedMsg, apperrors.ErrTransition)
	}
	if !request.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move request from %s to %s: %w", request.Status, next, apperrors.ErrTransition)
	}

	comp := compensationFor(request, next)

	now := time.Now()
	entry := domain.StatusHistoryEntry{Status: string(next), Note: statusNote(req.Note, string(next)), CreatedAt: now}
	if err := s.repo.UpdateRequestStatus(ctx, request.RequestID, next, entry, comp, updatedBy); err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}

	changed := next != request.Status
	request.Status = next
	request.StatusHistory = append(request.StatusHistory, entry)
	request.LastUpdatedAt = now
	request.LastUpdatedBy = updatedBy

	if changed {
		if tmpl, ok := requestNotifications[next]; ok {
			s.NotifyAsync(ctx, portssvc.Notification{
				To:          request.Email,
				Name:        request.RequesterName,
				ReferenceID: request.ReferenceID,
				Template:    tmpl,
			})
		}
	}
	return request, nil
}

// compensationFor describes the inventory adjustment a status change owes.
// Rejection hands the reserved shoes back: count up by one, available again.
// The reverse direction cannot be reached through the transition table, but
// the math is kept symmetric so a future unreject cannot leak stock.
func compensationFor(request *domain.ShoeRequest, next domain.RequestStatus) *portsrepo.InventoryCompensation {
	if next == request.Status {
		return nil
	}
	var boundIDs []string
	for _, item := range request.Items {
		if item.ShoeID != nil && *item.ShoeID != "" {
			boundIDs = append(boundIDs, *item.ShoeID)
		}
	}
	if len(boundIDs) == 0 {
		return nil
	}
	switch {
	case next == domain.RequestRejected:
		return &portsrepo.InventoryCompensation{ShoeIDs: boundIDs, CountDelta: 1, NewStatus: domain.ShoeAvailable}
	case request.Status == domain.RequestRejected:
		return &portsrepo.InventoryCompensation{ShoeIDs: boundIDs, CountDelta: -1, NewStatus: domain.ShoeRequested}
	}
	return nil
}
