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

type moneyDonationService struct {
	BaseService
	repo portsrepo.MoneyDonationRepositoryFacade
}

var _ portssvc.MoneyDonationSvcFacade = (*moneyDonationService)(nil)

// NewMoneyDonationService creates a new money donation service.
func NewMoneyDonationService(repo portsrepo.MoneyDonationRepositoryFacade, notifier portssvc.Notifier) portssvc.MoneyDonationSvcFacade {
	return &moneyDonationService{
		BaseService: BaseService{Notifier: notifier},
		repo:        repo,
	}
}

func (s *moneyDonationService) CreateMoneyDonation(ctx context.Context, req dto.CreateMoneyDonationRequest) (*domain.MoneyDonation, error) {
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("donation amount must be positive: %w", apperrors.ErrValidation)
	}

	// Money donation IDs embed the donor's name rather than a date.
	refID, err := newReferenceID(ctx, refid.MoneyDonation, refid.Options{Name: req.DonorName}, s.repo.MoneyDonationReferenceIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	donation := domain.MoneyDonation{
		MoneyDonationID: uuid.NewString(),
		ReferenceID:     refID,
		DonorName:       req.DonorName,
		Email:           req.Email,
		Phone:           req.Phone,
		Amount:          req.Amount,
		CheckNumber:     req.CheckNumber,
		Notes:           req.Notes,
		Status:          domain.DonationSubmitted,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.DonationSubmitted), Note: "Donation submitted", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     publicActor,
			LastUpdatedAt: now,
			LastUpdatedBy: publicActor,
		},
	}

	if err := s.repo.SaveMoneyDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("saving money donation: %w", err)
	}

	s.LogInfo(ctx, "money donation created", slog.String("reference_id", refID))
	return &donation, nil
}

func (s *moneyDonationService) GetMoneyDonationByReferenceID(ctx context.Context, referenceID string) (*domain.MoneyDonation, error) {
	return s.repo.FindMoneyDonationByReferenceID(ctx, referenceID)
}

func (s *moneyDonationService) ListMoneyDonations(ctx context.Context, params dto.ListParams) ([]domain.MoneyDonation, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListMoneyDonations(ctx, limit, params.NextToken)
}

func (s *moneyDonationService) UpdateMoneyDonationStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.MoneyDonation, error) {
	donation, err := s.repo.FindMoneyDonationByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	next := domain.DonationStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown donation status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if !donation.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move money donation from %s to %s: %w", donation.Status, next, apperrors.ErrTransition)
	}

	now := time.Now()
	entry := domain.StatusHistoryEntry{Status: string(next), Note: statusNote(req.Note, string(next)), CreatedAt: now}
	if err := s.repo.UpdateMoneyDonationStatus(ctx, donation.MoneyDonationID, next, entry, updatedBy); err != nil {
		return nil, fmt.Errorf("updating money donation status: %w", err)
	}

	changed := next != donation.Status
	donation.Status = next
	donation.StatusHistory = append(donation.StatusHistory, entry)
	donation.LastUpdatedAt = now
	donation.LastUpdatedBy = updatedBy

	if changed {
		if tmpl, ok := donationNotifications[next]; ok {
			s.NotifyAsync(ctx, portssvc.Notification{
				To:          donation.Email,
				Name:        donation.DonorName,
				ReferenceID: donation.ReferenceID,
				Template:    tmpl,
			})
		}
	}
	return donation, nil
}
