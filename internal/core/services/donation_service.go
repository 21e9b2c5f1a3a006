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

// donationNotifications maps each notifiable donation status to its email
// template. Submitted is absent on purpose: the confirmation page already
// shows the reference ID.
var donationNotifications = map[domain.DonationStatus]portssvc.NotificationTemplate{
	domain.DonationReceived:  portssvc.TemplateDonationReceived,
	domain.DonationProcessed: portssvc.TemplateDonationProcessed,
	domain.DonationCancelled: portssvc.TemplateDonationCancelled,
}

type donationService struct {
	BaseService
	repo portsrepo.DonationRepositoryFacade
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// NewDonationService creates a new donation service.
func NewDonationService(repo portsrepo.DonationRepositoryFacade, notifier portssvc.Notifier) portssvc.DonationSvcFacade {
	return &donationService{
		BaseService: BaseService{Notifier: notifier},
		repo:        repo,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	refID, err := s.donationReferenceID(ctx, req.OldID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	donation := domain.Donation{
		DonationID:  uuid.NewString(),
		ReferenceID: refID,
		DonorName:   req.DonorName,
		Email:       req.Email,
		Phone:       req.Phone,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		NumShoes:    req.NumShoes,
		Notes:       req.Notes,
		OldID:       req.OldID,
		Status:      domain.DonationSubmitted,
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

	if err := s.repo.SaveDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("saving donation: %w", err)
	}

	s.LogInfo(ctx, "donation created", slog.String("reference_id", refID))
	return &donation, nil
}

// donationReferenceID picks the reference ID for a new donation. Legacy
// imports that carry an old ID go through refid.MigrateLegacy first: a
// recognized legacy identifier yields a current-scheme ID, which is used as
// long as it is still free. Everything else gets a freshly generated one.
func (s *donationService) donationReferenceID(ctx context.Context, oldID *string) (string, error) {
	if oldID != nil && *oldID != "" {
		migrated := refid.MigrateLegacy(*oldID)
		if refid.Validate(migrated, refid.Donation) {
			taken, err := s.repo.DonationReferenceIDExists(ctx, migrated)
			if err != nil {
				return "", fmt.Errorf("checking reference id uniqueness: %w", err)
			}
			if !taken {
				return migrated, nil
			}
		}
	}
	return newReferenceID(ctx, refid.Donation, refid.Options{}, s.repo.DonationReferenceIDExists)
}

func (s *donationService) GetDonationByReferenceID(ctx context.Context, referenceID string) (*domain.Donation, error) {
	return s.repo.FindDonationByReferenceID(ctx, referenceID)
}

func (s *donationService) ListDonations(ctx context.Context, params dto.ListParams) ([]domain.Donation, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListDonations(ctx, limit, params.NextToken)
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Donation, error) {
	donation, err := s.repo.FindDonationByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	next := domain.DonationStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown donation status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if !donation.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move donation from %s to %s: %w", donation.Status, next, apperrors.ErrTransition)
	}

	now := time.Now()
	entry := domain.StatusHistoryEntry{Status: string(next), Note: statusNote(req.Note, string(next)), CreatedAt: now}
	if err := s.repo.UpdateDonationStatus(ctx, donation.DonationID, next, entry, updatedBy); err != nil {
		return nil, fmt.Errorf("updating donation status: %w", err)
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
