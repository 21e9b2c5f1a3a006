package services

import (
	"context"
	"fmt"

	"github.com/newstepsproject/backend/internal/apperrors"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
	"github.com/newstepsproject/backend/internal/utils/refid"
)

// lookupService serves the public status lookup. The entity type is read off
// the reference ID itself, so the caller never has to say what kind of
// record they are asking about.
type lookupService struct {
	BaseService
	donations      portsrepo.DonationReader
	moneyDonations portsrepo.MoneyDonationReader
	requests       portsrepo.RequestReader
	orders         portsrepo.OrderReader
	volunteers     portsrepo.VolunteerReader
}

var _ portssvc.LookupSvcFacade = (*lookupService)(nil)

// NewLookupService creates a new status lookup service.
func NewLookupService(repos *portsrepo.RepositoryProvider) portssvc.LookupSvcFacade {
	return &lookupService{
		donations:      repos.DonationRepo,
		moneyDonations: repos.MoneyDonationRepo,
		requests:       repos.RequestRepo,
		orders:         repos.OrderRepo,
		volunteers:     repos.VolunteerRepo,
	}
}

func (s *lookupService) LookupStatus(ctx context.Context, referenceID string) (*dto.StatusLookupResponse, error) {
	parsed := refid.Parse(referenceID)
	if !parsed.IsValid {
		return nil, fmt.Errorf("unrecognized reference id %q: %w", referenceID, apperrors.ErrValidation)
	}

	resp := &dto.StatusLookupResponse{
		ReferenceID: referenceID,
		EntityType:  string(parsed.EntityType),
	}

	switch parsed.EntityType {
	case refid.Donation:
		d, err := s.donations.FindDonationByReferenceID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		resp.Status = string(d.Status)
		resp.StatusHistory = dto.ToStatusHistoryResponse(d.StatusHistory)
	case refid.MoneyDonation:
		d, err := s.moneyDonations.FindMoneyDonationByReferenceID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		resp.Status = string(d.Status)
		resp.StatusHistory = dto.ToStatusHistoryResponse(d.StatusHistory)
	case refid.ShoeRequest:
		r, err := s.requests.FindRequestByReferenceID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		resp.Status = string(r.Status)
		resp.StatusHistory = dto.ToStatusHistoryResponse(r.StatusHistory)
	case refid.Order:
		o, err := s.orders.FindOrderByReferenceID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		resp.Status = string(o.Status)
		resp.StatusHistory = dto.ToStatusHistoryResponse(o.StatusHistory)
	case refid.Volunteer, refid.Partnership, refid.Contact:
		v, err := s.volunteers.FindVolunteerByReferenceID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		resp.Status = string(v.Status)
		resp.StatusHistory = dto.ToStatusHistoryResponse(v.StatusHistory)
	default:
		return nil, fmt.Errorf("no lookup for entity type %s: %w", parsed.EntityType, apperrors.ErrConfiguration)
	}
	return resp, nil
}
