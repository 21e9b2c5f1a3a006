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
)

type shoeService struct {
	BaseService
	repo portsrepo.ShoeRepositoryFacade
}

var _ portssvc.ShoeSvcFacade = (*shoeService)(nil)

// NewShoeService creates a new inventory service.
func NewShoeService(repo portsrepo.ShoeRepositoryFacade) portssvc.ShoeSvcFacade {
	return &shoeService{repo: repo}
}

func (s *shoeService) CreateShoe(ctx context.Context, req dto.CreateShoeRequest, createdBy string) (*domain.Shoe, error) {
	now := time.Now()
	shoe := domain.Shoe{
		ShoeID:         uuid.NewString(),
		DonationID:     req.DonationID,
		Brand:          req.Brand,
		ModelName:      req.ModelName,
		Gender:         req.Gender,
		Sport:          req.Sport,
		Size:           req.Size,
		Condition:      req.Condition,
		Status:         domain.ShoeAvailable,
		InventoryCount: req.InventoryCount,
		ImageURL:       req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.repo.SaveShoe(ctx, shoe); err != nil {
		return nil, fmt.Errorf("saving shoe: %w", err)
	}

	s.LogInfo(ctx, "shoe added to inventory", slog.String("shoe_id", shoe.ShoeID))
	return &shoe, nil
}

func (s *shoeService) GetShoeByID(ctx context.Context, shoeID string) (*domain.Shoe, error) {
	return s.repo.FindShoeByID(ctx, shoeID)
}

func (s *shoeService) ListShoes(ctx context.Context, params dto.ListShoesParams) ([]domain.Shoe, error) {
	filter := portsrepo.ShoeListFilter{
		Sport:  params.Sport,
		Gender: params.Gender,
	}
	if params.Status != "" {
		status := domain.ShoeStatus(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown shoe status %q: %w", params.Status, apperrors.ErrValidation)
		}
		filter.Status = status
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListShoes(ctx, filter, limit, params.Offset)
}

func (s *shoeService) UpdateShoe(ctx context.Context, shoeID string, req dto.UpdateShoeRequest, updatedBy string) (*domain.Shoe, error) {
	shoe, err := s.repo.FindShoeByID(ctx, shoeID)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil {
		shoe.Brand = *req.Brand
	}
	if req.ModelName != nil {
		shoe.ModelName = *req.ModelName
	}
	if req.Gender != nil {
		shoe.Gender = *req.Gender
	}
	if req.Sport != nil {
		shoe.Sport = *req.Sport
	}
	if req.Size != nil {
		shoe.Size = *req.Size
	}
	if req.Condition != nil {
		shoe.Condition = *req.Condition
	}
	if req.Status != nil {
		status := domain.ShoeStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown shoe status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		shoe.Status = status
	}
	if req.InventoryCount != nil {
		if *req.InventoryCount < 0 {
			return nil, fmt.Errorf("inventory count cannot be negative: %w", apperrors.ErrValidation)
		}
		shoe.InventoryCount = *req.InventoryCount
	}
	if req.ImageURL != nil {
		shoe.ImageURL = *req.ImageURL
	}

	shoe.LastUpdatedAt = time.Now()
	shoe.LastUpdatedBy = updatedBy

	if err := s.repo.UpdateShoe(ctx, *shoe); err != nil {
		return nil, fmt.Errorf("updating shoe: %w", err)
	}
	return shoe, nil
}

func (s *shoeService) DeleteShoe(ctx context.Context, shoeID string, deletedBy string) error {
	shoe, err := s.repo.FindShoeByID(ctx, shoeID)
	if err != nil {
		return err
	}
	if shoe.Status == domain.ShoeRequested {
		return fmt.Errorf("shoe %s is reserved by an open request: %w", shoeID, apperrors.ErrValidation)
	}
	return s.repo.MarkShoeDeleted(ctx, shoeID, time.Now(), deletedBy)
}
