package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// ShoeSvcFacade defines the business operations for inventory records.
type ShoeSvcFacade interface {
	CreateShoe(ctx context.Context, req dto.CreateShoeRequest, createdBy string) (*domain.Shoe, error)

	GetShoeByID(ctx context.Context, shoeID string) (*domain.Shoe, error)

	ListShoes(ctx context.Context, params dto.ListShoesParams) ([]domain.Shoe, error)

	UpdateShoe(ctx context.Context, shoeID string, req dto.UpdateShoeRequest, updatedBy string) (*domain.Shoe, error)

	DeleteShoe(ctx context.Context, shoeID string, deletedBy string) error
}
