package repositories

import (
	"context"
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// ShoeListFilter narrows ListShoes. Zero values mean "no filter".
type ShoeListFilter struct {
	Status domain.ShoeStatus
	Sport  string
	Gender string
}

// ShoeReader defines read operations for inventory data.
type ShoeReader interface {
	FindShoeByID(ctx context.Context, shoeID string) (*domain.Shoe, error)

	// FindShoesByIDs retrieves several shoes at once, keyed by ID. Missing
	// IDs are simply absent from the map.
	FindShoesByIDs(ctx context.Context, shoeIDs []string) (map[string]domain.Shoe, error)

	ListShoes(ctx context.Context, filter ShoeListFilter, limit int, offset int) ([]domain.Shoe, error)
}

// ShoeWriter defines write operations for inventory data.
type ShoeWriter interface {
	SaveShoe(ctx context.Context, shoe domain.Shoe) error
	UpdateShoe(ctx context.Context, shoe domain.Shoe) error
	MarkShoeDeleted(ctx context.Context, shoeID string, deletedAt time.Time, deletedBy string) error

	// SetShoesStatus flips the status of the given shoes without touching
	// their counts (order fulfillment marks shoes shipped this way).
	SetShoesStatus(ctx context.Context, shoeIDs []string, status domain.ShoeStatus, updatedBy string, updatedAt time.Time) error
}

// ShoeRepositoryFacade combines all inventory repository interfaces.
type ShoeRepositoryFacade interface {
	ShoeReader
	ShoeWriter
}
