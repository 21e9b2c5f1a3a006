package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/dto"
)

// LookupSvcFacade answers public status lookups by reference ID. The entity
// type is derived from the ID's prefix, so one endpoint serves every form.
type LookupSvcFacade interface {
	LookupStatus(ctx context.Context, referenceID string) (*dto.StatusLookupResponse, error)
}
