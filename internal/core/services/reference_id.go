package services

import (
	"context"
	"fmt"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/utils/refid"
)

// publicActor is recorded as the audit actor for unauthenticated form
// submissions.
const publicActor = "public"

// referenceIDMaxAttempts bounds the suffix collision re-roll loop. With a
// four character random suffix a collision is already rare; five misses in a
// row means something is wrong and the caller should see an error.
const referenceIDMaxAttempts = 5

func newReferenceID(ctx context.Context, entityType refid.EntityType, opts refid.Options, exists func(context.Context, string) (bool, error)) (string, error) {
	for attempt := 0; attempt < referenceIDMaxAttempts; attempt++ {
		id, err := refid.Generate(entityType, opts)
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("checking reference id uniqueness: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free reference id after %d attempts: %w", referenceIDMaxAttempts, apperrors.ErrDuplicate)
}
