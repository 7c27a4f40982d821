package ports

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// Transactor runs fn inside one unit of work. Repositories called with the
// ctx passed to fn join that transaction; nested calls reuse it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdentifierResolver translates external IDs to storage keys. A malformed
// UUID for a UUID-keyed kind reports domain.ErrNotFound, same as a missing row.
type IdentifierResolver interface {
	Resolve(ctx context.Context, kind domain.Kind, externalID string) (domain.Ref, error)
}

// ActivityLog stores the audit trail of committed catalog writes.
type ActivityLog interface {
	Record(ctx context.Context, entry domain.Activity) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// StoredResponse is a response kept for replay under an idempotency key.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore keeps the first response produced for a key. Save reports
// false when a response is already stored for key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*StoredResponse, bool, error)
	Save(ctx context.Context, key string, resp StoredResponse) (bool, error)
}
