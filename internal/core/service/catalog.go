package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// Option configures a catalog service.
type Option func(*catalog)

// WithClock replaces the wall clock. ADR and tech-debt IDs take their date
// from it.
func WithClock(now func() time.Time) Option {
	return func(c *catalog) { c.now = now }
}

// catalog holds what every entity service shares: the unit of work, the
// activity log and the clock.
type catalog struct {
	tx       ports.Transactor
	activity ports.ActivityLog
	log      zerolog.Logger
	now      func() time.Time
}

func newCatalog(tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts []Option) catalog {
	c := catalog{tx: tx, activity: activity, log: log, now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// timestamp is the current time at the store's microsecond precision, so a
// record read back compares equal to the one written.
func (c *catalog) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

// record appends to the activity log after commit. The write already
// happened, so a failure here is only logged.
func (c *catalog) record(ctx context.Context, kind domain.Kind, id string, action domain.Action, label string) {
	if c.activity == nil {
		return
	}
	entry := domain.Activity{
		Kind:       kind,
		ExternalID: id,
		Action:     action,
		Label:      label,
		OccurredAt: c.timestamp(),
	}
	if err := c.activity.Record(ctx, entry); err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Str("id", id).Msg("activity not recorded")
	}
}

// resolveOptional resolves an optional reference. An unresolvable ID yields
// ok=false with no error so the caller can drop the link.
func resolveOptional(ctx context.Context, r ports.IdentifierResolver, kind domain.Kind, id string) (domain.Ref, bool, error) {
	ref, err := r.Resolve(ctx, kind, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Ref{}, false, nil
	}
	if err != nil {
		return domain.Ref{}, false, err
	}
	return ref, true, nil
}

// lookupID normalises an external ID for a lookup. Malformed UUIDs are
// reported as not found.
func lookupID(kind domain.Kind, raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if !kind.UsesUUID() {
		if id == "" {
			return "", domain.NotFound(kind, raw)
		}
		return id, nil
	}
	canonical, ok := domain.CanonicalUUID(id)
	if !ok {
		return "", domain.NotFound(kind, raw)
	}
	return canonical, nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid(field, "is required")
	}
	return nil
}

// requiredIfSet checks an optional update field only when it is present.
func requiredIfSet(field string, value *string) error {
	if value == nil {
		return nil
	}
	return required(field, *value)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setList(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string{}, (*src)...)
	}
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func keyPtr(k int64) *int64 {
	return &k
}
