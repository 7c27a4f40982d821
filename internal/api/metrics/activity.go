package metrics

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// ActivityLog counts every entry passed to the wrapped log.
type ActivityLog struct {
	next ports.ActivityLog
}

func NewActivityLog(next ports.ActivityLog) *ActivityLog {
	return &ActivityLog{next: next}
}

func (l *ActivityLog) Record(ctx context.Context, entry domain.Activity) error {
	RecordsWrittenTotal.WithLabelValues(string(entry.Kind), string(entry.Action)).Inc()
	if err := l.next.Record(ctx, entry); err != nil {
		ActivityErrorsTotal.Inc()
		return err
	}
	return nil
}

func (l *ActivityLog) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return l.next.Recent(ctx, limit)
}
