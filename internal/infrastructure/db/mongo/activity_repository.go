package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

const collectionActivity = "activity"

// activityDoc is the stored shape of a domain.Activity.
type activityDoc struct {
	Kind       string    `bson:"kind"`
	EntityID   string    `bson:"entity_id"`
	Action     string    `bson:"action"`
	Label      string    `bson:"label,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

// ActivityRepository implements ports.ActivityLog using MongoDB.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

// Record appends an entry to the activity collection.
func (r *ActivityRepository) Record(ctx context.Context, entry domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		Kind:       string(entry.Kind),
		EntityID:   entry.ExternalID,
		Action:     string(entry.Action),
		Label:      entry.Label,
		OccurredAt: entry.OccurredAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}

	out := make([]domain.Activity, len(docs))
	for i, d := range docs {
		out[i] = domain.Activity{
			Kind:       domain.Kind(d.Kind),
			ExternalID: d.EntityID,
			Action:     domain.Action(d.Action),
			Label:      d.Label,
			OccurredAt: d.OccurredAt.UTC(),
		}
	}
	return out, nil
}

// EnsureIndexes creates the indexes Recent and per-record lookups rely on.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "entity_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
