package repository

import (
	"context"
	"time"

	"github.com/rafaelleal24/estudos/internal/adapters/mongo/document"
	"github.com/rafaelleal24/estudos/internal/adapters/outbox"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
}

func NewOutboxRepository(db *mongo.Database) outbox.Repository {
	return &OutboxRepository{
		BaseRepository: NewBaseRepository[document.OutboxDocument](db),
	}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	_, err := r.Create(ctx, &document.OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EntityID:   entry.EntityID,
		EventData:  string(entry.EventData),
		OccurredAt: occurredAt,
		CreatedAt:  time.Now(),
	})
	return err
}

// FetchPending returns entries oldest first, leaving out those parked after
// maxAttempts failed relays.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]outbox.Entry, error) {
	filter := bson.M{}
	if maxAttempts > 0 {
		filter["attempts"] = bson.M{"$lt": maxAttempts}
	}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i, doc := range docs {
		entries[i] = outbox.Entry{
			ID:         doc.ID.Hex(),
			EventName:  doc.EventName,
			EntityName: doc.EntityName,
			EntityID:   doc.EntityID,
			EventData:  []byte(doc.EventData),
			Attempts:   doc.Attempts,
			OccurredAt: doc.OccurredAt,
		}
	}

	return entries, nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}
	return r.updateByID(ctx, id, bson.M{
		"$inc": bson.M{"attempts": 1},
		"$set": bson.M{"last_error": lastError},
	})
}

// Delete is idempotent: an entry already gone is not an error.
func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	err := r.DeleteByID(ctx, id)
	if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		return nil
	}
	return err
}
