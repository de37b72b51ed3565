package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/estudos/internal/core/port"
)

// Entry is a recorded event waiting to be relayed. Attempts counts failed
// publications.
type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EntityID   string
	EventData  []byte
	Attempts   int
	OccurredAt time.Time
}

// Message is the broker message for the entry. The entry id becomes the
// message id.
func (e Entry) Message() port.Message {
	return port.Message{
		ID:         e.ID,
		EventName:  e.EventName,
		EntityName: e.EntityName,
		EntityID:   e.EntityID,
		Body:       e.EventData,
		OccurredAt: e.OccurredAt,
	}
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	// Insert joins the transaction carried by ctx, if any.
	Insert(ctx context.Context, entry Entry) error
	// FetchPending returns the oldest entries that failed fewer than
	// maxAttempts times. maxAttempts <= 0 returns every entry.
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]Entry, error)
	MarkFailed(ctx context.Context, id string, cause error) error
	Delete(ctx context.Context, id string) error
}
