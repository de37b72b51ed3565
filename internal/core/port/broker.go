package port

import (
	"context"
	"time"
)

// Message is an event serialised for the broker. ID is assigned once, when the
// event is recorded, so every relay of the same event carries the same ID and
// consumers can drop duplicates.
type Message struct {
	ID         string
	EventName  string
	EntityName string
	EntityID   string
	Body       []byte
	OccurredAt time.Time
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type BrokerPort interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}
