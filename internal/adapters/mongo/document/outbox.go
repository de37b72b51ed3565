package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutboxDocument is a recorded event. entity_id is the product the event is
// about; attempts and last_error track failed relays.
type OutboxDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventName  string             `bson:"event_name"`
	EntityName string             `bson:"entity_name"`
	EntityID   string             `bson:"entity_id"`
	EventData  string             `bson:"event_data"`
	Attempts   int                `bson:"attempts"`
	LastError  string             `bson:"last_error,omitempty"`
	OccurredAt time.Time          `bson:"occurred_at"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc OutboxDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (OutboxDocument) CollectionName() string {
	return OutboxCollection
}
