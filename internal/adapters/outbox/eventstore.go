package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/port"
)

// EventStore writes domain events to the outbox so they are published after
// the surrounding transaction commits.
type EventStore struct {
	outbox Repository
}

func NewEventStore(outbox Repository) port.EventStorePort {
	return &EventStore{outbox: outbox}
}

func (s *EventStore) Save(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("outbox: marshal %s: %w", event.GetName(), err)
	}

	return s.outbox.Insert(ctx, Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EntityID:   string(event.GetEntityID()),
		EventData:  data,
		OccurredAt: event.GetOccurredAt(),
	})
}
