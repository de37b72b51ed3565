package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/core/logger"
	"github.com/rafaelleal24/estudos/internal/core/port"
)

// Handler relays product events from the outbox to the broker. An entry is
// deleted only after it was published, so delivery is at least once.
type Handler struct {
	outbox      Repository
	broker      port.BrokerPort
	interval    time.Duration
	batch       int
	maxAttempts int
}

func NewHandler(outbox Repository, broker port.BrokerPort, config config.OutboxConfig) *Handler {
	return &Handler{
		outbox:      outbox,
		broker:      broker,
		interval:    config.Interval,
		batch:       config.BatchSize,
		maxAttempts: config.MaxAttempts,
	}
}

func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	logger.Info(ctx, "outbox: relay started", map[string]any{
		"interval":     h.interval,
		"batch":        h.batch,
		"max_attempts": h.maxAttempts,
	})

	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "outbox: relay stopped", nil)
			return
		case <-ticker.C:
			h.processEvents(ctx)
		}
	}
}

// processEvents returns the number of entries published.
func (h *Handler) processEvents(ctx context.Context) int {
	entries, err := h.outbox.FetchPending(ctx, h.batch, h.maxAttempts)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
				"batch": h.batch,
			})
		}
		return 0
	}

	published := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		attrs := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
			"entity_id":   entry.EntityID,
			"attempt":     entry.Attempts + 1,
		}
		if err := h.broker.Publish(ctx, entry.Message()); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, attrs)
			if markErr := h.outbox.MarkFailed(ctx, entry.ID, err); markErr != nil {
				logger.Error(ctx, "outbox: failed to record publish failure", markErr, attrs)
			}
			if h.maxAttempts > 0 && entry.Attempts+1 >= h.maxAttempts {
				logger.Warn(ctx, "outbox: event parked after too many attempts", attrs)
			}
			continue
		}
		published++

		logger.Debug(ctx, "outbox: event published", attrs)

		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, attrs)
		}
	}

	return published
}
