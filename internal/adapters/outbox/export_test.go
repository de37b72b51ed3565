package outbox

import "context"

func (h *Handler) ProcessEvents(ctx context.Context) int {
	return h.processEvents(ctx)
}
