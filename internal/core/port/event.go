package port

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// EventStorePort records an event for later publication. It joins the
// transaction carried by ctx, if any.
type EventStorePort interface {
	Save(ctx context.Context, event domain.Event) error
}
