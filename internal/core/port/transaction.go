package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager commits every write made through the ctx passed to fn,
// or none of them when fn returns an error. Product services use it to store
// a change together with its outbox event.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
