package port

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SupplierPort interface {
	GetAll(ctx context.Context) ([]*domain.Supplier, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
	Create(ctx context.Context, supplier *domain.Supplier) error
}
