package port

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	GetAllWithSuppliers(ctx context.Context) ([]*domain.Product, error)
	GetByIDWithSupplier(ctx context.Context, id domain.ID) (*domain.Product, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Remove(ctx context.Context, id domain.ID) error
}
