package repository

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/adapters/mongo/document"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SupplierRepository struct {
	*BaseRepository[document.SupplierDocument]
}

func NewSupplierRepository(db *mongo.Database) port.SupplierPort {
	return &SupplierRepository{
		BaseRepository: NewBaseRepository[document.SupplierDocument](db),
	}
}

func (r *SupplierRepository) GetAll(ctx context.Context) ([]*domain.Supplier, error) {
	docs, err := r.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	suppliers := make([]*domain.Supplier, len(docs))
	for i := range docs {
		suppliers[i] = docs[i].ToDomain()
	}

	return suppliers, nil
}

func (r *SupplierRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	return r.ExistsByID(ctx, string(id))
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	id, err := r.BaseRepository.Create(ctx, document.ToSupplierDocument(supplier))
	if err != nil {
		return err
	}

	supplier.ID = domain.ID(id)
	return nil
}
