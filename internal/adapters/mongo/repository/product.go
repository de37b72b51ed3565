package repository

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/adapters/mongo/document"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/port"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db),
	}
}

// withSupplier joins each product with its supplier. Products whose supplier
// is gone are still returned, without supplier data.
func withSupplier(stages ...bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, stages...)
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: document.SupplierCollection},
			{Key: "localField", Value: "supplier_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "supplier"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$supplier"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
}

func (r *ProductRepository) GetAllWithSuppliers(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Aggregate(ctx, withSupplier(
		bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}}},
	))
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) GetByIDWithSupplier(ctx context.Context, id domain.ID) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, parseError(err)
	}

	docs, err := r.Aggregate(ctx, withSupplier(
		bson.D{{Key: "$match", Value: bson.M{"_id": objectID}}},
	))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}

	return docs[0].ToDomain(), nil
}

func (r *ProductRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	return r.ExistsByID(ctx, string(id))
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	id, err := r.Create(ctx, document.ToProductDocument(product))
	if err != nil {
		return err
	}

	product.ID = domain.ID(id)
	return nil
}

// Update overwrites the editable fields. image and created_at are left as stored.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	err := r.BaseRepository.Update(ctx, string(product.ID), bson.M{
		"supplier_id": doc.SupplierID,
		"name":        doc.Name,
		"description": doc.Description,
		"price":       doc.Price,
		"stock":       doc.Stock,
		"active":      doc.Active,
		"updated_at":  doc.UpdatedAt,
	})
	if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		return serviceerrors.NewNotFoundError("product not found")
	}
	return err
}

func (r *ProductRepository) Remove(ctx context.Context, id domain.ID) error {
	err := r.DeleteByID(ctx, string(id))
	if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		return serviceerrors.NewNotFoundError("product not found")
	}
	return err
}
