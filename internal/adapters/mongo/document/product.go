package document

import (
	"time"

	"github.com/rafaelleal24/estudos/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SupplierID  primitive.ObjectID `bson:"supplier_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Price       int64              `bson:"price"`
	Stock       int                `bson:"stock"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`

	// Supplier is only present on documents read through the supplier lookup.
	Supplier *SupplierDocument `bson:"supplier,omitempty"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (ProductDocument) CollectionName() string {
	return ProductCollection
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	product := &domain.Product{
		ID:          domain.ID(doc.ID.Hex()),
		SupplierID:  domain.ID(doc.SupplierID.Hex()),
		Name:        doc.Name,
		Description: doc.Description,
		Image:       doc.Image,
		Price:       domain.Amount(doc.Price),
		Stock:       doc.Stock,
		Active:      doc.Active,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.Supplier != nil {
		product.Supplier = doc.Supplier.ToDomain()
	}
	return product
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       int64(p.Price),
		Stock:       p.Stock,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(p.ID))
		doc.ID = objectID
	}

	if p.SupplierID != "" {
		supplierID, _ := primitive.ObjectIDFromHex(string(p.SupplierID))
		doc.SupplierID = supplierID
	}

	return doc
}
