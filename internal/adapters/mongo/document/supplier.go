package document

import (
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SupplierDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Document string             `bson:"document"`
	Kind     int                `bson:"kind"`
	Active   bool               `bson:"active"`
}

func (doc SupplierDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (SupplierDocument) CollectionName() string {
	return SupplierCollection
}

func (doc *SupplierDocument) ToDomain() *domain.Supplier {
	return &domain.Supplier{
		ID:       domain.ID(doc.ID.Hex()),
		Name:     doc.Name,
		Document: doc.Document,
		Kind:     domain.SupplierKind(doc.Kind),
		Active:   doc.Active,
	}
}

func ToSupplierDocument(s *domain.Supplier) *SupplierDocument {
	doc := &SupplierDocument{
		Name:     s.Name,
		Document: s.Document,
		Kind:     int(s.Kind),
		Active:   s.Active,
	}
	if s.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(s.ID))
		doc.ID = objectID
	}
	return doc
}
