package document

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ProductCollection  = "products"
	SupplierCollection = "suppliers"
	OutboxCollection   = "outbox"
)

// Document is a stored entity. It names its own collection so repositories
// and the lookups joining it agree on where it lives.
type Document interface {
	GetID() primitive.ObjectID
	CollectionName() string
}
