package domain

import "time"

type Product struct {
	ID          ID
	SupplierID  ID
	Supplier    *Supplier
	Name        string
	Description string
	Image       string
	Price       Amount
	Stock       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(supplierID ID, name, description string, price Amount, stock int, active bool) *Product {
	now := time.Now()
	return &Product{
		SupplierID:  supplierID,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SupplierName is empty when the join did not find the supplier.
func (p *Product) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return p.Supplier.Name
}

const (
	ProductCreatedEvent = "product.created"
	ProductUpdatedEvent = "product.updated"
	ProductRemovedEvent = "product.removed"
)

type ProductEvent struct {
	name       string
	ProductID  ID        `json:"product_id"`
	SupplierID ID        `json:"supplier_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Price      Amount    `json:"price,omitempty"`
	Stock      int       `json:"stock,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewProductEvent(name string, product *Product) *ProductEvent {
	return &ProductEvent{
		name:       name,
		ProductID:  product.ID,
		SupplierID: product.SupplierID,
		Name:       product.Name,
		Price:      product.Price,
		Stock:      product.Stock,
		OccurredAt: time.Now(),
	}
}

func NewProductRemovedEvent(id ID) *ProductEvent {
	return &ProductEvent{
		name:       ProductRemovedEvent,
		ProductID:  id,
		OccurredAt: time.Now(),
	}
}

func (e *ProductEvent) GetName() string {
	return e.name
}

func (e *ProductEvent) GetEntityName() string {
	return "product"
}

func (e *ProductEvent) GetEntityID() ID {
	return e.ProductID
}

func (e *ProductEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}
