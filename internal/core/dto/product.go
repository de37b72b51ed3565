package dto

import "github.com/rafaelleal24/estudos/internal/core/domain"

// ProductRequest carries an already validated product submission.
type ProductRequest struct {
	ID          domain.ID
	SupplierID  domain.ID
	Name        string
	Description string
	Price       domain.Amount
	Stock       int
	Active      bool
}
