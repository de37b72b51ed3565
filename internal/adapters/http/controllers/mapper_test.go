package controllers

import (
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/estudos/internal/core/domain"
)

func TestNewProductView(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	product := &domain.Product{
		ID:         "aabbccddee112233aabbcc01",
		SupplierID: "aabbccddee112233aabbcc00",
		Supplier:   &domain.Supplier{Name: "Papelaria Central"},
		Name:       "Caderno",
		Price:      domain.NewAmountFromCents(123450),
		Stock:      7,
		Active:     true,
		CreatedAt:  created,
	}

	view := NewProductView(product)

	if view.Price != "1234,50" || view.Stock != "7" || view.SupplierName != "Papelaria Central" {
		t.Fatalf("unexpected view %+v", view)
	}
	if !view.CreatedAt.Equal(created) {
		t.Fatalf("expected created at %v, got %v", created, view.CreatedAt)
	}
}

func TestNewSupplierOption(t *testing.T) {
	option := NewSupplierOption(&domain.Supplier{ID: "aabbccddee112233aabbcc00", Name: "Maria", Kind: domain.SupplierKindIndividual})

	if option.Kind != "Pessoa Física" || option.Name != "Maria" {
		t.Fatalf("unexpected option %+v", option)
	}
}

func TestProductForm_ToRequest(t *testing.T) {
	form := ProductForm{
		ID:          "aabbccddee112233aabbcc01",
		SupplierID:  "AABBCCDDEE112233AABBCC00",
		Name:        "  Caderno ",
		Description: "Capa dura",
		Price:       "1.234,5",
		Stock:       "3",
		Active:      true,
	}

	t.Run("converts a valid form", func(t *testing.T) {
		f := form
		f.Price = "12,5"
		request, fieldErrors := f.ToRequest()
		if fieldErrors != nil {
			t.Fatalf("expected no errors, got %v", fieldErrors)
		}
		if request.Price != domain.NewAmountFromCents(1250) || request.Stock != 3 {
			t.Fatalf("unexpected request %+v", request)
		}
		if request.Name != "Caderno" || request.SupplierID != "aabbccddee112233aabbcc00" {
			t.Fatalf("expected normalised values, got %+v", request)
		}
	})

	t.Run("reports conversion failures per field", func(t *testing.T) {
		f := form
		f.Name = "   "
		f.Price = "-3"
		f.Stock = "99999999999999999999"

		_, fieldErrors := f.ToRequest()

		for _, field := range []string{"nome", "valor", "quantidade_estoque"} {
			if fieldErrors[field] == "" {
				t.Fatalf("expected error on %s, got %v", field, fieldErrors)
			}
		}
	})

	t.Run("rejects prices that do not fit in cents", func(t *testing.T) {
		for _, price := range []string{"184467440737095516,16", "92233720368547758,08", "1e17"} {
			f := form
			f.Price = price

			request, fieldErrors := f.ToRequest()
			if request != nil || fieldErrors["valor"] == "" {
				t.Fatalf("price %q: expected an error on valor, got %+v %v", price, request, fieldErrors)
			}
		}
	})
}

func TestProductPage(t *testing.T) {
	create := ProductPage{Mode: ModeCreate}
	edit := ProductPage{Mode: ModeEdit, Product: ProductView{ID: "abc"}}

	if create.IsEdit() || create.Action() != "/produtos/novo" || create.Title() != "Novo produto" {
		t.Fatalf("unexpected create page %+v", create)
	}
	if !edit.IsEdit() || edit.Action() != "/produtos/editar/abc" || edit.Title() != "Editar produto" {
		t.Fatalf("unexpected edit page %+v", edit)
	}
}

func TestBindingErrors_NonValidationError(t *testing.T) {
	fieldErrors := bindingErrors(errors.New("strconv.ParseBool: parsing \"on\": invalid syntax"))

	if fieldErrors[formField] == "" {
		t.Fatalf("expected a form level error, got %v", fieldErrors)
	}
	if len(bindingErrors(nil)) != 0 {
		t.Fatal("expected no errors for nil")
	}
}
