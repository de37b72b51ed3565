package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/dto"
)

const (
	ModeCreate = "create"
	ModeEdit   = "edit"

	imageField = "imagem_upload"
	formField  = "form"
)

// ProductView is the flattened product shown by the pages. Price and Stock are
// text so an invalid submission can be echoed back as typed.
type ProductView struct {
	ID           string
	SupplierID   string
	SupplierName string
	Name         string
	Description  string
	Image        string
	Price        string
	Stock        string
	Active       bool
	CreatedAt    time.Time
}

type SupplierOption struct {
	ID   string
	Name string
	Kind string
}

// ProductPage is the data of the detail, form and delete pages. Suppliers is
// only filled for the form.
type ProductPage struct {
	Product   ProductView
	Suppliers []SupplierOption
	Errors    map[string]string
	CSRFToken string
	Mode      string
}

func (p ProductPage) IsEdit() bool {
	return p.Mode == ModeEdit
}

func (p ProductPage) Title() string {
	if p.IsEdit() {
		return "Editar produto"
	}
	return "Novo produto"
}

func (p ProductPage) Action() string {
	if p.IsEdit() {
		return "/produtos/editar/" + p.Product.ID
	}
	return "/produtos/novo"
}

type ProductListPage struct {
	Products []ProductView
}

// ProductForm is the submitted product. Image is read from the multipart
// request by the controller, not by binding.
type ProductForm struct {
	ID          string `form:"id"`
	SupplierID  string `form:"fornecedor_id" binding:"required,len=24,hexadecimal"`
	Name        string `form:"nome" binding:"required,max=200"`
	Description string `form:"descricao" binding:"required,max=1000"`
	Price       string `form:"valor" binding:"required"`
	Stock       string `form:"quantidade_estoque" binding:"required,number"`
	Active      bool   `form:"ativo"`
	Image       string `form:"imagem"`
}

func NewProductView(p *domain.Product) ProductView {
	return ProductView{
		ID:           string(p.ID),
		SupplierID:   string(p.SupplierID),
		SupplierName: p.SupplierName(),
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		Price:        p.Price.String(),
		Stock:        strconv.Itoa(p.Stock),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
}

func NewProductViews(products []*domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views
}

func NewSupplierOption(s *domain.Supplier) SupplierOption {
	return SupplierOption{
		ID:   string(s.ID),
		Name: s.Name,
		Kind: s.Kind.String(),
	}
}

func NewSupplierOptions(suppliers []*domain.Supplier) []SupplierOption {
	options := make([]SupplierOption, len(suppliers))
	for i, s := range suppliers {
		options[i] = NewSupplierOption(s)
	}
	return options
}

// View echoes the submission back into the form.
func (f *ProductForm) View() ProductView {
	return ProductView{
		ID:          f.ID,
		SupplierID:  f.SupplierID,
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		Price:       f.Price,
		Stock:       f.Stock,
		Active:      f.Active,
	}
}

// ToRequest converts a form that passed binding validation. Conversion
// failures are reported per field.
func (f *ProductForm) ToRequest() (*dto.ProductRequest, map[string]string) {
	fieldErrors := map[string]string{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		fieldErrors["nome"] = "O campo Nome é obrigatório"
	}
	description := strings.TrimSpace(f.Description)
	if description == "" {
		fieldErrors["descricao"] = "O campo Descrição é obrigatório"
	}

	price, err := domain.ParseAmount(f.Price)
	if errors.Is(err, domain.ErrAmountOutOfRange) {
		fieldErrors["valor"] = "O campo Valor está fora do intervalo permitido"
	} else if err != nil {
		fieldErrors["valor"] = "O campo Valor deve ser um número, ex.: 19,90"
	} else if price < 0 {
		fieldErrors["valor"] = "O campo Valor não pode ser negativo"
	}

	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		fieldErrors["quantidade_estoque"] = "O campo Quantidade em estoque deve ser um número inteiro"
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &dto.ProductRequest{
		ID:          domain.ID(strings.ToLower(f.ID)),
		SupplierID:  domain.ID(strings.ToLower(f.SupplierID)),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Active:      f.Active,
	}, nil
}

var fieldLabels = map[string]string{
	"fornecedor_id":      "Fornecedor",
	"nome":               "Nome",
	"descricao":          "Descrição",
	"valor":              "Valor",
	"quantidade_estoque": "Quantidade em estoque",
}

var registerFormNames sync.Once

// useFormFieldNames makes validation errors report the form name of a field.
func useFormFieldNames() {
	registerFormNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingErrors turns a binding error into messages keyed by form field.
func bindingErrors(err error) map[string]string {
	fieldErrors := map[string]string{}
	if err == nil {
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors[formField] = "Não foi possível ler os dados enviados"
		return fieldErrors
	}

	for _, fe := range validationErrors {
		if _, seen := fieldErrors[fe.Field()]; seen {
			continue
		}
		fieldErrors[fe.Field()] = validationMessage(fe)
	}
	return fieldErrors
}

func validationMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		if fe.Field() == "fornecedor_id" {
			return "Selecione um fornecedor"
		}
		return fmt.Sprintf("O campo %s é obrigatório", label)
	case "max":
		return fmt.Sprintf("O campo %s admite no máximo %s caracteres", label, fe.Param())
	case "number":
		return fmt.Sprintf("O campo %s deve ser um número inteiro", label)
	case "len", "hexadecimal":
		return fmt.Sprintf("O campo %s é inválido", label)
	default:
		return fmt.Sprintf("O campo %s é inválido", label)
	}
}
