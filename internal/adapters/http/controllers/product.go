package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/estudos/internal/adapters/http/handlers"
	"github.com/rafaelleal24/estudos/internal/adapters/http/middleware"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/service"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

const (
	listPath = "/produtos"

	indexTemplate   = "produto/index"
	detailsTemplate = "produto/detalhes"
	formTemplate    = "produto/form"
	deleteTemplate  = "produto/excluir"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	useFormFieldNames()
	return &ProductController{productService: productService}
}

// Index renders every product with its supplier.
func (pc *ProductController) Index(c *gin.Context) {
	products, err := pc.productService.List(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, indexTemplate, ProductListPage{Products: NewProductViews(products)})
}

func (pc *ProductController) Details(c *gin.Context) {
	product, ok := pc.findProduct(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, detailsTemplate, ProductPage{Product: NewProductView(product)})
}

func (pc *ProductController) New(c *gin.Context) {
	pc.renderForm(c, ProductPage{Mode: ModeCreate})
}

// Create always runs the upload once, so an invalid submission still reports
// every problem with the image alongside the field errors.
func (pc *ProductController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var form ProductForm
	fieldErrors := bindingErrors(c.ShouldBind(&form))

	upload, closeUpload, err := formImage(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	defer closeUpload()

	reference, err := pc.productService.UploadImage(ctx, upload)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			handlers.HandleError(c, err)
			return
		}
		fieldErrors[imageField] = err.Error()
	}

	if len(fieldErrors) > 0 {
		pc.rejectCreate(ctx, c, &form, reference, fieldErrors)
		return
	}

	request, conversionErrors := form.ToRequest()
	if conversionErrors != nil {
		pc.rejectCreate(ctx, c, &form, reference, conversionErrors)
		return
	}

	if _, err := pc.productService.Create(ctx, request, reference); err != nil {
		if fields := serviceerrors.FieldErrors(err); fields != nil {
			pc.rejectCreate(ctx, c, &form, reference, fields)
			return
		}
		pc.productService.DiscardImage(ctx, reference)
		handlers.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

func (pc *ProductController) rejectCreate(ctx context.Context, c *gin.Context, form *ProductForm, reference string, fieldErrors map[string]string) {
	pc.productService.DiscardImage(ctx, reference)
	pc.renderForm(c, ProductPage{
		Mode:    ModeCreate,
		Product: form.View(),
		Errors:  fieldErrors,
	})
}

func (pc *ProductController) Edit(c *gin.Context) {
	product, ok := pc.findProduct(c)
	if !ok {
		return
	}

	pc.renderForm(c, ProductPage{Mode: ModeEdit, Product: NewProductView(product)})
}

// Update never touches the stored image.
func (pc *ProductController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := domain.ParseID(c.Param("id"))

	var form ProductForm
	fieldErrors := bindingErrors(c.ShouldBind(&form))

	if !ok || !strings.EqualFold(form.ID, string(id)) {
		handlers.NotFound(c)
		return
	}

	if len(fieldErrors) > 0 {
		pc.rejectUpdate(c, &form, fieldErrors)
		return
	}

	request, conversionErrors := form.ToRequest()
	if conversionErrors != nil {
		pc.rejectUpdate(c, &form, conversionErrors)
		return
	}

	if _, err := pc.productService.Update(ctx, request); err != nil {
		if fields := serviceerrors.FieldErrors(err); fields != nil {
			pc.rejectUpdate(c, &form, fields)
			return
		}
		handlers.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

func (pc *ProductController) rejectUpdate(c *gin.Context, form *ProductForm, fieldErrors map[string]string) {
	pc.renderForm(c, ProductPage{
		Mode:    ModeEdit,
		Product: form.View(),
		Errors:  fieldErrors,
	})
}

func (pc *ProductController) ConfirmDelete(c *gin.Context) {
	product, ok := pc.findProduct(c)
	if !ok {
		return
	}

	token, err := middleware.CSRFToken(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, deleteTemplate, ProductPage{
		Product:   NewProductView(product),
		CSRFToken: token,
	})
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.NotFound(c)
		return
	}

	if err := pc.productService.Remove(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// findProduct loads the product named by the route, answering 404 itself
// when the id is malformed or unknown.
func (pc *ProductController) findProduct(c *gin.Context) (*domain.Product, bool) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.NotFound(c)
		return nil, false
	}

	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return nil, false
	}
	return product, true
}

// renderForm fills the supplier selector and the anti-forgery token.
func (pc *ProductController) renderForm(c *gin.Context, page ProductPage) {
	suppliers, err := pc.productService.Suppliers(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	token, err := middleware.CSRFToken(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	page.Suppliers = NewSupplierOptions(suppliers)
	page.CSRFToken = token
	c.HTML(http.StatusOK, formTemplate, page)
}

// formImage opens the uploaded image, if any. The returned close func is never nil.
func formImage(c *gin.Context) (*domain.ImageUpload, func(), error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		return nil, func() {}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &domain.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, func() { file.Close() }, nil
}
