package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/rafaelleal24/estudos/internal/adapters/http/controllers"
	"github.com/rafaelleal24/estudos/internal/adapters/http/views"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/port/mock"
	"github.com/rafaelleal24/estudos/internal/core/service"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

const (
	supplierID = domain.ID("aabbccddee112233aabbcc00")
	unknownID  = "aabbccddee112233aabbccff"
	imageRef   = "/imagens/5f0c.png"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type fixture struct {
	engine   *gin.Engine
	products *memoryProducts
	storage  *mock.MockImageStoragePort
	events   *mock.MockEventStorePort
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	supplierList := []*domain.Supplier{
		{ID: supplierID, Name: "Papelaria Central", Kind: domain.SupplierKindCompany, Active: true},
	}
	f := &fixture{
		products: newMemoryProducts(supplierList),
		storage:  mock.NewMockImageStoragePort(ctrl),
		events:   mock.NewMockEventStorePort(ctrl),
	}

	suppliers := mock.NewMockSupplierPort(ctrl)
	suppliers.EXPECT().GetAll(gomock.Any()).Return(supplierList, nil).AnyTimes()
	suppliers.EXPECT().Exists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id domain.ID) (bool, error) {
			return id == supplierID, nil
		}).AnyTimes()

	cache := mock.NewMockCachePort[domain.Product](ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tx := mock.NewMockTransactionManager(ctrl)
	tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	svc := service.NewProductService(f.products, suppliers, f.storage, f.events, cache, tx, time.Minute)
	pc := controllers.NewProductController(svc)

	f.engine = gin.New()
	f.engine.SetHTMLTemplate(views.Templates())
	f.engine.GET("/produtos", pc.Index)
	f.engine.GET("/produtos/detalhes/:id", pc.Details)
	f.engine.GET("/produtos/novo", pc.New)
	f.engine.POST("/produtos/novo", pc.Create)
	f.engine.GET("/produtos/editar/:id", pc.Edit)
	f.engine.POST("/produtos/editar/:id", pc.Update)
	f.engine.GET("/produtos/excluir/:id", pc.ConfirmDelete)
	f.engine.POST("/produtos/excluir/:id", pc.Delete)
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (f *fixture) seed(t *testing.T, name string) domain.Product {
	t.Helper()
	p := domain.NewProduct(supplierID, name, "Descrição de "+name, domain.NewAmountFromCents(1990), 5, true)
	p.Image = "/imagens/existing.png"
	if err := f.products.Add(context.Background(), p); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return *p
}

func productFields() map[string]string {
	return map[string]string{
		"fornecedor_id":      string(supplierID),
		"nome":               "Caderno",
		"descricao":          "Caderno universitário",
		"valor":              "19,90",
		"quantidade_estoque": "12",
		"ativo":              "true",
	}
}

func multipartRequest(t *testing.T, path string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if filename != "" {
		part, err := writer.CreateFormFile("imagem_upload", filename)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, _ = part.Write(content)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func formRequest(path string, fields map[string]string) *http.Request {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func expectBody(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(w.Body.String(), fragment) {
			t.Fatalf("expected body to contain %q, got:\n%s", fragment, w.Body.String())
		}
	}
}

func TestProductController_Index(t *testing.T) {
	t.Run("empty store renders an empty table", func(t *testing.T) {
		f := setup(t)

		w := f.get("/produtos")

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Nenhum produto cadastrado.")
	})

	t.Run("lists products with supplier name", func(t *testing.T) {
		f := setup(t)
		f.seed(t, "Caneta")
		f.seed(t, "Borracha")

		w := f.get("/produtos")

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Caneta", "Borracha", "Papelaria Central", "R$ 19,90")
	})

	t.Run("fetch error renders the error page", func(t *testing.T) {
		f := setup(t)
		f.products.listErr = errors.New("connection refused")

		w := f.get("/produtos")

		expectStatus(t, w, http.StatusInternalServerError)
		if strings.Contains(w.Body.String(), "connection refused") {
			t.Fatal("internal error message must not be shown")
		}
	})
}

func TestProductController_Details(t *testing.T) {
	f := setup(t)
	product := f.seed(t, "Caneta")

	t.Run("renders product", func(t *testing.T) {
		w := f.get("/produtos/detalhes/" + string(product.ID))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Caneta", "Papelaria Central", "/imagens/existing.png")
		if strings.Contains(w.Body.String(), "<select") {
			t.Fatal("detail page must not load the supplier selector")
		}
	})

	t.Run("upper case id resolves to the same product", func(t *testing.T) {
		w := f.get("/produtos/detalhes/" + strings.ToUpper(string(product.ID)))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Caneta")
	})

	for _, id := range []string{unknownID, "not-an-id"} {
		t.Run("404 for "+id, func(t *testing.T) {
			w := f.get("/produtos/detalhes/" + id)
			expectStatus(t, w, http.StatusNotFound)
		})
	}
}

func TestProductController_New(t *testing.T) {
	f := setup(t)

	w := f.get("/produtos/novo")

	expectStatus(t, w, http.StatusOK)
	expectBody(t, w,
		`enctype="multipart/form-data"`,
		`<option value="`+string(supplierID)+`"`,
		"Papelaria Central (Pessoa Jurídica)",
	)
}

func TestProductController_Create(t *testing.T) {
	t.Run("adds one product with the uploaded image", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, upload *domain.ImageUpload) (string, error) {
				if upload.Filename != "caderno.png" {
					t.Errorf("unexpected filename %q", upload.Filename)
				}
				return imageRef, nil
			}).Times(1)
		f.events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		w := f.do(multipartRequest(t, "/produtos/novo", productFields(), "caderno.png", pngBytes))

		expectStatus(t, w, http.StatusSeeOther)
		if loc := w.Header().Get("Location"); loc != "/produtos" {
			t.Fatalf("expected redirect to /produtos, got %q", loc)
		}
		if f.products.count() != 1 {
			t.Fatalf("expected 1 product, got %d", f.products.count())
		}
		created := f.products.only()
		if created.Image != imageRef {
			t.Fatalf("expected image %q, got %q", imageRef, created.Image)
		}
		if created.Price != domain.NewAmountFromCents(1990) || created.Stock != 12 || !created.Active {
			t.Fatalf("unexpected product %+v", created)
		}

		detail := f.get("/produtos/detalhes/" + string(created.ID))
		expectStatus(t, detail, http.StatusOK)
		expectBody(t, detail, "Caderno", "Caderno universitário", imageRef)
	})

	t.Run("missing image adds nothing and keeps the input", func(t *testing.T) {
		f := setup(t)

		w := f.do(multipartRequest(t, "/produtos/novo", productFields(), "", nil))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Selecione uma imagem para o produto", `value="Caderno"`, "Papelaria Central")
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})

	t.Run("rejected upload adds nothing", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return("", serviceerrors.NewInvalidRequestError("Formato de imagem não suportado")).Times(1)

		w := f.do(multipartRequest(t, "/produtos/novo", productFields(), "notas.txt", []byte("texto")))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Formato de imagem não suportado", "Papelaria Central")
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})

	t.Run("invalid form uploads once and discards the image", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(imageRef, nil).Times(1)
		f.storage.EXPECT().Delete(gomock.Any(), imageRef).Return(nil).Times(1)

		fields := productFields()
		delete(fields, "nome")
		fields["quantidade_estoque"] = "muitos"

		w := f.do(multipartRequest(t, "/produtos/novo", fields, "caderno.png", pngBytes))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w,
			"O campo Nome é obrigatório",
			"O campo Quantidade em estoque deve ser um número inteiro",
			`value="muitos"`,
			"Papelaria Central",
		)
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})

	t.Run("invalid price is reported on its field", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(imageRef, nil).Times(1)
		f.storage.EXPECT().Delete(gomock.Any(), imageRef).Return(nil).Times(1)

		fields := productFields()
		fields["valor"] = "dez reais"

		w := f.do(multipartRequest(t, "/produtos/novo", fields, "caderno.png", pngBytes))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "O campo Valor deve ser um número")
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})

	t.Run("unknown supplier is a field error", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(imageRef, nil).Times(1)
		f.storage.EXPECT().Delete(gomock.Any(), imageRef).Return(nil).Times(1)

		fields := productFields()
		fields["fornecedor_id"] = unknownID

		w := f.do(multipartRequest(t, "/produtos/novo", fields, "caderno.png", pngBytes))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w, "Fornecedor não encontrado")
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})

	t.Run("storage failure is a server error", func(t *testing.T) {
		f := setup(t)
		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("disk full")).Times(1)

		w := f.do(multipartRequest(t, "/produtos/novo", productFields(), "caderno.png", pngBytes))

		expectStatus(t, w, http.StatusInternalServerError)
		if f.products.count() != 0 {
			t.Fatal("expected no product added")
		}
	})
}

func TestProductController_Edit(t *testing.T) {
	f := setup(t)
	product := f.seed(t, "Caneta")

	w := f.get("/produtos/editar/" + string(product.ID))

	expectStatus(t, w, http.StatusOK)
	expectBody(t, w,
		`action="/produtos/editar/`+string(product.ID)+`"`,
		`value="Caneta"`,
		`value="19,90"`,
		"Papelaria Central",
		" selected",
	)

	w = f.get("/produtos/editar/" + unknownID)
	expectStatus(t, w, http.StatusNotFound)
}

func TestProductController_Update(t *testing.T) {
	editFields := func(id domain.ID) map[string]string {
		fields := productFields()
		fields["id"] = string(id)
		fields["nome"] = "Caneta azul"
		fields["valor"] = "2.5"
		delete(fields, "ativo")
		return fields
	}

	t.Run("updates and keeps the image", func(t *testing.T) {
		f := setup(t)
		product := f.seed(t, "Caneta")
		f.events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		w := f.do(formRequest("/produtos/editar/"+string(product.ID), editFields(product.ID)))

		expectStatus(t, w, http.StatusSeeOther)
		updated, _ := f.products.get(product.ID)
		if updated.Name != "Caneta azul" || updated.Price != domain.NewAmountFromCents(250) || updated.Active {
			t.Fatalf("unexpected product %+v", updated)
		}
		if updated.Image != product.Image {
			t.Fatalf("expected image %q kept, got %q", product.Image, updated.Image)
		}
	})

	t.Run("route id different from form id is 404", func(t *testing.T) {
		f := setup(t)
		product := f.seed(t, "Caneta")
		other := f.seed(t, "Lápis")

		w := f.do(formRequest("/produtos/editar/"+string(product.ID), editFields(other.ID)))

		expectStatus(t, w, http.StatusNotFound)
		unchanged, _ := f.products.get(other.ID)
		if unchanged.Name != "Lápis" {
			t.Fatalf("expected no update, got %+v", unchanged)
		}
	})

	t.Run("invalid form re-renders with suppliers", func(t *testing.T) {
		f := setup(t)
		product := f.seed(t, "Caneta")
		fields := editFields(product.ID)
		fields["descricao"] = ""

		w := f.do(formRequest("/produtos/editar/"+string(product.ID), fields))

		expectStatus(t, w, http.StatusOK)
		expectBody(t, w,
			"O campo Descrição é obrigatório",
			`value="Caneta azul"`,
			`<option value="`+string(supplierID)+`"`,
		)
		unchanged, _ := f.products.get(product.ID)
		if unchanged.Name != "Caneta" {
			t.Fatalf("expected no update, got %+v", unchanged)
		}
	})

	t.Run("vanished product is 404", func(t *testing.T) {
		f := setup(t)

		w := f.do(formRequest("/produtos/editar/"+unknownID, editFields(unknownID)))

		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestProductController_Delete(t *testing.T) {
	f := setup(t)
	product := f.seed(t, "Caneta")
	path := "/produtos/excluir/" + string(product.ID)

	w := f.get(path)
	expectStatus(t, w, http.StatusOK)
	expectBody(t, w, "Tem certeza", "Caneta", `action="`+path+`"`)

	f.events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w = f.do(formRequest(path, map[string]string{"id": string(product.ID)}))
	expectStatus(t, w, http.StatusSeeOther)
	if f.products.count() != 0 {
		t.Fatal("expected product removed")
	}

	w = f.do(formRequest(path, map[string]string{"id": string(product.ID)}))
	expectStatus(t, w, http.StatusNotFound)

	w = f.get(path)
	expectStatus(t, w, http.StatusNotFound)

	w = f.do(formRequest("/produtos/excluir/bad-id", nil))
	expectStatus(t, w, http.StatusNotFound)
}

func TestProductController_DeleteUpperCaseID(t *testing.T) {
	f := setup(t)
	product := f.seed(t, "Lápis")
	path := "/produtos/excluir/" + strings.ToUpper(string(product.ID))

	f.events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := f.do(formRequest(path, map[string]string{"id": string(product.ID)}))
	expectStatus(t, w, http.StatusSeeOther)
	if f.products.count() != 0 {
		t.Fatal("expected product removed")
	}
}
