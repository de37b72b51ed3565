package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/dto"
	"github.com/rafaelleal24/estudos/internal/core/logger"
	"github.com/rafaelleal24/estudos/internal/core/port"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

const SupplierField = "fornecedor_id"

type ProductService struct {
	productRepository  port.ProductPort
	supplierRepository port.SupplierPort
	imageStorage       port.ImageStoragePort
	events             port.EventStorePort
	productCache       port.CachePort[domain.Product]
	txManager          port.TransactionManager
	cacheTTL           time.Duration
}

func NewProductService(
	productRepository port.ProductPort,
	supplierRepository port.SupplierPort,
	imageStorage port.ImageStoragePort,
	events port.EventStorePort,
	productCache port.CachePort[domain.Product],
	txManager port.TransactionManager,
	cacheTTL time.Duration,
) *ProductService {
	return &ProductService{
		productRepository:  productRepository,
		supplierRepository: supplierRepository,
		imageStorage:       imageStorage,
		events:             events,
		productCache:       productCache,
		txManager:          txManager,
		cacheTTL:           cacheTTL,
	}
}

// getCacheKey folds the id to lower case so every spelling of an id shares
// the entry Update and Remove evict.
func (s *ProductService) getCacheKey(id domain.ID) string {
	return fmt.Sprintf("product:%s", strings.ToLower(string(id)))
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAllWithSuppliers(ctx)
}

func (s *ProductService) Suppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return s.supplierRepository.GetAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByIDWithSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, s.cacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return product, nil
}

// UploadImage stores the image and returns its public reference. A nil upload
// is rejected like any other invalid file.
func (s *ProductService) UploadImage(ctx context.Context, upload *domain.ImageUpload) (string, error) {
	if upload == nil {
		return "", serviceerrors.NewInvalidRequestError("Selecione uma imagem para o produto")
	}

	reference, err := s.imageStorage.Save(ctx, upload)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			logger.Error(ctx, "product: image upload failed", err, map[string]any{
				"filename": upload.Filename,
				"size":     upload.Size,
			})
		}
		return "", err
	}

	return reference, nil
}

// DiscardImage removes an image that was stored for a submission that will not be persisted.
func (s *ProductService) DiscardImage(ctx context.Context, reference string) {
	if reference == "" {
		return
	}
	if err := s.imageStorage.Delete(ctx, reference); err != nil {
		logger.Warn(ctx, "product: discard image failed", map[string]any{
			"image": reference,
			"error": err.Error(),
		})
	}
}

func (s *ProductService) checkSupplier(ctx context.Context, id domain.ID) error {
	exists, err := s.supplierRepository.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return serviceerrors.NewValidationError(SupplierField, "Fornecedor não encontrado")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, request *dto.ProductRequest, image string) (*domain.Product, error) {
	if err := s.checkSupplier(ctx, request.SupplierID); err != nil {
		return nil, err
	}

	product := domain.NewProduct(request.SupplierID, request.Name, request.Description, request.Price, request.Stock, request.Active)
	product.Image = image

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.Add(txCtx, product); err != nil {
			return err
		}
		return s.events.Save(txCtx, domain.NewProductEvent(domain.ProductCreatedEvent, product))
	})
	if err != nil {
		logger.Error(ctx, "product: add failed", err, map[string]any{
			"name":        request.Name,
			"supplier_id": request.SupplierID,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

// Update overwrites the editable fields of the product. The stored image is kept.
func (s *ProductService) Update(ctx context.Context, request *dto.ProductRequest) (*domain.Product, error) {
	if err := s.checkSupplier(ctx, request.SupplierID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          request.ID,
		SupplierID:  request.SupplierID,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Stock:       request.Stock,
		Active:      request.Active,
		UpdatedAt:   time.Now(),
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.Update(txCtx, product); err != nil {
			return err
		}
		return s.events.Save(txCtx, domain.NewProductEvent(domain.ProductUpdatedEvent, product))
	})
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: update failed", err, map[string]any{
				"product_id": request.ID,
			})
		}
		return nil, err
	}

	s.evict(ctx, product.ID)
	logger.Info(ctx, "Product updated", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) Remove(ctx context.Context, id domain.ID) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.productRepository.Exists(txCtx, id)
		if err != nil {
			return err
		}
		if !exists {
			return serviceerrors.NewNotFoundError("product not found")
		}
		if err := s.productRepository.Remove(txCtx, id); err != nil {
			return err
		}
		return s.events.Save(txCtx, domain.NewProductRemovedEvent(id))
	})
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: remove failed", err, map[string]any{
				"product_id": id,
			})
		}
		return err
	}

	s.evict(ctx, id)
	logger.Info(ctx, "Product removed", map[string]any{"product_id": id})
	return nil
}

func (s *ProductService) evict(ctx context.Context, id domain.ID) {
	if err := s.productCache.Del(ctx, s.getCacheKey(id)); err != nil {
		logger.Error(ctx, "cache: evict product failed", err, map[string]any{
			"product_id": id,
		})
	}
}
