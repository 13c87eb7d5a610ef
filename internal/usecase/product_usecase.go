package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

// ProductUseCase реализует операции владельца над каталогом существующего магазина.
// Каждая операция независима и после успеха инвалидирует кэш витрины:
// клиент перечитывает список вместо локальных правок.
type ProductUseCase struct {
	storeRepo   StoreRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	tx          Transactor
	imagesInfra ImagesInfra
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewProductUC(
	storeRepo StoreRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	tx Transactor,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		tx:          tx,
		imagesInfra: imagesInfra,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// AddProduct создаёт один товар в существующем магазине.
// Изображение здесь опционально и загружается fail-open.
func (p *ProductUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.AddProduct"

	if req.ActorID == uuid.Nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	if err := validateProductEntry(&req.Entry); err != nil {
		return nil, e.Wrap(op, err)
	}

	store, err := p.ownedStore(ctx, req.StoreID, req.ActorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageURL *string
	if req.Entry.Image != nil {
		res := p.imagesInfra.UploadProductImages(ctx, store.Name, []*ImageFile{req.Entry.Image})[0]
		if res.Failed() {
			p.logger.Warnf("product image upload failed, continuing without image. product: %s, error: %v", req.Entry.Name, res.Err)
		} else {
			imageURL = res.URL
		}
	}

	var created *domain.Product
	err = p.tx.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = p.productRepo.Insert(ctx, domain.NewProduct(store.ID, req.Entry.Name, req.Entry.Description, req.Entry.Price, imageURL), req.ActorID)
		if txErr != nil {
			return txErr
		}

		return p.appendEvent(ctx, EventProductAdded, store, created.ID)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateStorefront(ctx, store.Slug)

	return NewProductInfo(created), nil
}

// UpdateProduct применяет частичное обновление товара.
// Если изображение не передано, существующий image_url остаётся нетронутым;
// если загрузка нового изображения сорвалась, действует то же правило.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.UpdateProduct"

	if req.ActorID == uuid.Nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	if err := validateProductPatch(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	store, err := p.ownedStore(ctx, product.StoreID, req.ActorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	patch := &ProductPatch{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if req.Image != nil {
		res := p.imagesInfra.UploadProductImages(ctx, store.Name, []*ImageFile{req.Image})[0]
		if res.Failed() {
			p.logger.Warnf("product image upload failed, keeping previous image. product: %s, error: %v", product.ID, res.Err)
		} else {
			patch.ImageURL = res.URL
		}
	}

	var updated *domain.Product
	err = p.tx.Do(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = p.productRepo.Update(ctx, patch, req.ActorID)
		if txErr != nil {
			return txErr
		}

		return p.appendEvent(ctx, EventProductUpdated, store, updated.ID)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateStorefront(ctx, store.Slug)

	return NewProductInfo(updated), nil
}

// DeleteProduct удаляет товар немедленно и безвозвратно.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, req *DeleteProductReq) error {
	const op = "ProductUseCase.DeleteProduct"

	if req.ActorID == uuid.Nil {
		return e.Wrap(op, e.ErrUnauthenticated)
	}

	product, err := p.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return e.Wrap(op, err)
	}

	store, err := p.ownedStore(ctx, product.StoreID, req.ActorID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = p.tx.Do(ctx, func(ctx context.Context) error {
		if txErr := p.productRepo.Delete(ctx, req.ProductID, req.ActorID); txErr != nil {
			return txErr
		}

		return p.appendEvent(ctx, EventProductDeleted, store, req.ProductID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateStorefront(ctx, store.Slug)

	return nil
}

// ownedStore загружает магазин и проверяет владение на уровне usecase.
// Это удобство для раннего отказа: границей безопасности остаются
// условия creator_id в самих запросах репозитория.
func (p *ProductUseCase) ownedStore(ctx context.Context, storeID, actorID uuid.UUID) (*domain.Store, error) {
	store, err := p.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if !store.IsOwnedBy(actorID) {
		return nil, e.ErrNotOwner
	}

	return store, nil
}

func (p *ProductUseCase) appendEvent(ctx context.Context, eventType OutboxEventType, store *domain.Store, productID uuid.UUID) error {
	event, err := NewOutboxEvent(eventType, store.ID, store.Slug, productID)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, event)
	return err
}

func (p *ProductUseCase) invalidateStorefront(ctx context.Context, slug string) {
	if err := p.cacheRepo.DeleteStorefront(ctx, slug); err != nil {
		p.logger.Warnf("Failed to invalidate storefront cache: slug=%s, error: %v", slug, err)
	}
}

// validateProductEntry — валидация товара вне мастера: изображение опционально.
func validateProductEntry(entry *ProductEntry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return e.ErrProductNameRequired
	}

	if entry.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	return nil
}

func validateProductPatch(req *UpdateProductReq) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price != nil && *req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	return nil
}
