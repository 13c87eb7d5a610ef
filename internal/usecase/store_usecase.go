package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

// StoreUseCase реализует бизнес-логику создания магазина и публичной витрины.
type StoreUseCase struct {
	storeRepo     StoreRepository
	productRepo   ProductRepository
	outboxRepo    OutboxRepository
	tx            Transactor
	imagesInfra   ImagesInfra
	cacheRepo     CacheRepository
	logger        logger.Logger
	publicBaseURL string
}

func NewStoreUC(
	storeRepo StoreRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	tx Transactor,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
	publicBaseURL string,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:     storeRepo,
		productRepo:   productRepo,
		outboxRepo:    outboxRepo,
		tx:            tx,
		imagesInfra:   imagesInfra,
		cacheRepo:     cacheRepo,
		logger:        logger,
		publicBaseURL: publicBaseURL,
	}
}

// CreateStore выполняет submit-шаг мастера: загружает изображения (fail-open),
// затем в одной транзакции вставляет магазин, пакет товаров и outbox-событие.
// Частично созданных магазинов не бывает: откат транзакции отменяет всё,
// а осиротевшие объекты в S3 зачищаются фоном.
func (s *StoreUseCase) CreateStore(ctx context.Context, req *CreateStoreReq) (*CreateStoreRes, error) {
	const op = "StoreUseCase.CreateStore"

	if req.CreatorID == uuid.Nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	if err := validateStoreDetails(&req.Details); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := validateProducts(req.Products); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		logoURL  *string
		uploaded []UploadResult
	)

	// Логотип опционален и загружается по принципу fail-open:
	// магазин не должен не появиться из-за того, что картинка не доехала.
	if req.Details.Logo != nil {
		res := s.imagesInfra.UploadLogo(ctx, req.Details.Name, req.Details.Logo)
		if res.Failed() {
			s.logger.Warnf("logo upload failed, continuing without logo. store: %s, error: %v", req.Details.Name, res.Err)
		} else {
			logoURL = res.URL
			uploaded = append(uploaded, res)
		}
	}

	images := make([]*ImageFile, len(req.Products))
	for i := range req.Products {
		images[i] = req.Products[i].Image
	}

	imageResults := s.imagesInfra.UploadProductImages(ctx, req.Details.Name, images)
	for i, res := range imageResults {
		if res.Failed() {
			s.logger.Warnf("product image upload failed, continuing without image. product: %s, error: %v", req.Products[i].Name, res.Err)
			continue
		}
		uploaded = append(uploaded, res)
	}

	var store *domain.Store
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var txErr error
		store, txErr = s.insertStore(ctx, req, logoURL)
		if txErr != nil {
			return txErr
		}

		products := make([]*domain.Product, 0, len(req.Products))
		for i, entry := range req.Products {
			products = append(products, domain.NewProduct(store.ID, entry.Name, entry.Description, entry.Price, imageResults[i].URL))
		}

		if _, txErr = s.productRepo.InsertBatch(ctx, products); txErr != nil {
			return txErr
		}

		event, txErr := NewOutboxEvent(EventStoreCreated, store.ID, store.Slug, uuid.Nil)
		if txErr != nil {
			return txErr
		}

		_, txErr = s.outboxRepo.Create(ctx, event)
		return txErr
	})
	if err != nil {
		// Транзакция откатилась: загруженные объекты остались без владельца
		if len(uploaded) > 0 {
			s.logger.Warnf(
				"Cleaning up orphaned images after transaction failure. store: %s, error: %v",
				req.Details.Name,
				e.Wrap(op, err),
			)
			s.imagesInfra.CleanupObjects(uploaded)
		}

		return nil, e.Wrap(op, err)
	}

	return &CreateStoreRes{
		Store:     NewStoreInfo(store),
		PublicURL: s.publicURL(store.Slug),
	}, nil
}

// GetStorefront возвращает публичную витрину по slug.
// ErrStoreNotFound и инфраструктурные ошибки не смешиваются: неверный slug —
// не временный сбой. IsOwner вычисляется на каждый запрос и не кэшируется.
func (s *StoreUseCase) GetStorefront(ctx context.Context, req *GetStorefrontReq) (*StorefrontRes, error) {
	const op = "StoreUseCase.GetStorefront"

	if cached, err := s.cacheRepo.GetStorefront(ctx, req.Slug); err == nil && cached != nil {
		return storefrontFromCache(cached, req.ActorID), nil
	}

	store, err := s.storeRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := s.productRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &StorefrontRes{
		Store:     NewStoreInfo(store),
		Products:  NewProductInfoList(products),
		PublicURL: s.publicURL(store.Slug),
		IsOwner:   req.ActorID != uuid.Nil && store.IsOwnedBy(req.ActorID),
	}

	// Фоновое наполнение кэша витрины
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := s.cacheRepo.SetStorefront(bgCtx, store.Slug, NewCachedStorefront(res)); err != nil {
			s.logger.Warnf("Failed to cache storefront in background: %v", e.Wrap(op, err))
		}
	}()

	return res, nil
}

// UpdateStore обновляет отображаемые поля магазина; slug и creator_id
// неизменяемы. Новый логотип загружается fail-open: при сбое остаётся прежний.
func (s *StoreUseCase) UpdateStore(ctx context.Context, req *UpdateStoreReq) (*StoreInfo, error) {
	const op = "StoreUseCase.UpdateStore"

	if req.ActorID == uuid.Nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	if err := validateStorePatch(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Проверка владения здесь — удобство для клиента; границей безопасности
	// остаётся условие creator_id в самом UPDATE.
	if !store.IsOwnedBy(req.ActorID) {
		return nil, e.Wrap(op, e.ErrNotOwner)
	}

	patch := &StorePatch{
		StoreID:        req.StoreID,
		Name:           req.Name,
		Description:    req.Description,
		WhatsAppNumber: req.WhatsAppNumber,
		Currency:       req.Currency,
	}

	if req.Logo != nil {
		res := s.imagesInfra.UploadLogo(ctx, store.Name, req.Logo)
		if res.Failed() {
			s.logger.Warnf("logo upload failed, keeping previous logo. store: %s, error: %v", store.Slug, res.Err)
		} else {
			patch.LogoURL = res.URL
		}
	}

	var updated *domain.Store
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.storeRepo.UpdateDisplayFields(ctx, patch, req.ActorID)
		if txErr != nil {
			return txErr
		}

		event, txErr := NewOutboxEvent(EventStoreUpdated, updated.ID, updated.Slug, uuid.Nil)
		if txErr != nil {
			return txErr
		}

		_, txErr = s.outboxRepo.Create(ctx, event)
		return txErr
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.invalidateStorefront(ctx, updated.Slug)

	return NewStoreInfo(updated), nil
}

// insertStore вставляет магазин; единичный конфликт slug обрабатывается
// повторной генерацией суффикса, второй конфликт отдаётся наверх.
func (s *StoreUseCase) insertStore(ctx context.Context, req *CreateStoreReq, logoURL *string) (*domain.Store, error) {
	store := domain.NewStore(
		NewSlug(req.Details.Name),
		req.Details.Name,
		req.Details.Description,
		req.Details.WhatsAppNumber,
		req.Details.Currency,
		logoURL,
		req.CreatorID,
	)

	created, err := s.storeRepo.Create(ctx, store)
	if errors.Is(err, e.ErrSlugTaken) {
		store.Slug = NewSlug(req.Details.Name)
		created, err = s.storeRepo.Create(ctx, store)
	}

	return created, err
}

// invalidateStorefront удаляет витрину из кэша, чтобы следующее чтение
// перечитало состояние из БД.
func (s *StoreUseCase) invalidateStorefront(ctx context.Context, slug string) {
	if err := s.cacheRepo.DeleteStorefront(ctx, slug); err != nil {
		s.logger.Warnf("Failed to invalidate storefront cache: slug=%s, error: %v", slug, err)
	}
}

func (s *StoreUseCase) publicURL(slug string) string {
	return s.publicBaseURL + "/store/" + slug
}

// CachedStorefront — витрина в том виде, в котором она лежит в кэше.
// Признак владельца не кэшируется.
type CachedStorefront struct {
	Store     *StoreInfo
	Products  []*ProductInfo
	PublicURL string
}

func NewCachedStorefront(res *StorefrontRes) *CachedStorefront {
	return &CachedStorefront{
		Store:     res.Store,
		Products:  res.Products,
		PublicURL: res.PublicURL,
	}
}

func storefrontFromCache(cached *CachedStorefront, actorID uuid.UUID) *StorefrontRes {
	return &StorefrontRes{
		Store:     cached.Store,
		Products:  cached.Products,
		PublicURL: cached.PublicURL,
		IsOwner:   actorID != uuid.Nil && cached.Store.CreatorID == actorID,
	}
}

var waPhoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizeWhatsAppNumber убирает пробелы и ведущий '+'.
// Возвращает строку из цифр, пригодную для подстановки в wa.me.
func NormalizeWhatsAppNumber(raw string) (string, error) {
	number := strings.ReplaceAll(raw, " ", "")
	if !waPhoneRe.MatchString(number) {
		return "", e.ErrInvalidWhatsAppPhone
	}

	return strings.TrimPrefix(number, "+"), nil
}

// validateStoreDetails проверяет шаг details и нормализует номер WhatsApp.
// Логотип намеренно не обязателен: модель данных допускает его отсутствие.
func validateStoreDetails(details *StoreDetails) error {
	if strings.TrimSpace(details.Name) == "" {
		return e.ErrStoreNameRequired
	}

	if strings.TrimSpace(details.Description) == "" {
		return e.ErrStoreDescRequired
	}

	number, err := NormalizeWhatsAppNumber(details.WhatsAppNumber)
	if err != nil {
		return err
	}
	details.WhatsAppNumber = number

	if strings.TrimSpace(details.Currency) == "" {
		return e.ErrCurrencyRequired
	}

	return nil
}

// validateProducts проверяет шаг products: хотя бы одна позиция,
// каждая — с именем, положительной ценой и изображением.
func validateProducts(products []ProductEntry) error {
	if len(products) == 0 {
		return e.ErrNoProducts
	}

	for _, entry := range products {
		if strings.TrimSpace(entry.Name) == "" {
			return e.ErrProductNameRequired
		}

		if entry.Price <= 0 {
			return e.ErrPriceMustBePositive
		}

		if entry.Image == nil {
			return e.ErrProductImageRequired
		}
	}

	return nil
}

func validateStorePatch(req *UpdateStoreReq) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return e.ErrStoreNameRequired
	}

	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return e.ErrStoreDescRequired
	}

	if req.WhatsAppNumber != nil {
		number, err := NormalizeWhatsAppNumber(*req.WhatsAppNumber)
		if err != nil {
			return err
		}
		*req.WhatsAppNumber = number
	}

	if req.Currency != nil && strings.TrimSpace(*req.Currency) == "" {
		return e.ErrCurrencyRequired
	}

	return nil
}
