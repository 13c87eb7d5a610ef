package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
)

// Ручные моки зависимостей usecase-слоя: поведение задаётся функциями-полями,
// незаданный метод ведёт себя как пустая успешная операция.

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type txStub struct{}

func (txStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type storeRepoMock struct {
	createFn  func(ctx context.Context, store *domain.Store) (*domain.Store, error)
	getBySlug func(ctx context.Context, slug string) (*domain.Store, error)
	getByID   func(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	updateFn  func(ctx context.Context, patch *StorePatch, actorID uuid.UUID) (*domain.Store, error)
}

func (m *storeRepoMock) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if m.createFn != nil {
		return m.createFn(ctx, store)
	}

	created := *store
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	return &created, nil
}

func (m *storeRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	if m.getBySlug != nil {
		return m.getBySlug(ctx, slug)
	}
	return nil, e.ErrStoreNotFound
}

func (m *storeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, e.ErrStoreNotFound
}

func (m *storeRepoMock) UpdateDisplayFields(ctx context.Context, patch *StorePatch, actorID uuid.UUID) (*domain.Store, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, patch, actorID)
	}
	return nil, e.ErrStoreNotFound
}

type productRepoMock struct {
	insertBatchFn func(ctx context.Context, products []*domain.Product) ([]*domain.Product, error)
	insertFn      func(ctx context.Context, product *domain.Product, actorID uuid.UUID) (*domain.Product, error)
	listFn        func(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	updateFn      func(ctx context.Context, patch *ProductPatch, actorID uuid.UUID) (*domain.Product, error)
	deleteFn      func(ctx context.Context, productID uuid.UUID, actorID uuid.UUID) error
}

func (m *productRepoMock) InsertBatch(ctx context.Context, products []*domain.Product) ([]*domain.Product, error) {
	if m.insertBatchFn != nil {
		return m.insertBatchFn(ctx, products)
	}

	inserted := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		p := *product
		p.ID = uuid.New()
		p.CreatedAt = time.Now()
		inserted = append(inserted, &p)
	}
	return inserted, nil
}

func (m *productRepoMock) Insert(ctx context.Context, product *domain.Product, actorID uuid.UUID) (*domain.Product, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, product, actorID)
	}

	created := *product
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	return &created, nil
}

func (m *productRepoMock) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error) {
	if m.listFn != nil {
		return m.listFn(ctx, storeID)
	}
	return nil, nil
}

func (m *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, e.ErrProductNotFound
}

func (m *productRepoMock) Update(ctx context.Context, patch *ProductPatch, actorID uuid.UUID) (*domain.Product, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, patch, actorID)
	}
	return nil, e.ErrProductNotFound
}

func (m *productRepoMock) Delete(ctx context.Context, productID uuid.UUID, actorID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, productID, actorID)
	}
	return nil
}

type outboxRepoMock struct {
	created []*OutboxEvent
}

func (m *outboxRepoMock) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.created = append(m.created, event)
	return event, nil
}

func (m *outboxRepoMock) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *outboxRepoMock) MarkAsDone(ctx context.Context, ids []int64) error { return nil }

func (m *outboxRepoMock) MarkAsFailed(ctx context.Context, id int64, reason string) error {
	return nil
}

type imagesInfraMock struct {
	logoFn    func(ctx context.Context, storeName string, file *ImageFile) UploadResult
	productFn func(ctx context.Context, storeRef string, files []*ImageFile) []UploadResult
	cleaned   [][]UploadResult
}

func (m *imagesInfraMock) UploadLogo(ctx context.Context, storeName string, file *ImageFile) UploadResult {
	if m.logoFn != nil {
		return m.logoFn(ctx, storeName, file)
	}

	url := "http://minio/store-logos/" + storeName + "/logo.png"
	return NewUploadResult("store-logos", storeName+"/logo.png", &url, nil)
}

func (m *imagesInfraMock) UploadProductImages(ctx context.Context, storeRef string, files []*ImageFile) []UploadResult {
	if m.productFn != nil {
		return m.productFn(ctx, storeRef, files)
	}

	results := make([]UploadResult, len(files))
	for i, file := range files {
		if file == nil {
			continue
		}
		key := storeRef + "/" + file.Name
		url := "http://minio/product-images/" + key
		results[i] = NewUploadResult("product-images", key, &url, nil)
	}
	return results
}

func (m *imagesInfraMock) CleanupObjects(results []UploadResult) {
	m.cleaned = append(m.cleaned, results)
}

func (m *imagesInfraMock) WaitForCleanup(ctx context.Context) error { return nil }

type cacheRepoMock struct {
	getFn   func(ctx context.Context, slug string) (*CachedStorefront, error)
	setFn   func(ctx context.Context, slug string, sf *CachedStorefront) error
	deleted []string
}

func (m *cacheRepoMock) GetStorefront(ctx context.Context, slug string) (*CachedStorefront, error) {
	if m.getFn != nil {
		return m.getFn(ctx, slug)
	}
	return nil, nil
}

func (m *cacheRepoMock) SetStorefront(ctx context.Context, slug string, sf *CachedStorefront) error {
	if m.setFn != nil {
		return m.setFn(ctx, slug, sf)
	}
	return nil
}

func (m *cacheRepoMock) DeleteStorefront(ctx context.Context, slug string) error {
	m.deleted = append(m.deleted, slug)
	return nil
}

type userRepoMock struct {
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
}

func newUserRepoMock() *userRepoMock {
	return &userRepoMock{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, e.ErrEmailTaken
	}

	created := *user
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	m.byEmail[created.Email] = &created
	m.byID[created.ID] = &created
	return &created, nil
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, e.ErrUserNotFound
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := m.byID[id]; ok {
		return user, nil
	}
	return nil, e.ErrUserNotFound
}

type sessionRepoMock struct {
	revoked map[string]bool
}

func newSessionRepoMock() *sessionRepoMock {
	return &sessionRepoMock{revoked: make(map[string]bool)}
}

func (m *sessionRepoMock) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	m.revoked[jti] = true
	return nil
}

func (m *sessionRepoMock) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return m.revoked[jti], nil
}
