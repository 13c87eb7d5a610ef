package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPublicBaseURL = "https://shopsmart.example"

type storeUCFixture struct {
	storeRepo   *storeRepoMock
	productRepo *productRepoMock
	outboxRepo  *outboxRepoMock
	imagesInfra *imagesInfraMock
	cacheRepo   *cacheRepoMock
	uc          *StoreUseCase
}

func newStoreUCFixture() *storeUCFixture {
	f := &storeUCFixture{
		storeRepo:   &storeRepoMock{},
		productRepo: &productRepoMock{},
		outboxRepo:  &outboxRepoMock{},
		imagesInfra: &imagesInfraMock{},
		cacheRepo:   &cacheRepoMock{},
	}

	f.uc = NewStoreUC(f.storeRepo, f.productRepo, f.outboxRepo, txStub{}, f.imagesInfra, f.cacheRepo, nopLogger{}, testPublicBaseURL)
	return f
}

func testImage(name string) *ImageFile {
	return NewImageFile([]byte{0xFF, 0xD8, 0xFF}, "image/jpeg", 3, name)
}

func validCreateStoreReq(creatorID uuid.UUID) *CreateStoreReq {
	return &CreateStoreReq{
		CreatorID: creatorID,
		Details: StoreDetails{
			Name:           "Amaka Accessories",
			Description:    "Handmade beads and bags",
			WhatsAppNumber: "+234 801 234 5678",
			Currency:       "$",
			Logo:           testImage("logo.png"),
		},
		Products: []ProductEntry{
			{Name: "Bead Necklace", Description: "Red coral", Price: 1500, Image: testImage("necklace.jpg")},
			{Name: "Tote Bag", Price: 3000, Image: testImage("tote.jpg")},
		},
	}
}

func TestCreateStore_Success(t *testing.T) {
	f := newStoreUCFixture()
	creatorID := uuid.New()

	var inserted []*domain.Product
	f.productRepo.insertBatchFn = func(ctx context.Context, products []*domain.Product) ([]*domain.Product, error) {
		inserted = products
		return products, nil
	}

	res, err := f.uc.CreateStore(context.Background(), validCreateStoreReq(creatorID))
	require.NoError(t, err)

	assert.Equal(t, "Amaka Accessories", res.Store.Name)
	assert.Equal(t, creatorID, res.Store.CreatorID)
	assert.Equal(t, "2348012345678", res.Store.WhatsAppNumber)
	assert.NotNil(t, res.Store.LogoURL)
	assert.Equal(t, testPublicBaseURL+"/store/"+res.Store.Slug, res.PublicURL)

	require.Len(t, inserted, 2)
	for _, product := range inserted {
		assert.Equal(t, res.Store.ID, product.StoreID)
		assert.NotNil(t, product.ImageURL)
	}
	assert.Equal(t, "Bead Necklace", inserted[0].Name)
	assert.Equal(t, int64(1500), inserted[0].Price)

	require.Len(t, f.outboxRepo.created, 1)
	assert.Equal(t, EventStoreCreated, f.outboxRepo.created[0].EventType)
	assert.Empty(t, f.imagesInfra.cleaned)
}

func TestCreateStore_Unauthenticated(t *testing.T) {
	f := newStoreUCFixture()

	_, err := f.uc.CreateStore(context.Background(), validCreateStoreReq(uuid.Nil))
	assert.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestCreateStore_FailedUploadKeepsProductWithoutImage(t *testing.T) {
	f := newStoreUCFixture()

	f.imagesInfra.productFn = func(ctx context.Context, storeRef string, files []*ImageFile) []UploadResult {
		results := make([]UploadResult, len(files))
		for i := range files {
			results[i] = NewUploadResult("product-images", "broken", nil, errors.New("minio unreachable"))
		}
		return results
	}

	var inserted []*domain.Product
	f.productRepo.insertBatchFn = func(ctx context.Context, products []*domain.Product) ([]*domain.Product, error) {
		inserted = products
		return products, nil
	}

	_, err := f.uc.CreateStore(context.Background(), validCreateStoreReq(uuid.New()))
	require.NoError(t, err)

	require.Len(t, inserted, 2)
	for _, product := range inserted {
		assert.Nil(t, product.ImageURL)
	}
}

func TestCreateStore_RetriesOnSlugConflict(t *testing.T) {
	f := newStoreUCFixture()

	var attempts []string
	f.storeRepo.createFn = func(ctx context.Context, store *domain.Store) (*domain.Store, error) {
		attempts = append(attempts, store.Slug)
		if len(attempts) == 1 {
			return nil, e.ErrSlugTaken
		}

		created := *store
		created.ID = uuid.New()
		return &created, nil
	}

	_, err := f.uc.CreateStore(context.Background(), validCreateStoreReq(uuid.New()))
	require.NoError(t, err)

	require.Len(t, attempts, 2)
	assert.NotEqual(t, attempts[0], attempts[1])
}

func TestCreateStore_CleansUpImagesOnTransactionFailure(t *testing.T) {
	f := newStoreUCFixture()

	f.productRepo.insertBatchFn = func(ctx context.Context, products []*domain.Product) ([]*domain.Product, error) {
		return nil, errors.New("db connection reset")
	}

	_, err := f.uc.CreateStore(context.Background(), validCreateStoreReq(uuid.New()))
	require.Error(t, err)

	require.Len(t, f.imagesInfra.cleaned, 1)
	// Логотип и два изображения товаров были загружены до отката
	assert.Len(t, f.imagesInfra.cleaned[0], 3)
}

func TestCreateStore_Validation(t *testing.T) {
	creatorID := uuid.New()

	cases := []struct {
		name     string
		mutate   func(req *CreateStoreReq)
		expected error
	}{
		{
			name:     "blank store name",
			mutate:   func(req *CreateStoreReq) { req.Details.Name = "   " },
			expected: e.ErrStoreNameRequired,
		},
		{
			name:     "blank description",
			mutate:   func(req *CreateStoreReq) { req.Details.Description = "" },
			expected: e.ErrStoreDescRequired,
		},
		{
			name:     "invalid whatsapp number",
			mutate:   func(req *CreateStoreReq) { req.Details.WhatsAppNumber = "0801-234" },
			expected: e.ErrInvalidWhatsAppPhone,
		},
		{
			name:     "blank currency",
			mutate:   func(req *CreateStoreReq) { req.Details.Currency = " " },
			expected: e.ErrCurrencyRequired,
		},
		{
			name:     "no products",
			mutate:   func(req *CreateStoreReq) { req.Products = nil },
			expected: e.ErrNoProducts,
		},
		{
			name:     "product without image",
			mutate:   func(req *CreateStoreReq) { req.Products[0].Image = nil },
			expected: e.ErrProductImageRequired,
		},
		{
			name:     "product with zero price",
			mutate:   func(req *CreateStoreReq) { req.Products[1].Price = 0 },
			expected: e.ErrPriceMustBePositive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newStoreUCFixture()
			req := validCreateStoreReq(creatorID)
			tc.mutate(req)

			_, err := f.uc.CreateStore(context.Background(), req)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestGetStorefront_CacheMiss(t *testing.T) {
	f := newStoreUCFixture()
	creatorID := uuid.New()

	store := &domain.Store{
		ID:             uuid.New(),
		Slug:           "amaka-accessories-x1y2z",
		Name:           "Amaka Accessories",
		WhatsAppNumber: "2348012345678",
		Currency:       "$",
		CreatorID:      creatorID,
		CreatedAt:      time.Now(),
	}

	f.storeRepo.getBySlug = func(ctx context.Context, slug string) (*domain.Store, error) {
		return store, nil
	}
	f.productRepo.listFn = func(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error) {
		return []*domain.Product{
			{ID: uuid.New(), StoreID: storeID, Name: "Tote Bag", Price: 3000},
		}, nil
	}

	res, err := f.uc.GetStorefront(context.Background(), &GetStorefrontReq{Slug: store.Slug, ActorID: creatorID})
	require.NoError(t, err)

	assert.True(t, res.IsOwner)
	assert.Equal(t, testPublicBaseURL+"/store/"+store.Slug, res.PublicURL)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Tote Bag", res.Products[0].Name)
}

func TestGetStorefront_CacheHitSkipsRepositories(t *testing.T) {
	f := newStoreUCFixture()
	creatorID := uuid.New()

	cached := &CachedStorefront{
		Store: &StoreInfo{
			ID:        uuid.New(),
			Slug:      "amaka-accessories-x1y2z",
			Name:      "Amaka Accessories",
			CreatorID: creatorID,
		},
		PublicURL: testPublicBaseURL + "/store/amaka-accessories-x1y2z",
	}

	f.cacheRepo.getFn = func(ctx context.Context, slug string) (*CachedStorefront, error) {
		return cached, nil
	}
	f.storeRepo.getBySlug = func(ctx context.Context, slug string) (*domain.Store, error) {
		t.Fatal("store repository must not be hit on cache hit")
		return nil, nil
	}

	res, err := f.uc.GetStorefront(context.Background(), &GetStorefrontReq{Slug: cached.Store.Slug, ActorID: uuid.New()})
	require.NoError(t, err)

	// Признак владельца вычисляется заново на каждый запрос
	assert.False(t, res.IsOwner)
	assert.Equal(t, cached.PublicURL, res.PublicURL)
}

func TestUpdateStore_NotOwner(t *testing.T) {
	f := newStoreUCFixture()
	storeID := uuid.New()

	f.storeRepo.getByID = func(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
		return &domain.Store{ID: storeID, Slug: "shop-abcde", CreatorID: uuid.New()}, nil
	}

	name := "New Name"
	_, err := f.uc.UpdateStore(context.Background(), &UpdateStoreReq{
		ActorID: uuid.New(),
		StoreID: storeID,
		Name:    &name,
	})
	assert.ErrorIs(t, err, e.ErrNotOwner)
}

func TestUpdateStore_Success(t *testing.T) {
	f := newStoreUCFixture()
	actorID := uuid.New()
	storeID := uuid.New()

	store := &domain.Store{ID: storeID, Slug: "shop-abcde", Name: "Old Name", CreatorID: actorID}

	f.storeRepo.getByID = func(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
		return store, nil
	}
	f.storeRepo.updateFn = func(ctx context.Context, patch *StorePatch, updaterID uuid.UUID) (*domain.Store, error) {
		require.Equal(t, actorID, updaterID)
		updated := *store
		if patch.Name != nil {
			updated.Name = *patch.Name
		}
		return &updated, nil
	}

	name := "New Name"
	info, err := f.uc.UpdateStore(context.Background(), &UpdateStoreReq{
		ActorID: actorID,
		StoreID: storeID,
		Name:    &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", info.Name)
	assert.Equal(t, []string{"shop-abcde"}, f.cacheRepo.deleted)

	require.Len(t, f.outboxRepo.created, 1)
	assert.Equal(t, EventStoreUpdated, f.outboxRepo.created[0].EventType)
}

func TestNormalizeWhatsAppNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plus and spaces", input: "+234 801 234 5678", expected: "2348012345678"},
		{name: "digits only", input: "2348012345678", expected: "2348012345678"},
		{name: "leading zero", input: "08012345678", wantErr: true},
		{name: "letters", input: "+234abc", wantErr: true},
		{name: "too short", input: "+1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeWhatsAppNumber(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, e.ErrInvalidWhatsAppPhone)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
