package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productUCFixture struct {
	storeRepo   *storeRepoMock
	productRepo *productRepoMock
	outboxRepo  *outboxRepoMock
	imagesInfra *imagesInfraMock
	cacheRepo   *cacheRepoMock
	uc          *ProductUseCase

	ownerID uuid.UUID
	store   *domain.Store
}

func newProductUCFixture() *productUCFixture {
	ownerID := uuid.New()
	store := &domain.Store{
		ID:        uuid.New(),
		Slug:      "amaka-accessories-x1y2z",
		Name:      "Amaka Accessories",
		CreatorID: ownerID,
	}

	f := &productUCFixture{
		storeRepo:   &storeRepoMock{},
		productRepo: &productRepoMock{},
		outboxRepo:  &outboxRepoMock{},
		imagesInfra: &imagesInfraMock{},
		cacheRepo:   &cacheRepoMock{},
		ownerID:     ownerID,
		store:       store,
	}

	f.storeRepo.getByID = func(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
		if id == store.ID {
			return store, nil
		}
		return nil, e.ErrStoreNotFound
	}

	f.uc = NewProductUC(f.storeRepo, f.productRepo, f.outboxRepo, txStub{}, f.imagesInfra, f.cacheRepo, nopLogger{})
	return f
}

func TestAddProduct_Success(t *testing.T) {
	f := newProductUCFixture()

	info, err := f.uc.AddProduct(context.Background(), &AddProductReq{
		ActorID: f.ownerID,
		StoreID: f.store.ID,
		Entry:   ProductEntry{Name: "Tote Bag", Price: 3000, Image: testImage("tote.jpg")},
	})
	require.NoError(t, err)

	assert.Equal(t, f.store.ID, info.StoreID)
	assert.Equal(t, "Tote Bag", info.Name)
	assert.NotNil(t, info.ImageURL)

	require.Len(t, f.outboxRepo.created, 1)
	assert.Equal(t, EventProductAdded, f.outboxRepo.created[0].EventType)
	assert.Equal(t, []string{f.store.Slug}, f.cacheRepo.deleted)
}

func TestAddProduct_WithoutImage(t *testing.T) {
	f := newProductUCFixture()

	info, err := f.uc.AddProduct(context.Background(), &AddProductReq{
		ActorID: f.ownerID,
		StoreID: f.store.ID,
		Entry:   ProductEntry{Name: "Tote Bag", Price: 3000},
	})
	require.NoError(t, err)

	assert.Nil(t, info.ImageURL)
}

func TestAddProduct_NotOwner(t *testing.T) {
	f := newProductUCFixture()

	_, err := f.uc.AddProduct(context.Background(), &AddProductReq{
		ActorID: uuid.New(),
		StoreID: f.store.ID,
		Entry:   ProductEntry{Name: "Tote Bag", Price: 3000},
	})
	assert.ErrorIs(t, err, e.ErrNotOwner)
}

func TestUpdateProduct_FailedUploadKeepsPreviousImage(t *testing.T) {
	f := newProductUCFixture()

	previous := "http://minio/product-images/old.jpg"
	product := &domain.Product{
		ID:       uuid.New(),
		StoreID:  f.store.ID,
		Name:     "Tote Bag",
		Price:    3000,
		ImageURL: &previous,
	}

	f.productRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
		return product, nil
	}
	f.imagesInfra.productFn = func(ctx context.Context, storeRef string, files []*ImageFile) []UploadResult {
		return []UploadResult{NewUploadResult("product-images", "broken", nil, errors.New("minio unreachable"))}
	}

	var appliedPatch *ProductPatch
	f.productRepo.updateFn = func(ctx context.Context, patch *ProductPatch, actorID uuid.UUID) (*domain.Product, error) {
		appliedPatch = patch
		updated := *product
		if patch.Price != nil {
			updated.Price = *patch.Price
		}
		return &updated, nil
	}

	newPrice := int64(3500)
	info, err := f.uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ActorID:   f.ownerID,
		ProductID: product.ID,
		Price:     &newPrice,
		Image:     testImage("new.jpg"),
	})
	require.NoError(t, err)

	// Сорвавшаяся загрузка не трогает существующий image_url
	require.NotNil(t, appliedPatch)
	assert.Nil(t, appliedPatch.ImageURL)
	assert.Equal(t, int64(3500), info.Price)
	assert.Equal(t, &previous, info.ImageURL)
}

func TestUpdateProduct_NotOwner(t *testing.T) {
	f := newProductUCFixture()

	product := &domain.Product{ID: uuid.New(), StoreID: f.store.ID, Name: "Tote Bag", Price: 3000}
	f.productRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
		return product, nil
	}

	name := "Renamed"
	_, err := f.uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ActorID:   uuid.New(),
		ProductID: product.ID,
		Name:      &name,
	})
	assert.ErrorIs(t, err, e.ErrNotOwner)
}

func TestUpdateProduct_Validation(t *testing.T) {
	f := newProductUCFixture()

	blank := "   "
	_, err := f.uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ActorID:   f.ownerID,
		ProductID: uuid.New(),
		Name:      &blank,
	})
	assert.ErrorIs(t, err, e.ErrProductNameRequired)

	badPrice := int64(-5)
	_, err = f.uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ActorID:   f.ownerID,
		ProductID: uuid.New(),
		Price:     &badPrice,
	})
	assert.ErrorIs(t, err, e.ErrPriceMustBePositive)
}

func TestDeleteProduct_Success(t *testing.T) {
	f := newProductUCFixture()

	product := &domain.Product{ID: uuid.New(), StoreID: f.store.ID, Name: "Tote Bag", Price: 3000}
	f.productRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
		return product, nil
	}

	var deletedID uuid.UUID
	f.productRepo.deleteFn = func(ctx context.Context, productID uuid.UUID, actorID uuid.UUID) error {
		deletedID = productID
		return nil
	}

	err := f.uc.DeleteProduct(context.Background(), &DeleteProductReq{ActorID: f.ownerID, ProductID: product.ID})
	require.NoError(t, err)

	assert.Equal(t, product.ID, deletedID)
	require.Len(t, f.outboxRepo.created, 1)
	assert.Equal(t, EventProductDeleted, f.outboxRepo.created[0].EventType)
	assert.Equal(t, []string{f.store.Slug}, f.cacheRepo.deleted)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	f := newProductUCFixture()

	err := f.uc.DeleteProduct(context.Background(), &DeleteProductReq{ActorID: f.ownerID, ProductID: uuid.New()})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestDeleteProduct_Unauthenticated(t *testing.T) {
	f := newProductUCFixture()

	err := f.uc.DeleteProduct(context.Background(), &DeleteProductReq{ActorID: uuid.Nil, ProductID: uuid.New()})
	assert.ErrorIs(t, err, e.ErrUnauthenticated)
}
