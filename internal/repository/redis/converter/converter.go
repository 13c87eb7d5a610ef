package converter

import (
	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/usecase"
)

// StorefrontConverter преобразует витрину между usecase и моделью Redis.
// Идентификаторы хранятся строками: JSON в кэше должен читаться глазами
// при отладке без декодирования uuid из base64.
type StorefrontConverter struct{}

func (c StorefrontConverter) ToRedisModel(sf *usecase.CachedStorefront) *StorefrontRedisModel {
	products := make([]ProductRedisModel, 0, len(sf.Products))
	for _, product := range sf.Products {
		products = append(products, ProductRedisModel{
			ID:          product.ID.String(),
			StoreID:     product.StoreID.String(),
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			CreatedAt:   product.CreatedAt,
		})
	}

	return &StorefrontRedisModel{
		Store: StoreRedisModel{
			ID:             sf.Store.ID.String(),
			Slug:           sf.Store.Slug,
			Name:           sf.Store.Name,
			Description:    sf.Store.Description,
			WhatsAppNumber: sf.Store.WhatsAppNumber,
			Currency:       sf.Store.Currency,
			LogoURL:        sf.Store.LogoURL,
			CreatorID:      sf.Store.CreatorID.String(),
			CreatedAt:      sf.Store.CreatedAt,
		},
		Products:  products,
		PublicURL: sf.PublicURL,
	}
}

func (c StorefrontConverter) ToUseCase(model *StorefrontRedisModel) (*usecase.CachedStorefront, error) {
	storeID, err := uuid.Parse(model.Store.ID)
	if err != nil {
		return nil, err
	}

	creatorID, err := uuid.Parse(model.Store.CreatorID)
	if err != nil {
		return nil, err
	}

	products := make([]*usecase.ProductInfo, 0, len(model.Products))
	for _, product := range model.Products {
		productID, err := uuid.Parse(product.ID)
		if err != nil {
			return nil, err
		}

		productStoreID, err := uuid.Parse(product.StoreID)
		if err != nil {
			return nil, err
		}

		products = append(products, &usecase.ProductInfo{
			ID:          productID,
			StoreID:     productStoreID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			CreatedAt:   product.CreatedAt,
		})
	}

	return &usecase.CachedStorefront{
		Store: &usecase.StoreInfo{
			ID:             storeID,
			Slug:           model.Store.Slug,
			Name:           model.Store.Name,
			Description:    model.Store.Description,
			WhatsAppNumber: model.Store.WhatsAppNumber,
			Currency:       model.Store.Currency,
			LogoURL:        model.Store.LogoURL,
			CreatorID:      creatorID,
			CreatedAt:      model.Store.CreatedAt,
		},
		Products:  products,
		PublicURL: model.PublicURL,
	}, nil
}
