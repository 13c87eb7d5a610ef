package http

import (
	"time"

	"github.com/shopsmart/storefront-backend/internal/usecase"
)

// Ответы API. Идентификаторы сериализуются строками uuid.

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

type StoreResponse struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Currency       string    `json:"currency"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateStoreResponse struct {
	Store     *StoreResponse `json:"store"`
	PublicURL string         `json:"public_url"`
}

type StorefrontResponse struct {
	Store     *StoreResponse     `json:"store"`
	Products  []*ProductResponse `json:"products"`
	PublicURL string             `json:"public_url"`
	IsOwner   bool               `json:"is_owner"`
}

type OrderLinkResponse struct {
	URL      string `json:"url"`
	Message  string `json:"message"`
	OrderRef string `json:"order_ref,omitempty"`
}

// Тела запросов.

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createStorePayload — JSON-часть "payload" multipart-запроса создания магазина.
// Цены передаются строками в основных единицах валюты ("19.99").
type createStorePayload struct {
	Store struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		WhatsAppNumber string `json:"whatsapp_number"`
		Currency       string `json:"currency"`
	} `json:"store"`
	Products []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
	} `json:"products"`
}

type orderLinkRequest struct {
	Items []struct {
		Name     string `json:"name"`
		Price    string `json:"price"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	SingleProduct bool `json:"single_product"`
}

// Мапперы.

func newUserResponse(user *usecase.UserInfo) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func newSessionResponse(session *usecase.SessionRes) *SessionResponse {
	return &SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(session.User),
	}
}

func newStoreResponse(store *usecase.StoreInfo) *StoreResponse {
	return &StoreResponse{
		ID:             store.ID.String(),
		Slug:           store.Slug,
		Name:           store.Name,
		Description:    store.Description,
		WhatsAppNumber: store.WhatsAppNumber,
		Currency:       store.Currency,
		LogoURL:        store.LogoURL,
		CreatedAt:      store.CreatedAt,
	}
}

func newProductResponse(product *usecase.ProductInfo) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID.String(),
		StoreID:     product.StoreID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

func newProductResponseList(products []*usecase.ProductInfo) []*ProductResponse {
	result := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, newProductResponse(product))
	}

	return result
}

func newStorefrontResponse(res *usecase.StorefrontRes) *StorefrontResponse {
	return &StorefrontResponse{
		Store:     newStoreResponse(res.Store),
		Products:  newProductResponseList(res.Products),
		PublicURL: res.PublicURL,
		IsOwner:   res.IsOwner,
	}
}
