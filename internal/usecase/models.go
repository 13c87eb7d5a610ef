package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
)

// STORE USECASE

// ImageFile представляет файл, загруженный через multipart/form-data.
type ImageFile struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// StoreDetails — данные шага details мастера создания магазина.
type StoreDetails struct {
	Name           string
	Description    string
	WhatsAppNumber string // после нормализации: цифры с кодом страны
	Currency       string
	Logo           *ImageFile // опционален: отсутствие логотипа валидно
}

// ProductEntry — одна позиция шага products мастера.
type ProductEntry struct {
	Name        string
	Description string
	Price       int64 // минорные единицы
	Image       *ImageFile
}

// CreateStoreReq — запрос на создание магазина с начальным каталогом.
type CreateStoreReq struct {
	CreatorID uuid.UUID // uuid.Nil означает неаутентифицированный запрос
	Details   StoreDetails
	Products  []ProductEntry
}

type CreateStoreRes struct {
	Store     *StoreInfo
	PublicURL string
}

type GetStorefrontReq struct {
	Slug    string
	ActorID uuid.UUID // uuid.Nil для анонимного посетителя
}

// StorefrontRes — публичная витрина: магазин, товары и признак владельца.
type StorefrontRes struct {
	Store     *StoreInfo
	Products  []*ProductInfo
	PublicURL string
	IsOwner   bool
}

// StoreInfo — DTO магазина для внешнего использования.
type StoreInfo struct {
	ID             uuid.UUID
	Slug           string
	Name           string
	Description    string
	WhatsAppNumber string
	Currency       string
	LogoURL        *string
	CreatorID      uuid.UUID
	CreatedAt      time.Time
}

// ProductInfo — DTO товара для внешнего использования.
type ProductInfo struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Name        string
	Description string
	Price       int64
	ImageURL    *string
	CreatedAt   time.Time
}

// UpdateStoreReq — частичное обновление отображаемых полей магазина.
// nil-поля не изменяются; slug и creator_id не обновляемы в принципе.
type UpdateStoreReq struct {
	ActorID        uuid.UUID
	StoreID        uuid.UUID
	Name           *string
	Description    *string
	WhatsAppNumber *string
	Currency       *string
	Logo           *ImageFile
}

// StorePatch — построчное обновление для репозитория.
type StorePatch struct {
	StoreID        uuid.UUID
	Name           *string
	Description    *string
	WhatsAppNumber *string
	Currency       *string
	LogoURL        *string
}

// PRODUCT USECASE

type AddProductReq struct {
	ActorID uuid.UUID
	StoreID uuid.UUID
	Entry   ProductEntry
}

// UpdateProductReq — частичное обновление: отправляются только заданные поля.
// Отсутствующее изображение оставляет существующий image_url нетронутым.
type UpdateProductReq struct {
	ActorID     uuid.UUID
	ProductID   uuid.UUID
	Name        *string
	Description *string
	Price       *int64
	Image       *ImageFile
}

type ProductPatch struct {
	ProductID   uuid.UUID
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
}

type DeleteProductReq struct {
	ActorID   uuid.UUID
	ProductID uuid.UUID
}

// AUTH USECASE

type CredentialsReq struct {
	Email    string
	Password string
}

// Identity — проверенная личность из сессионного токена.
type Identity struct {
	UserID    uuid.UUID
	JTI       string
	ExpiresAt time.Time
}

type SessionRes struct {
	Token     string
	ExpiresAt time.Time
	User      *UserInfo
}

type UserInfo struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// ORDER USECASE

// OrderLinkReq — корзина покупателя для превращения в wa.me-ссылку.
// Состав корзины на сервере не сохраняется.
type OrderLinkReq struct {
	Slug          string
	Lines         []domain.CartLine
	SingleProduct bool // интерес к одному товару (кнопка Buy), не корзина
}

type OrderLinkRes struct {
	URL      string
	Message  string
	OrderRef string
}

// INFRASTRUCTURE

// UploadResult — явный результат fail-open загрузки: либо URL, либо причина отказа.
type UploadResult struct {
	URL    *string
	Bucket string
	Key    string
	Err    error
}

func (r UploadResult) Failed() bool {
	return r.Err != nil
}

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewStoreInfo(store *domain.Store) *StoreInfo {
	return &StoreInfo{
		ID:             store.ID,
		Slug:           store.Slug,
		Name:           store.Name,
		Description:    store.Description,
		WhatsAppNumber: store.WhatsAppNumber,
		Currency:       store.Currency,
		LogoURL:        store.LogoURL,
		CreatorID:      store.CreatorID,
		CreatedAt:      store.CreatedAt,
	}
}

func NewProductInfo(product *domain.Product) *ProductInfo {
	return &ProductInfo{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

func NewProductInfoList(products []*domain.Product) []*ProductInfo {
	result := make([]*ProductInfo, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductInfo(product))
	}

	return result
}

func NewUserInfo(user *domain.User) *UserInfo {
	return &UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func NewImageFile(data []byte, mimeType string, size int64, name string) *ImageFile {
	return &ImageFile{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadResult(bucket, key string, url *string, err error) UploadResult {
	return UploadResult{
		URL:    url,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}
