package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
)

type StoreRepository interface {
	// Create вставляет магазин; занятый slug — e.ErrSlugTaken.
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	// GetBySlug возвращает e.ErrStoreNotFound для несуществующего slug;
	// сетевые/инфраструктурные ошибки никогда не маскируются под not found.
	GetBySlug(ctx context.Context, slug string) (*domain.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	// UpdateDisplayFields обновляет только отображаемые поля и только строки
	// с creator_id = actorID: slug и creator_id неизменяемы на уровне запроса.
	UpdateDisplayFields(ctx context.Context, patch *StorePatch, actorID uuid.UUID) (*domain.Store, error)
}

type ProductRepository interface {
	InsertBatch(ctx context.Context, products []*domain.Product) ([]*domain.Product, error)
	// Insert создаёт товар, если actorID владеет родительским магазином.
	Insert(ctx context.Context, product *domain.Product, actorID uuid.UUID) (*domain.Product, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// Update применяет частичное обновление: nil-поля patch не трогаются.
	Update(ctx context.Context, patch *ProductPatch, actorID uuid.UUID) (*domain.Product, error)
	Delete(ctx context.Context, productID uuid.UUID, actorID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

type CacheRepository interface {
	GetStorefront(ctx context.Context, slug string) (*CachedStorefront, error)
	SetStorefront(ctx context.Context, slug string, sf *CachedStorefront) error
	DeleteStorefront(ctx context.Context, slug string) error
}

type SessionRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsDone(ctx context.Context, ids []int64) error
	MarkAsFailed(ctx context.Context, id int64, reason string) error
}
