package pgdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/internal/repository/pgdb/converter"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/tr"
)

const storeColumns = "id, slug, name, description, whatsapp_number, currency, logo_url, creator_id, created_at"

// StoreRepo реализует репозиторий магазинов поверх PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
	conv converter.StoreConverter
}

func NewStoreRepo(pool *pgxpool.Pool, conv converter.StoreConverter) *StoreRepo {
	return &StoreRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет магазин. Конфликт по уникальному slug возвращается
// как e.ErrSlugTaken, повторную генерацию slug решает вызывающий.
func (s *StoreRepo) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	q := tr.FromCtx(ctx, s.pool)

	query := `
		INSERT INTO stores (slug, name, description, whatsapp_number, currency, logo_url, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + storeColumns + `;
	`

	var model converter.StoreModel
	err := q.QueryRow(ctx, query,
		store.Slug,
		store.Name,
		store.Description,
		store.WhatsAppNumber,
		store.Currency,
		store.LogoURL,
		store.CreatorID,
	).Scan(s.storeFields(&model)...)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// GetBySlug возвращает магазин по публичному slug.
// Отсутствие строки и инфраструктурный сбой различаются строго:
// только pgx.ErrNoRows превращается в e.ErrStoreNotFound.
func (s *StoreRepo) GetBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE slug = $1;`

	var model converter.StoreModel
	err := tr.FromCtx(ctx, s.pool).QueryRow(ctx, query, slug).Scan(s.storeFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStoreNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *StoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1;`

	var model converter.StoreModel
	err := tr.FromCtx(ctx, s.pool).QueryRow(ctx, query, id).Scan(s.storeFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStoreNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// UpdateDisplayFields обновляет отображаемые поля магазина.
// Условие creator_id = $N в самом запросе не даёт изменить чужую строку
// независимо от проверок выше по стеку; slug и creator_id не входят в SET.
func (s *StoreRepo) UpdateDisplayFields(ctx context.Context, patch *usecase.StorePatch, actorID uuid.UUID) (*domain.Store, error) {
	q := tr.FromCtx(ctx, s.pool)

	query := `
		UPDATE stores
		SET name            = COALESCE($2, name),
		    description     = COALESCE($3, description),
		    whatsapp_number = COALESCE($4, whatsapp_number),
		    currency        = COALESCE($5, currency),
		    logo_url        = COALESCE($6, logo_url)
		WHERE id = $1 AND creator_id = $7
		RETURNING ` + storeColumns + `;
	`

	var model converter.StoreModel
	err := q.QueryRow(ctx, query,
		patch.StoreID,
		patch.Name,
		patch.Description,
		patch.WhatsAppNumber,
		patch.Currency,
		patch.LogoURL,
		actorID,
	).Scan(s.storeFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), s.missingReason(ctx, patch.StoreID))
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// missingReason различает "магазина нет" и "магазин чужой" после пустого UPDATE.
func (s *StoreRepo) missingReason(ctx context.Context, storeID uuid.UUID) error {
	var exists bool
	err := tr.FromCtx(ctx, s.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1);`, storeID).
		Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return e.ErrNotOwner
	}

	return e.ErrStoreNotFound
}

func (s *StoreRepo) storeFields(model *converter.StoreModel) []any {
	return []any{
		&model.ID, &model.Slug, &model.Name, &model.Description,
		&model.WhatsAppNumber, &model.Currency, &model.LogoURL,
		&model.CreatorID, &model.CreatedAt,
	}
}
