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

const productColumns = "id, store_id, name, description, price, image_url, created_at"

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// InsertBatch вставляет начальный каталог магазина одним batch-запросом.
// Вызывается внутри транзакции создания магазина, владение не проверяет:
// store_id только что создан той же транзакцией.
func (p *ProductRepo) InsertBatch(ctx context.Context, products []*domain.Product) ([]*domain.Product, error) {
	q := tr.FromCtx(ctx, p.pool)

	query := `
		INSERT INTO products (store_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns + `;
	`

	batch := &pgx.Batch{}
	for _, product := range products {
		batch.Queue(query, product.StoreID, product.Name, product.Description, product.Price, product.ImageURL)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := make([]*domain.Product, 0, len(products))
	for range products {
		var model converter.ProductModel
		if err := results.QueryRow().Scan(p.productFields(&model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		inserted = append(inserted, p.conv.ToEntity(&model))
	}

	if err := results.Close(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return inserted, nil
}

// Insert создаёт товар в существующем магазине.
// Вставка проходит только если actorID владеет родительским магазином.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product, actorID uuid.UUID) (*domain.Product, error) {
	q := tr.FromCtx(ctx, p.pool)

	query := `
		INSERT INTO products (store_id, name, description, price, image_url)
		SELECT s.id, $2, $3, $4, $5
		FROM stores s
		WHERE s.id = $1 AND s.creator_id = $6
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	err := q.QueryRow(ctx, query,
		product.StoreID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		actorID,
	).Scan(p.productFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), p.missingStoreReason(ctx, product.StoreID))
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListByStore возвращает товары магазина в порядке добавления.
func (p *ProductRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY created_at, id;`

	rows, err := tr.FromCtx(ctx, p.pool).Query(ctx, query, storeID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(p.productFields(&model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var model converter.ProductModel
	err := tr.FromCtx(ctx, p.pool).QueryRow(ctx, query, id).Scan(p.productFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update применяет частичное обновление товара; nil-поля patch не трогаются.
// Владение проверяется join-ом на stores в условии самого UPDATE.
func (p *ProductRepo) Update(ctx context.Context, patch *usecase.ProductPatch, actorID uuid.UUID) (*domain.Product, error) {
	q := tr.FromCtx(ctx, p.pool)

	query := `
		UPDATE products pr
		SET name        = COALESCE($2, pr.name),
		    description = COALESCE($3, pr.description),
		    price       = COALESCE($4, pr.price),
		    image_url   = COALESCE($5, pr.image_url)
		FROM stores s
		WHERE pr.id = $1 AND s.id = pr.store_id AND s.creator_id = $6
		RETURNING pr.id, pr.store_id, pr.name, pr.description, pr.price, pr.image_url, pr.created_at;
	`

	var model converter.ProductModel
	err := q.QueryRow(ctx, query,
		patch.ProductID,
		patch.Name,
		patch.Description,
		patch.Price,
		patch.ImageURL,
		actorID,
	).Scan(p.productFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), p.missingProductReason(ctx, patch.ProductID))
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет товар, если actorID владеет его магазином.
func (p *ProductRepo) Delete(ctx context.Context, productID uuid.UUID, actorID uuid.UUID) error {
	q := tr.FromCtx(ctx, p.pool)

	query := `
		DELETE FROM products pr
		USING stores s
		WHERE pr.id = $1 AND s.id = pr.store_id AND s.creator_id = $2;
	`

	tag, err := q.Exec(ctx, query, productID, actorID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), p.missingProductReason(ctx, productID))
	}

	return nil
}

func (p *ProductRepo) missingStoreReason(ctx context.Context, storeID uuid.UUID) error {
	var exists bool
	err := tr.FromCtx(ctx, p.pool).
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

func (p *ProductRepo) missingProductReason(ctx context.Context, productID uuid.UUID) error {
	var exists bool
	err := tr.FromCtx(ctx, p.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);`, productID).
		Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return e.ErrNotOwner
	}

	return e.ErrProductNotFound
}

func (p *ProductRepo) productFields(model *converter.ProductModel) []any {
	return []any{
		&model.ID, &model.StoreID, &model.Name, &model.Description,
		&model.Price, &model.ImageURL, &model.CreatedAt,
	}
}
