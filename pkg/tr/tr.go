package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier — общий срез методов pgxpool.Pool и pgx.Tx, достаточный репозиториям.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// FromCtx возвращает активную транзакцию из контекста или пул, если транзакция не открыта.
// Репозитории не знают, выполняются они внутри транзакции или нет.
func FromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, pool)
}

// Manager управляет границами транзакций поверх pgx-пула.
type Manager struct {
	m *manager.Manager
}

func NewManager(pool *pgxpool.Pool) *Manager {
	return &Manager{m: manager.Must(trmpgx.NewDefaultFactory(pool))}
}

// Do выполняет fn в одной транзакции; любая ошибка из fn приводит к откату.
func (t *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.m.Do(ctx, fn)
}
