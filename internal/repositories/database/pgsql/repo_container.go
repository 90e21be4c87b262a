package pgsql

import (
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:        &BaseRepository{Pool: dbPool},
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		ProductPriceRepo: newPgxProductPriceRepository(dbPool),
		EventLogRepo:     newPgxEventLogRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
