package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductPriceRepository struct {
	BaseRepository
}

func newPgxProductPriceRepository(pool *pgxpool.Pool) *PgxProductPriceRepository {
	return &PgxProductPriceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductPriceRepositoryFacade = (*PgxProductPriceRepository)(nil)

func (r *PgxProductPriceRepository) ListPricesByProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	query := `
		SELECT pp.id, pp.product_id, pp.currency_id, pp.price, pp.created_at, pp.updated_at,
		       c.id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at
		FROM product_prices pp
		JOIN currencies c ON c.id = pp.currency_id
		WHERE pp.product_id = $1
		ORDER BY pp.created_at DESC, pp.id DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for product %d: %w", productID, err)
	}
	defer rows.Close()

	prices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductPrice, error) {
		var pp models.ProductPrice
		var c models.Currency
		err := row.Scan(
			&pp.ID, &pp.ProductID, &pp.CurrencyID, &pp.Price, &pp.CreatedAt, &pp.UpdatedAt,
			&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt,
		)
		return mapping.ToDomainProductPrice(pp, &c), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan product prices: %w", err)
	}
	return prices, nil
}

func (r *PgxProductPriceRepository) ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error) {
	query := `
		SELECT p.name, c.name, pp.price
		FROM product_prices pp
		JOIN products p ON p.id = pp.product_id
		JOIN currencies c ON c.id = pp.currency_id
		ORDER BY pp.product_id, pp.currency_id;
	`
	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query product prices for export: %w", err)
	}
	defer rows.Close()

	exportRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductPriceExportRow, error) {
		var e domain.ProductPriceExportRow
		err := row.Scan(&e.ProductName, &e.CurrencyName, &e.Price)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan product prices for export: %w", err)
	}
	return exportRows, nil
}

// UpsertPrice relies on the (product_id, currency_id) unique constraint, so concurrent
// derivations for the same pair converge on one row. xmax is zero only for freshly inserted tuples.
func (r *PgxProductPriceRepository) UpsertPrice(ctx context.Context, price *domain.ProductPrice) (bool, error) {
	m := mapping.ToModelProductPrice(*price)
	query := `
		INSERT INTO product_prices (product_id, currency_id, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, currency_id) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted;
	`
	var inserted bool
	err := r.db(ctx).QueryRow(ctx, query, m.ProductID, m.CurrencyID, m.Price).
		Scan(&price.ProductPriceID, &price.CreatedAt, &price.UpdatedAt, &inserted)
	if err != nil {
		if rangeErr := numericOverflow(err, "price"); rangeErr != nil {
			return false, rangeErr
		}
		return false, fmt.Errorf("failed to upsert price for product %d currency %d: %w", m.ProductID, m.CurrencyID, err)
	}
	return inserted, nil
}

// InsertMissingPrices sends all inserts in one batch. Pairs that already have a row return no tuple.
func (r *PgxProductPriceRepository) InsertMissingPrices(ctx context.Context, prices []domain.ProductPrice) ([]domain.ProductPrice, error) {
	if len(prices) == 0 {
		return []domain.ProductPrice{}, nil
	}

	query := `
		INSERT INTO product_prices (product_id, currency_id, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, currency_id) DO NOTHING
		RETURNING id, created_at, updated_at;
	`
	batch := &pgx.Batch{}
	for _, p := range prices {
		m := mapping.ToModelProductPrice(p)
		batch.Queue(query, m.ProductID, m.CurrencyID, m.Price)
	}

	results := r.db(ctx).SendBatch(ctx, batch)
	defer results.Close()

	inserted := make([]domain.ProductPrice, 0, len(prices))
	for _, p := range prices {
		err := results.QueryRow().Scan(&p.ProductPriceID, &p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			if rangeErr := numericOverflow(err, "price"); rangeErr != nil {
				return nil, rangeErr
			}
			return nil, fmt.Errorf("failed to insert price for product %d currency %d: %w", p.ProductID, p.CurrencyID, err)
		}
		inserted = append(inserted, p)
	}
	return inserted, nil
}
