package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, name, symbol, exchange_rate, created_at, updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`
	modelCurr, err := scanCurrency(r.db(ctx).QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY name, id;`
	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

func (r *PgxCurrencyRepository) ExistsCurrencyWithName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM currencies WHERE name = $1 AND id <> $2);`, name, excludeID)
}

func (r *PgxCurrencyRepository) ExistsCurrencyWithSymbol(ctx context.Context, symbol string, excludeID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM currencies WHERE symbol = $1 AND id <> $2);`, symbol, excludeID)
}

func (r *PgxCurrencyRepository) exists(ctx context.Context, query, value string, excludeID int64) (bool, error) {
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check currency uniqueness: %w", err)
	}
	return exists, nil
}

func (r *PgxCurrencyRepository) CountProductsUsingCurrency(ctx context.Context, currencyID int64) (int, error) {
	var count int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE currency_id = $1;`, currencyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products for currency %d: %w", currencyID, err)
	}
	return count, nil
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(*currency)
	query := `
		INSERT INTO currencies (name, symbol, exchange_rate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`
	err := r.db(ctx).QueryRow(ctx, query, modelCurr.Name, modelCurr.Symbol, modelCurr.ExchangeRate).
		Scan(&currency.CurrencyID, &currency.CreatedAt, &currency.UpdatedAt)
	if err != nil {
		if dupErr := currencyDuplicate(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.Symbol, err)
	}
	return nil
}

func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency *domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(*currency)
	query := `
		UPDATE currencies SET name = $2, symbol = $3, exchange_rate = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at;
	`
	err := r.db(ctx).QueryRow(ctx, query, modelCurr.ID, modelCurr.Name, modelCurr.Symbol, modelCurr.ExchangeRate).
		Scan(&currency.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if dupErr := currencyDuplicate(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("failed to update currency %d: %w", modelCurr.ID, err)
	}
	return nil
}

func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, currencyID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewConflictError("Cannot delete currency because it has associated products")
		}
		return fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// currencyDuplicate turns a unique violation that slipped past the service check into a field error.
func currencyDuplicate(err error) error {
	code, constraint := pgErrorCode(err)
	if code != pgUniqueViolation {
		return nil
	}
	if constraint == "currencies_symbol_key" {
		return apperrors.NewDuplicateError("symbol", "The symbol has already been taken.")
	}
	return apperrors.NewDuplicateError("name", "The name has already been taken.")
}
