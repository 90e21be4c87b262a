package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// productWithCurrency selects a product joined with its base currency.
const productWithCurrency = `
	SELECT p.id, p.name, p.description, p.price, p.currency_id, p.tax_cost, p.manufacturing_cost,
	       p.created_at, p.updated_at,
	       c.id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at
	FROM products p
	JOIN currencies c ON c.id = p.currency_id`

// productSortColumns whitelists the ORDER BY columns search accepts.
var productSortColumns = map[domain.ProductSortField]string{
	domain.ProductSortName:              "p.name",
	domain.ProductSortPrice:             "p.price",
	domain.ProductSortTaxCost:           "p.tax_cost",
	domain.ProductSortManufacturingCost: "p.manufacturing_cost",
	domain.ProductSortCreatedAt:         "p.created_at",
	domain.ProductSortUpdatedAt:         "p.updated_at",
}

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProductWithCurrency(row pgx.Row) (domain.Product, error) {
	var p models.Product
	var c models.Currency
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrencyID, &p.TaxCost, &p.ManufacturingCost,
		&p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	return mapping.ToDomainProduct(p, &c), nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := scanProductWithCurrency(r.db(ctx).QueryRow(ctx, productWithCurrency+` WHERE p.id = $1;`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by id %d: %w", productID, err)
	}
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db(ctx).Query(ctx, productWithCurrency+` ORDER BY p.name, p.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProductWithCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// SearchProducts builds the WHERE clause from the non-empty criteria.
func (r *PgxProductRepository) SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if criteria.Name != "" {
		add("p.name ILIKE '%%' || $%d || '%%'", criteria.Name)
	}
	if criteria.CurrencySymbol != "" {
		add("c.symbol = $%d", criteria.CurrencySymbol)
	}
	bounds := []struct {
		cond  string
		value *decimal.Decimal
	}{
		{"p.price >= $%d", criteria.MinPrice},
		{"p.price <= $%d", criteria.MaxPrice},
		{"p.tax_cost >= $%d", criteria.MinTaxCost},
		{"p.tax_cost <= $%d", criteria.MaxTaxCost},
		{"p.manufacturing_cost >= $%d", criteria.MinManufacturingCost},
		{"p.manufacturing_cost <= $%d", criteria.MaxManufacturingCost},
	}
	for _, b := range bounds {
		if b.value != nil {
			add(b.cond, *b.value)
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products p JOIN currencies c ON c.id = p.currency_id` + where
	if err := r.db(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	sortColumn, ok := productSortColumns[criteria.SortBy]
	if !ok {
		sortColumn = productSortColumns[domain.ProductSortName]
	}
	direction := "ASC"
	if criteria.SortOrder == domain.SortDesc {
		direction = "DESC"
	}

	args = append(args, criteria.PerPage, pagination.Offset(criteria.Page, criteria.PerPage))
	query := fmt.Sprintf("%s%s ORDER BY %s %s, p.id %s LIMIT $%d OFFSET $%d;",
		productWithCurrency, where, sortColumn, direction, direction, len(args)-1, len(args))

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProductWithCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return &domain.ProductPage{
		Products: products,
		Total:    total,
		Page:     criteria.Page,
		PerPage:  criteria.PerPage,
	}, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		INSERT INTO products (name, description, price, currency_id, tax_cost, manufacturing_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;
	`
	err := r.db(ctx).QueryRow(ctx, query, m.Name, m.Description, m.Price, m.CurrencyID, m.TaxCost, m.ManufacturingCost).
		Scan(&product.ProductID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		if rangeErr := numericOverflow(err, "price"); rangeErr != nil {
			return rangeErr
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, currency_id = $5, tax_cost = $6,
		    manufacturing_cost = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at;
	`
	err := r.db(ctx).QueryRow(ctx, query, m.ID, m.Name, m.Description, m.Price, m.CurrencyID, m.TaxCost, m.ManufacturingCost).
		Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		if rangeErr := numericOverflow(err, "price"); rangeErr != nil {
			return rangeErr
		}
		return fmt.Errorf("failed to update product %d: %w", m.ID, err)
	}
	return nil
}

// DeleteProduct removes the product; product_prices rows cascade.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
