package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a single database transaction.
// Repository calls made with the ctx passed to fn join that transaction.
type TransactionManager interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
