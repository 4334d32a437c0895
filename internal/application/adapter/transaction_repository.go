// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// TransactionFilter holds the criteria pushed down to the database when
// listing transactions. Search narrows to rows whose description or
// category contains the term, case-insensitively, matching the report
// pipeline's predicate. Anything not expressible here is applied by the
// pipeline on the returned records.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      *entity.TransactionType
	Search    string
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the pushdown filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
