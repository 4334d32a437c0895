// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DefaultCurrency is the currency code applied when a transaction omits one.
const DefaultCurrency = "USD"

// Transaction represents a single dated money movement.
// Amount is always non-negative; Type determines sign semantics in
// aggregation (expenses subtract from net, income adds).
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Type        TransactionType
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	category string,
	transactionType TransactionType,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	if currency == "" {
		currency = DefaultCurrency
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Type:        transactionType,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpense reports whether the transaction is expense-typed.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is income-typed.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}
