// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// validateFields rejects malformed input at the boundary so that
// aggregation downstream never sees a negative amount, an empty
// category, or an unknown type.
func validateFields(
	amount decimal.Decimal,
	currency string,
	category string,
	transactionType entity.TransactionType,
	date time.Time,
	description string,
) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}

	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category must not be empty",
			domainerror.ErrEmptyTransactionCategory,
		)
	}

	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if currency != "" && !isValidCurrencyCode(currency) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a three-letter code",
			domainerror.ErrInvalidCurrencyCode,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewValidationError(
			"description",
			"must not exceed 255 characters",
			nil,
		)
	}

	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}

// isValidCurrencyCode checks for a three-letter uppercase code.
func isValidCurrencyCode(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
