// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Category is stored denormalized as a name so that deleting a category
// never orphans existing transactions.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Category:    m.Category,
		Type:        entity.TransactionType(m.Type),
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Currency:    transaction.Currency,
		Category:    transaction.Category,
		Type:        string(transaction.Type),
		Date:        transaction.Date,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
