// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string         `gorm:"type:varchar(100);not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         string         `gorm:"type:varchar(10);not null;default:'user'"`
	Approved     bool           `gorm:"default:false;index"`
	ApprovedAt   *time.Time     `gorm:"type:timestamptz"`
	Currency     string         `gorm:"type:varchar(3);default:'USD'"`
	DateFormat   string         `gorm:"type:varchar(20);default:'YYYY-MM-DD'"`
	Language     string         `gorm:"type:varchar(10);default:'en'"`
	Theme        string         `gorm:"type:varchar(10);default:'system'"`
	AvatarURL    string         `gorm:"type:varchar(500)"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entity.UserRole(m.Role),
		Approved:     m.Approved,
		ApprovedAt:   m.ApprovedAt,
		Currency:     m.Currency,
		DateFormat:   entity.DateFormat(m.DateFormat),
		Language:     m.Language,
		Theme:        entity.ThemePreference(m.Theme),
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Approved:     user.Approved,
		ApprovedAt:   user.ApprovedAt,
		Currency:     user.Currency,
		DateFormat:   string(user.DateFormat),
		Language:     user.Language,
		Theme:        string(user.Theme),
		AvatarURL:    user.AvatarURL,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel represents the password_reset_tokens table.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token     string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Used      bool       `gorm:"default:false"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	ExpiresAt time.Time  `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PasswordResetTokenModel.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
