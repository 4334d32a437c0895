// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a transaction category label.
// A nil OwnerID marks a universal category: visible to every user and
// editable only by administrators.
type Category struct {
	ID        uuid.UUID
	Name      string
	OwnerID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new user-owned Category entity.
func NewCategory(name string, ownerID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   &ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewUniversalCategory creates a new Category with no owning user.
func NewUniversalCategory(name string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsUniversal reports whether the category has no owning user.
func (c *Category) IsUniversal() bool {
	return c.OwnerID == nil
}

// EditableBy reports whether the given caller may mutate this category:
// the owner always may; universal categories may only be mutated by
// administrators.
func (c *Category) EditableBy(userID uuid.UUID, role UserRole) bool {
	if c.OwnerID != nil {
		return *c.OwnerID == userID
	}
	return role == UserRoleAdmin
}
