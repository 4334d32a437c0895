// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleToUser retrieves the user's own categories, including
	// universal ones when includeUniversal is set.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID, includeUniversal bool) ([]*entity.Category, error)

	// ExistsByNameInScope checks if a category with the given name exists
	// in the scope of ownerID. A nil ownerID checks the universal scope.
	ExistsByNameInScope(ctx context.Context, name string, ownerID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
