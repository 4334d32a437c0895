// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
)

// RecentCategoriesInput represents the input for the recent list.
type RecentCategoriesInput struct {
	UserID uuid.UUID
}

// RecentCategoriesOutput holds up to five category names, most recently
// used first, deduplicated.
type RecentCategoriesOutput struct {
	Categories []string
}

// RecentCategoriesUseCase reads the most-recently-used category names.
type RecentCategoriesUseCase struct {
	recentCache adapter.RecentCategoryCache
}

// NewRecentCategoriesUseCase creates a new RecentCategoriesUseCase instance.
func NewRecentCategoriesUseCase(recentCache adapter.RecentCategoryCache) *RecentCategoriesUseCase {
	return &RecentCategoriesUseCase{
		recentCache: recentCache,
	}
}

// Execute returns the recent category names for the user.
func (uc *RecentCategoriesUseCase) Execute(ctx context.Context, input RecentCategoriesInput) (*RecentCategoriesOutput, error) {
	names, err := uc.recentCache.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent categories: %w", err)
	}

	return &RecentCategoriesOutput{
		Categories: names,
	}, nil
}
