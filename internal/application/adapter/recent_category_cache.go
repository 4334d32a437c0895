// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// RecentCategoryLimit bounds the most-recently-used category list.
const RecentCategoryLimit = 5

// RecentCategoryCache defines the interface for the advisory
// most-recently-used category list. The cache holds no correctness
// obligation: a miss or a stale entry only degrades a UX convenience.
type RecentCategoryCache interface {
	// Touch records a use of the category, moving it to the front and
	// dropping duplicates; the list is trimmed to RecentCategoryLimit.
	Touch(ctx context.Context, userID uuid.UUID, category string) error

	// List returns the user's recent categories, most recent first.
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}
