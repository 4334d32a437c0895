package dto

import (
	"time"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Universal bool   `json:"universal"`
}

// UpdateCategoryRequest represents the request body for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Universal bool      `json:"universal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecentCategoriesResponse represents the most recently used category names,
// most recent first.
type RecentCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Universal: category.OwnerID == nil,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of Category entities.
func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
