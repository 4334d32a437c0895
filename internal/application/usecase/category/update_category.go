// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Role       entity.UserRole
	NewName    string
}

// UpdateCategoryOutput represents the output of a category rename.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category rename logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute renames the category. Owners may rename their own categories;
// universal categories may only be renamed by administrators.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	name := strings.TrimSpace(input.NewName)
	if err := validateName(name); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if !category.EditableBy(input.UserID, input.Role) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify this category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if name != category.Name {
		exists, err := uc.categoryRepo.ExistsByNameInScope(ctx, name, category.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"category already exists for this user",
				domainerror.ErrCategoryNameExists,
			)
		}
	}

	category.Name = name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
