// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
// Universal creation is reserved for administrators.
type CreateCategoryInput struct {
	UserID    uuid.UUID
	Role      entity.UserRole
	Name      string
	Universal bool
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Names are unique per scope:
// one user may not have two categories with the same name, and the
// universal scope is checked separately.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	if input.Universal && input.Role != entity.UserRoleAdmin {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"only administrators may create universal categories",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	scope := &input.UserID
	if input.Universal {
		scope = nil
	}

	exists, err := uc.categoryRepo.ExistsByNameInScope(ctx, name, scope)
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

	var category *entity.Category
	if input.Universal {
		category = entity.NewUniversalCategory(name)
	} else {
		category = entity.NewCategory(name, input.UserID)
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateName rejects empty and oversized category names.
func validateName(name string) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name cannot be empty",
			domainerror.ErrEmptyCategoryName,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return nil
}
