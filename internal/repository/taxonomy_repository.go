package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
)

// TaxonomyRepository persists the reference collections: stacks, stack
// categories and both seniority ladders. These have no behavior beyond
// lookup and display grouping.
type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

func (r *TaxonomyRepository) GetStack(ctx context.Context, id uuid.UUID) (*model.Stack, error) {
	var stack model.Stack
	if err := r.db.WithContext(ctx).First(&stack, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stack, nil
}

func (r *TaxonomyRepository) CreateStack(ctx context.Context, stack *model.Stack) error {
	return r.db.WithContext(ctx).Create(stack).Error
}

func (r *TaxonomyRepository) UpdateStack(ctx context.Context, stack *model.Stack) error {
	return r.db.WithContext(ctx).Save(stack).Error
}

func (r *TaxonomyRepository) DeleteStack(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Stack{}, "id = ?", id).Error
}

func (r *TaxonomyRepository) CreateStackCategory(ctx context.Context, category *model.StackCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *TaxonomyRepository) UpdateStackCategory(ctx context.Context, category *model.StackCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *TaxonomyRepository) DeleteStackCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StackCategory{}, "id = ?", id).Error
}

func (r *TaxonomyRepository) CreateSeniority(ctx context.Context, seniority *model.Seniority) error {
	return r.db.WithContext(ctx).Create(seniority).Error
}

func (r *TaxonomyRepository) UpdateSeniority(ctx context.Context, seniority *model.Seniority) error {
	return r.db.WithContext(ctx).Save(seniority).Error
}

func (r *TaxonomyRepository) DeleteSeniority(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Seniority{}, "id = ?", id).Error
}

func (r *TaxonomyRepository) CreateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error {
	return r.db.WithContext(ctx).Create(seniority).Error
}

func (r *TaxonomyRepository) UpdateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error {
	return r.db.WithContext(ctx).Save(seniority).Error
}

func (r *TaxonomyRepository) DeleteGeneralSeniority(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GeneralSeniority{}, "id = ?", id).Error
}
