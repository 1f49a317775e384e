package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
)

// FactoryRepository persists the software-factory entities.
type FactoryRepository struct {
	db *gorm.DB
}

func NewFactoryRepository(db *gorm.DB) *FactoryRepository {
	return &FactoryRepository{db: db}
}

func (r *FactoryRepository) GetProject(ctx context.Context, id uuid.UUID) (*model.FactoryProject, error) {
	var project model.FactoryProject
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *FactoryRepository) CreateProject(ctx context.Context, project *model.FactoryProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *FactoryRepository) UpdateProject(ctx context.Context, project *model.FactoryProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// DeleteProject cascades to the project's allocations.
func (r *FactoryRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.FactoryAllocation{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FactoryProject{}, "id = ?", id).Error
	})
}

func (r *FactoryRepository) GetAllocation(ctx context.Context, id uuid.UUID) (*model.FactoryAllocation, error) {
	var allocation model.FactoryAllocation
	if err := r.db.WithContext(ctx).First(&allocation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *FactoryRepository) CreateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

func (r *FactoryRepository) UpdateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error {
	return r.db.WithContext(ctx).Save(allocation).Error
}

func (r *FactoryRepository) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FactoryAllocation{}, "id = ?", id).Error
}
