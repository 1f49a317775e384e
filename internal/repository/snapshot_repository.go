package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
)

// SnapshotRepository reads every base collection in one pass for the
// analytics layer. Collections load in creation order so derived views are
// stable across identical snapshots.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (model.Snapshot, error) {
	var s model.Snapshot
	tx := r.db.WithContext(ctx)

	if err := tx.Order("created_at ASC").Find(&s.Clients).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.Contracts).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.Stacks).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.StackCategories).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.Seniorities).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.GeneralSeniorities).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.Positions).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Preload("StackExperiences").Order("created_at ASC").Find(&s.Professionals).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.Allocations).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.FactoryProjects).Error; err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Order("created_at ASC").Find(&s.FactoryAllocations).Error; err != nil {
		return model.Snapshot{}, err
	}
	return s, nil
}
