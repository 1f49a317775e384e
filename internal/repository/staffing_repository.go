package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
)

// StaffingRepository persists the staffing-side entities. Compound writes
// (allocation create/delete, contract delete) run in a transaction because
// they also maintain position status and cascades.
type StaffingRepository struct {
	db *gorm.DB
}

func NewStaffingRepository(db *gorm.DB) *StaffingRepository {
	return &StaffingRepository{db: db}
}

func (r *StaffingRepository) GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *StaffingRepository) CreateClient(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *StaffingRepository) UpdateClient(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *StaffingRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id).Error
}

func (r *StaffingRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *StaffingRepository) CreateContract(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *StaffingRepository) UpdateContract(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

// DeleteContract removes the contract and cascades to its positions and
// their allocations.
func (r *StaffingRepository) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM allocations
			WHERE position_id IN (SELECT id FROM positions WHERE contract_id = ?)
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Position{}, "contract_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Contract{}, "id = ?", id).Error
	})
}

func (r *StaffingRepository) GetPosition(ctx context.Context, id uuid.UUID) (*model.Position, error) {
	var position model.Position
	if err := r.db.WithContext(ctx).First(&position, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *StaffingRepository) CreatePosition(ctx context.Context, position *model.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *StaffingRepository) UpdatePosition(ctx context.Context, position *model.Position) error {
	return r.db.WithContext(ctx).Save(position).Error
}

func (r *StaffingRepository) DeletePosition(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Allocation{}, "position_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Position{}, "id = ?", id).Error
	})
}

func (r *StaffingRepository) GetProfessional(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	var professional model.Professional
	if err := r.db.WithContext(ctx).Preload("StackExperiences").First(&professional, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *StaffingRepository) CreateProfessional(ctx context.Context, professional *model.Professional) error {
	return r.db.WithContext(ctx).Create(professional).Error
}

// UpdateProfessional replaces the professional row and its stack-experience
// entries wholesale; partial experience updates are not supported.
func (r *StaffingRepository) UpdateProfessional(ctx context.Context, professional *model.Professional) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("StackExperiences").Save(professional).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.StackExperience{}, "professional_id = ?", professional.ID).Error; err != nil {
			return err
		}
		for i := range professional.StackExperiences {
			professional.StackExperiences[i].ProfessionalID = professional.ID
		}
		if len(professional.StackExperiences) == 0 {
			return nil
		}
		return tx.Create(&professional.StackExperiences).Error
	})
}

func (r *StaffingRepository) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.StackExperience{}, "professional_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Professional{}, "id = ?", id).Error
	})
}

func (r *StaffingRepository) GetAllocation(ctx context.Context, id uuid.UUID) (*model.Allocation, error) {
	var allocation model.Allocation
	if err := r.db.WithContext(ctx).First(&allocation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

// CreateAllocation inserts the allocation and marks its position filled.
func (r *StaffingRepository) CreateAllocation(ctx context.Context, allocation *model.Allocation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(allocation).Error; err != nil {
			return err
		}
		return tx.Model(&model.Position{}).
			Where("id = ?", allocation.PositionID).
			Update("status", model.PositionStatusFilled).Error
	})
}

func (r *StaffingRepository) UpdateAllocation(ctx context.Context, allocation *model.Allocation) error {
	return r.db.WithContext(ctx).Save(allocation).Error
}

// DeleteAllocation removes the allocation and reopens the position when no
// other allocation references it.
func (r *StaffingRepository) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocation model.Allocation
		if err := tx.First(&allocation, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Allocation{}, "id = ?", id).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&model.Allocation{}).
			Where("position_id = ?", allocation.PositionID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		return tx.Model(&model.Position{}).
			Where("id = ?", allocation.PositionID).
			Update("status", model.PositionStatusOpen).Error
	})
}
