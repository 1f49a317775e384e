package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
)

// StaffingStore is the persistence surface StaffingService needs for the
// staffing-side entities.
type StaffingStore interface {
	GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error)
	CreateClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	CreateContract(ctx context.Context, contract *model.Contract) error
	UpdateContract(ctx context.Context, contract *model.Contract) error
	DeleteContract(ctx context.Context, id uuid.UUID) error

	GetPosition(ctx context.Context, id uuid.UUID) (*model.Position, error)
	CreatePosition(ctx context.Context, position *model.Position) error
	UpdatePosition(ctx context.Context, position *model.Position) error
	DeletePosition(ctx context.Context, id uuid.UUID) error

	GetProfessional(ctx context.Context, id uuid.UUID) (*model.Professional, error)
	CreateProfessional(ctx context.Context, professional *model.Professional) error
	UpdateProfessional(ctx context.Context, professional *model.Professional) error
	DeleteProfessional(ctx context.Context, id uuid.UUID) error

	GetAllocation(ctx context.Context, id uuid.UUID) (*model.Allocation, error)
	CreateAllocation(ctx context.Context, allocation *model.Allocation) error
	UpdateAllocation(ctx context.Context, allocation *model.Allocation) error
	DeleteAllocation(ctx context.Context, id uuid.UUID) error
}

// FactoryStore is the persistence surface for factory projects and their
// allocations.
type FactoryStore interface {
	GetProject(ctx context.Context, id uuid.UUID) (*model.FactoryProject, error)
	CreateProject(ctx context.Context, project *model.FactoryProject) error
	UpdateProject(ctx context.Context, project *model.FactoryProject) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	GetAllocation(ctx context.Context, id uuid.UUID) (*model.FactoryAllocation, error)
	CreateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error
	UpdateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error
	DeleteAllocation(ctx context.Context, id uuid.UUID) error
}

// TaxonomyStore is the persistence surface for the reference collections.
type TaxonomyStore interface {
	GetStack(ctx context.Context, id uuid.UUID) (*model.Stack, error)
	CreateStack(ctx context.Context, stack *model.Stack) error
	UpdateStack(ctx context.Context, stack *model.Stack) error
	DeleteStack(ctx context.Context, id uuid.UUID) error

	CreateStackCategory(ctx context.Context, category *model.StackCategory) error
	UpdateStackCategory(ctx context.Context, category *model.StackCategory) error
	DeleteStackCategory(ctx context.Context, id uuid.UUID) error

	CreateSeniority(ctx context.Context, seniority *model.Seniority) error
	UpdateSeniority(ctx context.Context, seniority *model.Seniority) error
	DeleteSeniority(ctx context.Context, id uuid.UUID) error

	CreateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error
	UpdateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error
	DeleteGeneralSeniority(ctx context.Context, id uuid.UUID) error
}

// StaffingService validates and orchestrates writes to the base
// collections. Position status maintenance and cascades run inside the
// store; referential checks run here so callers get sentinel errors rather
// than database failures.
type StaffingService struct {
	staffing StaffingStore
	factory  FactoryStore
	taxonomy TaxonomyStore
}

func NewStaffingService(staffing StaffingStore, factory FactoryStore, taxonomy TaxonomyStore) *StaffingService {
	return &StaffingService{staffing: staffing, factory: factory, taxonomy: taxonomy}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func requireManage(principal model.Principal) error {
	if !principal.CanManage() {
		return ErrPermissionDenied
	}
	return nil
}

func stampNew(id *uuid.UUID, createdAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

func (s *StaffingService) CreateClient(ctx context.Context, principal model.Principal, client *model.Client) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if client.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	stampNew(&client.ID, &client.CreatedAt)
	return s.staffing.CreateClient(ctx, client)
}

func (s *StaffingService) UpdateClient(ctx context.Context, principal model.Principal, client *model.Client) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if _, err := s.staffing.GetClient(ctx, client.ID); err != nil {
		return notFoundOr(err)
	}
	return s.staffing.UpdateClient(ctx, client)
}

func (s *StaffingService) DeleteClient(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.staffing.DeleteClient(ctx, id)
}

func (s *StaffingService) CreateContract(ctx context.Context, principal model.Principal, contract *model.Contract) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validateContract(contract); err != nil {
		return err
	}
	if _, err := s.staffing.GetClient(ctx, contract.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: client does not exist", ErrInvalidInput)
		}
		return err
	}
	stampNew(&contract.ID, &contract.CreatedAt)
	return s.staffing.CreateContract(ctx, contract)
}

func (s *StaffingService) UpdateContract(ctx context.Context, principal model.Principal, contract *model.Contract) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validateContract(contract); err != nil {
		return err
	}
	if _, err := s.staffing.GetContract(ctx, contract.ID); err != nil {
		return notFoundOr(err)
	}
	return s.staffing.UpdateContract(ctx, contract)
}

// DeleteContract cascades to the contract's positions and allocations.
func (s *StaffingService) DeleteContract(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.staffing.DeleteContract(ctx, id)
}

func validateContract(contract *model.Contract) error {
	if contract.ContractNumber == "" {
		return fmt.Errorf("%w: contract number is required", ErrInvalidInput)
	}
	if contract.Type != model.ContractTypeStaffing && contract.Type != model.ContractTypeFactory {
		return fmt.Errorf("%w: invalid contract type", ErrInvalidInput)
	}
	if contract.EndDate.Before(contract.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if contract.MonthlyValue.IsNegative() {
		return fmt.Errorf("%w: monthly value cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (s *StaffingService) CreatePosition(ctx context.Context, principal model.Principal, position *model.Position) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validatePosition(position); err != nil {
		return err
	}
	if _, err := s.staffing.GetContract(ctx, position.ContractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contract does not exist", ErrInvalidInput)
		}
		return err
	}
	if position.Status == "" {
		position.Status = model.PositionStatusOpen
	}
	stampNew(&position.ID, &position.CreatedAt)
	return s.staffing.CreatePosition(ctx, position)
}

func (s *StaffingService) UpdatePosition(ctx context.Context, principal model.Principal, position *model.Position) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validatePosition(position); err != nil {
		return err
	}
	if _, err := s.staffing.GetPosition(ctx, position.ID); err != nil {
		return notFoundOr(err)
	}
	return s.staffing.UpdatePosition(ctx, position)
}

func (s *StaffingService) DeletePosition(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.staffing.DeletePosition(ctx, id)
}

func validatePosition(position *model.Position) error {
	if position.Title == "" {
		return fmt.Errorf("%w: position title is required", ErrInvalidInput)
	}
	if position.AllocationPercentage < 1 || position.AllocationPercentage > 100 {
		return fmt.Errorf("%w: allocation percentage must be between 1 and 100", ErrInvalidInput)
	}
	if position.EndDate.Before(position.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	return nil
}

func (s *StaffingService) CreateProfessional(ctx context.Context, principal model.Principal, professional *model.Professional) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if professional.Name == "" {
		return fmt.Errorf("%w: professional name is required", ErrInvalidInput)
	}
	if professional.Status == "" {
		professional.Status = model.ProfessionalStatusIdle
	}
	if professional.WorkMode == "" {
		professional.WorkMode = model.WorkModeAllocation
	}
	stampNew(&professional.ID, &professional.CreatedAt)
	for i := range professional.StackExperiences {
		professional.StackExperiences[i].ProfessionalID = professional.ID
	}
	return s.staffing.CreateProfessional(ctx, professional)
}

func (s *StaffingService) UpdateProfessional(ctx context.Context, principal model.Principal, professional *model.Professional) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if professional.Name == "" {
		return fmt.Errorf("%w: professional name is required", ErrInvalidInput)
	}
	if _, err := s.staffing.GetProfessional(ctx, professional.ID); err != nil {
		return notFoundOr(err)
	}
	return s.staffing.UpdateProfessional(ctx, professional)
}

func (s *StaffingService) DeleteProfessional(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.staffing.DeleteProfessional(ctx, id)
}

// CreateAllocation checks the professional and position exist and lets the
// store mark the position filled.
func (s *StaffingService) CreateAllocation(ctx context.Context, principal model.Principal, allocation *model.Allocation) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if allocation.AllocationPercentage < 1 || allocation.AllocationPercentage > 100 {
		return fmt.Errorf("%w: allocation percentage must be between 1 and 100", ErrInvalidInput)
	}
	if allocation.EndDate != nil && allocation.EndDate.Before(allocation.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if _, err := s.staffing.GetProfessional(ctx, allocation.ProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: professional does not exist", ErrInvalidInput)
		}
		return err
	}
	if _, err := s.staffing.GetPosition(ctx, allocation.PositionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: position does not exist", ErrInvalidInput)
		}
		return err
	}
	stampNew(&allocation.ID, &allocation.CreatedAt)
	return s.staffing.CreateAllocation(ctx, allocation)
}

func (s *StaffingService) UpdateAllocation(ctx context.Context, principal model.Principal, allocation *model.Allocation) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if allocation.EndDate != nil && allocation.EndDate.Before(allocation.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if _, err := s.staffing.GetAllocation(ctx, allocation.ID); err != nil {
		return notFoundOr(err)
	}
	return s.staffing.UpdateAllocation(ctx, allocation)
}

// DeleteAllocation removes the allocation; the store reopens the position
// when nothing else references it.
func (s *StaffingService) DeleteAllocation(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := s.staffing.DeleteAllocation(ctx, id); err != nil {
		return notFoundOr(err)
	}
	return nil
}

func (s *StaffingService) CreateFactoryProject(ctx context.Context, principal model.Principal, project *model.FactoryProject) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validateFactoryProject(project); err != nil {
		return err
	}
	if project.ClientID != nil {
		if _, err := s.staffing.GetClient(ctx, *project.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: client does not exist", ErrInvalidInput)
			}
			return err
		}
	}
	stampNew(&project.ID, &project.CreatedAt)
	return s.factory.CreateProject(ctx, project)
}

func (s *StaffingService) UpdateFactoryProject(ctx context.Context, principal model.Principal, project *model.FactoryProject) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if err := validateFactoryProject(project); err != nil {
		return err
	}
	if _, err := s.factory.GetProject(ctx, project.ID); err != nil {
		return notFoundOr(err)
	}
	return s.factory.UpdateProject(ctx, project)
}

// DeleteFactoryProject cascades to the project's allocations.
func (s *StaffingService) DeleteFactoryProject(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.factory.DeleteProject(ctx, id)
}

func validateFactoryProject(project *model.FactoryProject) error {
	if project.Name == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	switch project.Status {
	case model.FactoryProjectPlanned, model.FactoryProjectInProgress, model.FactoryProjectFinished, model.FactoryProjectPaused:
	default:
		return fmt.Errorf("%w: invalid project status", ErrInvalidInput)
	}
	if project.EndDate.Before(project.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if project.ProgressPercentage < 0 || project.ProgressPercentage > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

func (s *StaffingService) CreateFactoryAllocation(ctx context.Context, principal model.Principal, allocation *model.FactoryAllocation) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if allocation.EndDate.Before(allocation.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if _, err := s.factory.GetProject(ctx, allocation.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: project does not exist", ErrInvalidInput)
		}
		return err
	}
	if _, err := s.staffing.GetProfessional(ctx, allocation.ProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: professional does not exist", ErrInvalidInput)
		}
		return err
	}
	stampNew(&allocation.ID, &allocation.CreatedAt)
	return s.factory.CreateAllocation(ctx, allocation)
}

func (s *StaffingService) UpdateFactoryAllocation(ctx context.Context, principal model.Principal, allocation *model.FactoryAllocation) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if allocation.EndDate.Before(allocation.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if _, err := s.factory.GetAllocation(ctx, allocation.ID); err != nil {
		return notFoundOr(err)
	}
	return s.factory.UpdateAllocation(ctx, allocation)
}

func (s *StaffingService) DeleteFactoryAllocation(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.factory.DeleteAllocation(ctx, id)
}

func (s *StaffingService) CreateStack(ctx context.Context, principal model.Principal, stack *model.Stack) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if stack.Name == "" {
		return fmt.Errorf("%w: stack name is required", ErrInvalidInput)
	}
	stampNew(&stack.ID, &stack.CreatedAt)
	return s.taxonomy.CreateStack(ctx, stack)
}

func (s *StaffingService) UpdateStack(ctx context.Context, principal model.Principal, stack *model.Stack) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if _, err := s.taxonomy.GetStack(ctx, stack.ID); err != nil {
		return notFoundOr(err)
	}
	return s.taxonomy.UpdateStack(ctx, stack)
}

func (s *StaffingService) DeleteStack(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.DeleteStack(ctx, id)
}

func (s *StaffingService) CreateStackCategory(ctx context.Context, principal model.Principal, category *model.StackCategory) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	stampNew(&category.ID, &category.CreatedAt)
	return s.taxonomy.CreateStackCategory(ctx, category)
}

func (s *StaffingService) UpdateStackCategory(ctx context.Context, principal model.Principal, category *model.StackCategory) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.UpdateStackCategory(ctx, category)
}

func (s *StaffingService) DeleteStackCategory(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.DeleteStackCategory(ctx, id)
}

func (s *StaffingService) CreateSeniority(ctx context.Context, principal model.Principal, seniority *model.Seniority) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if seniority.Name == "" {
		return fmt.Errorf("%w: seniority name is required", ErrInvalidInput)
	}
	stampNew(&seniority.ID, &seniority.CreatedAt)
	return s.taxonomy.CreateSeniority(ctx, seniority)
}

func (s *StaffingService) UpdateSeniority(ctx context.Context, principal model.Principal, seniority *model.Seniority) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.UpdateSeniority(ctx, seniority)
}

func (s *StaffingService) DeleteSeniority(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.DeleteSeniority(ctx, id)
}

func (s *StaffingService) CreateGeneralSeniority(ctx context.Context, principal model.Principal, seniority *model.GeneralSeniority) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	if seniority.Name == "" {
		return fmt.Errorf("%w: seniority name is required", ErrInvalidInput)
	}
	stampNew(&seniority.ID, &seniority.CreatedAt)
	return s.taxonomy.CreateGeneralSeniority(ctx, seniority)
}

func (s *StaffingService) UpdateGeneralSeniority(ctx context.Context, principal model.Principal, seniority *model.GeneralSeniority) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.UpdateGeneralSeniority(ctx, seniority)
}

func (s *StaffingService) DeleteGeneralSeniority(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if err := requireManage(principal); err != nil {
		return err
	}
	return s.taxonomy.DeleteGeneralSeniority(ctx, id)
}
