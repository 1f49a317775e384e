package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/nurpe/staffdesk/internal/model"
	"github.com/nurpe/staffdesk/internal/service"
)

type MockStaffingStore struct {
	mock.Mock
}

func (m *MockStaffingStore) GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockStaffingStore) CreateClient(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockStaffingStore) UpdateClient(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockStaffingStore) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffingStore) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockStaffingStore) CreateContract(ctx context.Context, contract *model.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *MockStaffingStore) UpdateContract(ctx context.Context, contract *model.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *MockStaffingStore) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffingStore) GetPosition(ctx context.Context, id uuid.UUID) (*model.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Position), args.Error(1)
}

func (m *MockStaffingStore) CreatePosition(ctx context.Context, position *model.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *MockStaffingStore) UpdatePosition(ctx context.Context, position *model.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *MockStaffingStore) DeletePosition(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffingStore) GetProfessional(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Professional), args.Error(1)
}

func (m *MockStaffingStore) CreateProfessional(ctx context.Context, professional *model.Professional) error {
	return m.Called(ctx, professional).Error(0)
}

func (m *MockStaffingStore) UpdateProfessional(ctx context.Context, professional *model.Professional) error {
	return m.Called(ctx, professional).Error(0)
}

func (m *MockStaffingStore) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffingStore) GetAllocation(ctx context.Context, id uuid.UUID) (*model.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Allocation), args.Error(1)
}

func (m *MockStaffingStore) CreateAllocation(ctx context.Context, allocation *model.Allocation) error {
	return m.Called(ctx, allocation).Error(0)
}

func (m *MockStaffingStore) UpdateAllocation(ctx context.Context, allocation *model.Allocation) error {
	return m.Called(ctx, allocation).Error(0)
}

func (m *MockStaffingStore) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockFactoryStore struct {
	mock.Mock
}

func (m *MockFactoryStore) GetProject(ctx context.Context, id uuid.UUID) (*model.FactoryProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FactoryProject), args.Error(1)
}

func (m *MockFactoryStore) CreateProject(ctx context.Context, project *model.FactoryProject) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockFactoryStore) UpdateProject(ctx context.Context, project *model.FactoryProject) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockFactoryStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFactoryStore) GetAllocation(ctx context.Context, id uuid.UUID) (*model.FactoryAllocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FactoryAllocation), args.Error(1)
}

func (m *MockFactoryStore) CreateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error {
	return m.Called(ctx, allocation).Error(0)
}

func (m *MockFactoryStore) UpdateAllocation(ctx context.Context, allocation *model.FactoryAllocation) error {
	return m.Called(ctx, allocation).Error(0)
}

func (m *MockFactoryStore) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTaxonomyStore struct {
	mock.Mock
}

func (m *MockTaxonomyStore) GetStack(ctx context.Context, id uuid.UUID) (*model.Stack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stack), args.Error(1)
}

func (m *MockTaxonomyStore) CreateStack(ctx context.Context, stack *model.Stack) error {
	return m.Called(ctx, stack).Error(0)
}

func (m *MockTaxonomyStore) UpdateStack(ctx context.Context, stack *model.Stack) error {
	return m.Called(ctx, stack).Error(0)
}

func (m *MockTaxonomyStore) DeleteStack(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyStore) CreateStackCategory(ctx context.Context, category *model.StackCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyStore) UpdateStackCategory(ctx context.Context, category *model.StackCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTaxonomyStore) DeleteStackCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyStore) CreateSeniority(ctx context.Context, seniority *model.Seniority) error {
	return m.Called(ctx, seniority).Error(0)
}

func (m *MockTaxonomyStore) UpdateSeniority(ctx context.Context, seniority *model.Seniority) error {
	return m.Called(ctx, seniority).Error(0)
}

func (m *MockTaxonomyStore) DeleteSeniority(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyStore) CreateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error {
	return m.Called(ctx, seniority).Error(0)
}

func (m *MockTaxonomyStore) UpdateGeneralSeniority(ctx context.Context, seniority *model.GeneralSeniority) error {
	return m.Called(ctx, seniority).Error(0)
}

func (m *MockTaxonomyStore) DeleteGeneralSeniority(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type StaffingServiceTestSuite struct {
	suite.Suite
	staffing *MockStaffingStore
	factory  *MockFactoryStore
	taxonomy *MockTaxonomyStore
	service  *service.StaffingService
	admin    model.Principal
	viewer   model.Principal
}

func (s *StaffingServiceTestSuite) SetupTest() {
	s.staffing = new(MockStaffingStore)
	s.factory = new(MockFactoryStore)
	s.taxonomy = new(MockTaxonomyStore)
	s.service = service.NewStaffingService(s.staffing, s.factory, s.taxonomy)
	s.admin = model.Principal{UserID: uuid.New(), Role: model.RoleAdmin}
	s.viewer = model.Principal{UserID: uuid.New(), Role: model.RoleViewer}
}

func (s *StaffingServiceTestSuite) TestCreateClient() {
	ctx := context.Background()
	client := &model.Client{Name: "Acme"}
	s.staffing.On("CreateClient", ctx, client).Return(nil).Once()

	err := s.service.CreateClient(ctx, s.admin, client)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, client.ID)
	s.False(client.CreatedAt.IsZero())
	s.staffing.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreateClient_ViewerDenied() {
	err := s.service.CreateClient(context.Background(), s.viewer, &model.Client{Name: "Acme"})

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrPermissionDenied)
	s.staffing.AssertNotCalled(s.T(), "CreateClient", mock.Anything, mock.Anything)
}

func (s *StaffingServiceTestSuite) TestCreateClient_EmptyName() {
	err := s.service.CreateClient(context.Background(), s.admin, &model.Client{})

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestCreateContract() {
	ctx := context.Background()
	clientID := uuid.New()
	contract := &model.Contract{
		ClientID:       clientID,
		ContractNumber: "CT-001",
		Type:           model.ContractTypeStaffing,
		StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		MonthlyValue:   decimal.NewFromInt(12000),
	}
	s.staffing.On("GetClient", ctx, clientID).Return(&model.Client{ID: clientID}, nil).Once()
	s.staffing.On("CreateContract", ctx, contract).Return(nil).Once()

	err := s.service.CreateContract(ctx, s.admin, contract)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, contract.ID)
	s.staffing.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreateContract_UnknownClient() {
	ctx := context.Background()
	contract := &model.Contract{
		ClientID:       uuid.New(),
		ContractNumber: "CT-001",
		Type:           model.ContractTypeStaffing,
		StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	s.staffing.On("GetClient", ctx, contract.ClientID).Return(nil, gorm.ErrRecordNotFound).Once()

	err := s.service.CreateContract(ctx, s.admin, contract)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
	s.staffing.AssertNotCalled(s.T(), "CreateContract", mock.Anything, mock.Anything)
}

func (s *StaffingServiceTestSuite) TestCreateContract_EndBeforeStart() {
	contract := &model.Contract{
		ClientID:       uuid.New(),
		ContractNumber: "CT-001",
		Type:           model.ContractTypeFactory,
		StartDate:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	err := s.service.CreateContract(context.Background(), s.admin, contract)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestCreateContract_NegativeValue() {
	contract := &model.Contract{
		ClientID:       uuid.New(),
		ContractNumber: "CT-001",
		Type:           model.ContractTypeStaffing,
		StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		MonthlyValue:   decimal.NewFromInt(-1),
	}

	err := s.service.CreateContract(context.Background(), s.admin, contract)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestUpdateContract_NotFound() {
	ctx := context.Background()
	contract := &model.Contract{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ContractNumber: "CT-001",
		Type:           model.ContractTypeStaffing,
		StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	s.staffing.On("GetContract", ctx, contract.ID).Return(nil, gorm.ErrRecordNotFound).Once()

	err := s.service.UpdateContract(ctx, s.admin, contract)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *StaffingServiceTestSuite) TestCreatePosition_DefaultsToOpen() {
	ctx := context.Background()
	contractID := uuid.New()
	position := &model.Position{
		ContractID:           contractID,
		Title:                "Backend Developer",
		StackID:              uuid.New(),
		StartDate:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		AllocationPercentage: 100,
	}
	s.staffing.On("GetContract", ctx, contractID).Return(&model.Contract{ID: contractID}, nil).Once()
	s.staffing.On("CreatePosition", ctx, position).Return(nil).Once()

	err := s.service.CreatePosition(ctx, s.admin, position)

	s.Require().NoError(err)
	s.Equal(model.PositionStatusOpen, position.Status)
	s.staffing.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreatePosition_BadPercentage() {
	position := &model.Position{
		ContractID:           uuid.New(),
		Title:                "Backend Developer",
		StartDate:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		AllocationPercentage: 150,
	}

	err := s.service.CreatePosition(context.Background(), s.admin, position)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestCreateProfessional_StampsExperiences() {
	ctx := context.Background()
	professional := &model.Professional{
		Name: "Ana",
		StackExperiences: []model.StackExperience{
			{StackID: uuid.New(), YearsExperience: 5},
		},
	}
	s.staffing.On("CreateProfessional", ctx, professional).Return(nil).Once()

	err := s.service.CreateProfessional(ctx, s.admin, professional)

	s.Require().NoError(err)
	s.Equal(model.ProfessionalStatusIdle, professional.Status)
	s.Equal(model.WorkModeAllocation, professional.WorkMode)
	s.Equal(professional.ID, professional.StackExperiences[0].ProfessionalID)
	s.staffing.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreateAllocation() {
	ctx := context.Background()
	professionalID := uuid.New()
	positionID := uuid.New()
	allocation := &model.Allocation{
		ProfessionalID:       professionalID,
		PositionID:           positionID,
		StartDate:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		AllocationPercentage: 100,
	}
	s.staffing.On("GetProfessional", ctx, professionalID).
		Return(&model.Professional{ID: professionalID}, nil).Once()
	s.staffing.On("GetPosition", ctx, positionID).
		Return(&model.Position{ID: positionID}, nil).Once()
	s.staffing.On("CreateAllocation", ctx, allocation).Return(nil).Once()

	err := s.service.CreateAllocation(ctx, s.admin, allocation)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, allocation.ID)
	s.staffing.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreateAllocation_UnknownPosition() {
	ctx := context.Background()
	professionalID := uuid.New()
	allocation := &model.Allocation{
		ProfessionalID:       professionalID,
		PositionID:           uuid.New(),
		StartDate:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		AllocationPercentage: 100,
	}
	s.staffing.On("GetProfessional", ctx, professionalID).
		Return(&model.Professional{ID: professionalID}, nil).Once()
	s.staffing.On("GetPosition", ctx, allocation.PositionID).
		Return(nil, gorm.ErrRecordNotFound).Once()

	err := s.service.CreateAllocation(ctx, s.admin, allocation)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
	s.staffing.AssertNotCalled(s.T(), "CreateAllocation", mock.Anything, mock.Anything)
}

func (s *StaffingServiceTestSuite) TestCreateAllocation_EndBeforeStart() {
	end := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	allocation := &model.Allocation{
		ProfessionalID:       uuid.New(),
		PositionID:           uuid.New(),
		StartDate:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              &end,
		AllocationPercentage: 100,
	}

	err := s.service.CreateAllocation(context.Background(), s.admin, allocation)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestCreateFactoryProject() {
	ctx := context.Background()
	project := &model.FactoryProject{
		Name:      "Internal Portal",
		Status:    model.FactoryProjectPlanned,
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	s.factory.On("CreateProject", ctx, project).Return(nil).Once()

	err := s.service.CreateFactoryProject(ctx, s.admin, project)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, project.ID)
	s.factory.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestCreateFactoryProject_BadStatus() {
	project := &model.FactoryProject{
		Name:      "Internal Portal",
		Status:    "cancelled",
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}

	err := s.service.CreateFactoryProject(context.Background(), s.admin, project)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
}

func (s *StaffingServiceTestSuite) TestCreateFactoryAllocation_UnknownProject() {
	ctx := context.Background()
	allocation := &model.FactoryAllocation{
		ProjectID:      uuid.New(),
		ProfessionalID: uuid.New(),
		StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	s.factory.On("GetProject", ctx, allocation.ProjectID).Return(nil, gorm.ErrRecordNotFound).Once()

	err := s.service.CreateFactoryAllocation(ctx, s.admin, allocation)

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrInvalidInput)
	s.factory.AssertNotCalled(s.T(), "CreateAllocation", mock.Anything, mock.Anything)
}

func (s *StaffingServiceTestSuite) TestCreateStack() {
	ctx := context.Background()
	stack := &model.Stack{Name: "Go", CategoryID: uuid.New()}
	s.taxonomy.On("CreateStack", ctx, stack).Return(nil).Once()

	err := s.service.CreateStack(ctx, s.admin, stack)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, stack.ID)
	s.taxonomy.AssertExpectations(s.T())
}

func (s *StaffingServiceTestSuite) TestDeleteStack_ViewerDenied() {
	err := s.service.DeleteStack(context.Background(), s.viewer, uuid.New())

	s.Require().Error(err)
	s.ErrorIs(err, service.ErrPermissionDenied)
	s.taxonomy.AssertNotCalled(s.T(), "DeleteStack", mock.Anything, mock.Anything)
}

func TestStaffingService(t *testing.T) {
	suite.Run(t, new(StaffingServiceTestSuite))
}
