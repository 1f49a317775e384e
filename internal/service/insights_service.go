package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nurpe/staffdesk/internal/analytics"
	"github.com/nurpe/staffdesk/internal/model"
)

// SnapshotSource supplies a consistent read of the base collections.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (model.Snapshot, error)
}

// ExpirationReportGenerator renders the expiring-contracts workbook.
type ExpirationReportGenerator interface {
	Generate(groups []model.ExpiringContractsGroup, at time.Time) ([]byte, error)
}

// OccupancyReportGenerator renders the occupancy-forecast document.
type OccupancyReportGenerator interface {
	Generate(general []model.OccupancyForecast, factory []model.FactoryIdleForecast, at time.Time) ([]byte, error)
}

// InsightsService turns snapshots into the derived dashboard views and
// downloadable reports. Every method takes the reference date explicitly;
// results are recomputed on each call, never cached.
type InsightsService struct {
	snapshots SnapshotSource
	excel     ExpirationReportGenerator
	pdf       OccupancyReportGenerator
}

func NewInsightsService(snapshots SnapshotSource, excel ExpirationReportGenerator, pdf OccupancyReportGenerator) *InsightsService {
	return &InsightsService{snapshots: snapshots, excel: excel, pdf: pdf}
}

func (s *InsightsService) Snapshot(ctx context.Context) (model.Snapshot, error) {
	return s.snapshots.LoadSnapshot(ctx)
}

func (s *InsightsService) Dashboard(ctx context.Context, at time.Time) (model.DashboardMetrics, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return model.DashboardMetrics{}, err
	}
	return analytics.Dashboard(snapshot, at), nil
}

func (s *InsightsService) ContractsWithDetails(ctx context.Context, at time.Time) ([]model.ContractWithDetails, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.EnrichContracts(snapshot, at), nil
}

func (s *InsightsService) ExpiringContracts(ctx context.Context, at time.Time) ([]model.ExpiringContractsGroup, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ExpiringGroups(snapshot, at), nil
}

func (s *InsightsService) OccupancyForecasts(ctx context.Context, at time.Time) ([]model.OccupancyForecast, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.OccupancyForecasts(snapshot, at), nil
}

func (s *InsightsService) ClientSummaries(ctx context.Context, at time.Time) ([]model.ClientSummary, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ClientSummaries(snapshot, at), nil
}

func (s *InsightsService) TeamViews(ctx context.Context, at time.Time) ([]model.TeamView, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TeamViews(snapshot, at), nil
}

func (s *InsightsService) StackDistributions(ctx context.Context) ([]model.StackDistribution, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.StackDistributions(snapshot), nil
}

func (s *InsightsService) LeaderMetrics(ctx context.Context) ([]model.LeaderMetrics, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.LeaderMetricsAll(snapshot), nil
}

func (s *InsightsService) Timeline(ctx context.Context, at time.Time, months int) ([]model.ProfessionalTimeline, error) {
	if months < 1 || months > 24 {
		return nil, fmt.Errorf("%w: months must be between 1 and 24", ErrInvalidInput)
	}
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ProfessionalTimelines(snapshot, at, months), nil
}

func (s *InsightsService) FactoryDashboard(ctx context.Context, at time.Time) (model.FactoryDashboardMetrics, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return model.FactoryDashboardMetrics{}, err
	}
	return analytics.FactoryMetrics(snapshot, at), nil
}

func (s *InsightsService) FactoryProjects(ctx context.Context, at time.Time) ([]model.FactoryProjectWithDetails, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FactoryProjectsWithDetails(snapshot, at), nil
}

func (s *InsightsService) FactoryIdleForecasts(ctx context.Context, at time.Time) ([]model.FactoryIdleForecast, error) {
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FactoryIdleForecasts(snapshot, at), nil
}

func (s *InsightsService) FactoryGantt(ctx context.Context, at time.Time, months int) ([]model.FactoryGanttEntry, error) {
	if months < 1 || months > 24 {
		return nil, fmt.Errorf("%w: months must be between 1 and 24", ErrInvalidInput)
	}
	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FactoryGantt(snapshot, at, months), nil
}

type GenerateReportInput struct {
	At        time.Time
	Principal model.Principal
}

type GenerateReportResult struct {
	FileName string
	Content  []byte
}

// GenerateExpirationReport builds the expiring-contracts workbook for the
// 30/60/90-day cohorts as of the given date.
func (s *InsightsService) GenerateExpirationReport(ctx context.Context, input GenerateReportInput) (*GenerateReportResult, error) {
	if !input.Principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if input.At.IsZero() {
		return nil, fmt.Errorf("%w: reference date is required", ErrInvalidInput)
	}

	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	groups := analytics.ExpiringGroups(snapshot, input.At)

	content, err := s.excel.Generate(groups, input.At)
	if err != nil {
		return nil, err
	}
	return &GenerateReportResult{
		FileName: fmt.Sprintf("expiring-contracts-%s.xlsx", input.At.Format("20060102")),
		Content:  content,
	}, nil
}

// GenerateOccupancyReport builds the occupancy-forecast document covering
// both the staffing and factory pools.
func (s *InsightsService) GenerateOccupancyReport(ctx context.Context, input GenerateReportInput) (*GenerateReportResult, error) {
	if !input.Principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if input.At.IsZero() {
		return nil, fmt.Errorf("%w: reference date is required", ErrInvalidInput)
	}

	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	general := analytics.OccupancyForecasts(snapshot, input.At)
	factory := analytics.FactoryIdleForecasts(snapshot, input.At)

	content, err := s.pdf.Generate(general, factory, input.At)
	if err != nil {
		return nil, err
	}
	return &GenerateReportResult{
		FileName: fmt.Sprintf("occupancy-forecast-%s.pdf", input.At.Format("20060102")),
		Content:  content,
	}, nil
}
