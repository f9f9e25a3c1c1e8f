package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ReportStore is an Ent-backed implementation of store.ReportStore.
type ReportStore struct {
	client *ent.Client
}

// NewReportStore creates a new evaluation report store on the given client.
func NewReportStore(client *ent.Client) *ReportStore {
	return &ReportStore{client: client}
}

// Create adds a new report. Returns ErrAlreadyExists if its id exists.
func (s *ReportStore) Create(_ context.Context, report *models.EvaluationReport) error {
	if report == nil || report.ID == "" || report.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.EvaluationReport.Create().
		SetID(report.ID).
		SetArenaID(report.ArenaID).
		SetPeriod(evaluationreport.Period(report.Period)).
		SetEvaluated(report.Evaluated).
		SetEliminated(report.Eliminated).
		SetMinFloorApplied(report.MinFloorApplied).
		SetRankings(report.Rankings).
		SetCreatedAt(report.CreatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// Latest retrieves the most recent report of an arena. Returns ErrNotFound
// when the arena has none.
func (s *ReportStore) Latest(ctx context.Context, arenaID string) (*models.EvaluationReport, error) {
	row, err := s.client.EvaluationReport.Query().
		Where(evaluationreport.ArenaIDEQ(arenaID)).
		Order(
			ent.Desc(evaluationreport.FieldCreatedAt),
			ent.Desc(evaluationreport.FieldID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest report: %w", err)
	}
	return reportFromRow(row), nil
}

// ListByArena retrieves all reports of an arena, newest first.
func (s *ReportStore) ListByArena(ctx context.Context, arenaID string) ([]*models.EvaluationReport, error) {
	rows, err := s.client.EvaluationReport.Query().
		Where(evaluationreport.ArenaIDEQ(arenaID)).
		Order(
			ent.Desc(evaluationreport.FieldCreatedAt),
			ent.Desc(evaluationreport.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	result := make([]*models.EvaluationReport, 0, len(rows))
	for _, row := range rows {
		result = append(result, reportFromRow(row))
	}
	return result, nil
}

func reportFromRow(row *ent.EvaluationReport) *models.EvaluationReport {
	return &models.EvaluationReport{
		ID:              row.ID,
		ArenaID:         row.ArenaID,
		Period:          models.EvaluationPeriod(row.Period),
		Evaluated:       row.Evaluated,
		Eliminated:      row.Eliminated,
		MinFloorApplied: row.MinFloorApplied,
		Rankings:        row.Rankings,
		CreatedAt:       row.CreatedAt,
	}
}

// Verify interface compliance at compile time.
var _ store.ReportStore = (*ReportStore)(nil)
