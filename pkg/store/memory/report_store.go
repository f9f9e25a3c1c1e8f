package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ReportStore is an in-memory implementation of store.ReportStore.
type ReportStore struct {
	mu   sync.RWMutex
	data map[string]*models.EvaluationReport // keyed by report id
}

// NewReportStore creates a new in-memory evaluation report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		data: make(map[string]*models.EvaluationReport),
	}
}

// Create adds a new report. Returns ErrAlreadyExists if its id exists.
func (s *ReportStore) Create(_ context.Context, report *models.EvaluationReport) error {
	if report == nil || report.ID == "" || report.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[report.ID]; exists {
		return store.ErrAlreadyExists
	}
	s.data[report.ID] = cloneReport(report)
	return nil
}

// Latest retrieves the most recent report of an arena. Returns ErrNotFound
// when the arena has none.
func (s *ReportStore) Latest(_ context.Context, arenaID string) (*models.EvaluationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.EvaluationReport
	for _, r := range s.data {
		if r.ArenaID != arenaID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) ||
			(r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	return cloneReport(latest), nil
}

// ListByArena retrieves all reports of an arena, newest first.
func (s *ReportStore) ListByArena(_ context.Context, arenaID string) ([]*models.EvaluationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.EvaluationReport
	for _, r := range s.data {
		if r.ArenaID == arenaID {
			result = append(result, cloneReport(r))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func cloneReport(r *models.EvaluationReport) *models.EvaluationReport {
	c := *r
	c.Rankings = slices.Clone(r.Rankings)
	return &c
}

// Verify interface compliance at compile time.
var _ store.ReportStore = (*ReportStore)(nil)
