// Package memory keeps analysis history in process memory. The serve
// command falls back to it when no database path is configured, so the
// history endpoint still works for the lifetime of the process.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/infra/storage"
)

type ReportStore struct {
	mu      sync.RWMutex
	records []storage.ReportRecord
	now     func() time.Time
}

func NewReportStore() *ReportStore {
	return &ReportStore{now: time.Now}
}

func (s *ReportStore) Save(ctx context.Context, report *domain.WalletReport) (string, error) {
	blob, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	rec := storage.ReportRecord{
		ID:              uuid.NewString(),
		Address:         domain.NormalizeAddress(report.Address),
		RiskLevel:       string(report.RiskAnalysis.RiskLevel),
		RiskScore:       report.RiskAnalysis.RiskScore,
		ConfidenceLevel: report.RiskAnalysis.ConfidenceLevel,
		IsBlacklisted:   report.RiskAnalysis.IsBlacklisted,
		ReportJSON:      string(blob),
		AnalyzedAt:      report.AnalyzedAt,
	}
	if rec.AnalyzedAt.IsZero() {
		rec.AnalyzedAt = s.now()
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	return rec.ID, nil
}

func (s *ReportStore) Recent(ctx context.Context, limit int) ([]storage.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest run per address only, matching the database query.
	latest := make(map[string]storage.ReportRecord)
	for _, rec := range s.records {
		if cur, ok := latest[rec.Address]; !ok || rec.AnalyzedAt.After(cur.AnalyzedAt) {
			latest[rec.Address] = rec
		}
	}

	out := make([]storage.ReportRecord, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnalyzedAt.After(out[j].AnalyzedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ReportStore) ByAddress(ctx context.Context, address string, limit int) ([]storage.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	address = domain.NormalizeAddress(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []storage.ReportRecord
	for _, rec := range s.records {
		if rec.Address == address {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnalyzedAt.After(out[j].AnalyzedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
