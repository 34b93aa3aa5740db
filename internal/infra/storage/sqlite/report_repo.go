package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/infra/storage"
)

// ReportRepo persists completed wallet reports for the history views.
type ReportRepo struct {
	db *DB
}

// NewReportRepo creates a report repository.
func NewReportRepo(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Save stores a completed report and returns its assigned id.
func (r *ReportRepo) Save(ctx context.Context, report *domain.WalletReport) (string, error) {
	blob, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (id, address, risk_level, risk_score, confidence_level, is_blacklisted, report_json, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		domain.NormalizeAddress(report.Address),
		string(report.RiskAnalysis.RiskLevel),
		report.RiskAnalysis.RiskScore,
		report.RiskAnalysis.ConfidenceLevel,
		report.RiskAnalysis.IsBlacklisted,
		string(blob),
		report.AnalyzedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// Recent returns the newest analysis per address, most recent first.
func (r *ReportRepo) Recent(ctx context.Context, limit int) ([]storage.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []storage.ReportRecord
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, address, risk_level, risk_score, confidence_level, is_blacklisted, report_json, analyzed_at
		FROM reports
		WHERE id IN (
			SELECT id FROM reports r2
			WHERE r2.address = reports.address
			ORDER BY r2.analyzed_at DESC LIMIT 1
		)
		ORDER BY analyzed_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return rows, nil
}

// ByAddress returns every stored run for one address, newest first.
func (r *ReportRepo) ByAddress(ctx context.Context, address string, limit int) ([]storage.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []storage.ReportRecord
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, address, risk_level, risk_score, confidence_level, is_blacklisted, report_json, analyzed_at
		FROM reports
		WHERE address = ?
		ORDER BY analyzed_at DESC
		LIMIT ?`, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for address: %w", err)
	}
	return rows, nil
}
