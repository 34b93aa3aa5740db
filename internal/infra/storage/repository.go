package storage

import (
	"context"
	"time"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

// ReportRecord is the stored summary of one analysis run.
type ReportRecord struct {
	ID              string    `db:"id" json:"id"`
	Address         string    `db:"address" json:"address"`
	RiskLevel       string    `db:"risk_level" json:"risk_level"`
	RiskScore       float64   `db:"risk_score" json:"risk_score"`
	ConfidenceLevel int       `db:"confidence_level" json:"confidence_level"`
	IsBlacklisted   bool      `db:"is_blacklisted" json:"is_blacklisted"`
	ReportJSON      string    `db:"report_json" json:"-"`
	AnalyzedAt      time.Time `db:"analyzed_at" json:"analyzed_at"`
}

// ReportStore persists completed wallet reports for the history views.
type ReportStore interface {
	// Save stores a completed report and returns its assigned id.
	Save(ctx context.Context, report *domain.WalletReport) (string, error)

	// Recent returns the newest analysis per address, most recent first.
	Recent(ctx context.Context, limit int) ([]ReportRecord, error)

	// ByAddress returns every stored run for one address, newest first.
	ByAddress(ctx context.Context, address string, limit int) ([]ReportRecord, error)
}
