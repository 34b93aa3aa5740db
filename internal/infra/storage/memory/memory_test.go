package memory

import (
	"context"
	"testing"
	"time"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

func report(address string, score float64, at time.Time) *domain.WalletReport {
	return &domain.WalletReport{
		Address:    address,
		AnalyzedAt: at,
		RiskAnalysis: domain.RiskVerdict{
			RiskScore: score,
			RiskLevel: domain.RiskMedium,
		},
	}
}

func TestReportStore_RecentKeepsNewestPerAddress(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	addrA := "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	addrB := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	for i, r := range []*domain.WalletReport{
		report(addrA, 4.0, base),
		report(addrB, 6.0, base.Add(time.Hour)),
		report(addrA, 7.5, base.Add(2*time.Hour)),
	} {
		if _, err := store.Save(ctx, r); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	rows, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Newest first; addresses are stored lowercase.
	if rows[0].Address != "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("unexpected first row address: %s", rows[0].Address)
	}
	if rows[0].RiskScore != 7.5 {
		t.Errorf("expected the later run for addrA, got score %f", rows[0].RiskScore)
	}
	if rows[1].Address != addrB {
		t.Errorf("unexpected second row address: %s", rows[1].Address)
	}
}

func TestReportStore_ByAddress(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	addr := "0xcccccccccccccccccccccccccccccccccccccccc"
	for i := 0; i < 5; i++ {
		if _, err := store.Save(ctx, report(addr, float64(i), base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if _, err := store.Save(ctx, report("0xdddddddddddddddddddddddddddddddddddddddd", 1.0, base)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rows, err := store.ByAddress(ctx, addr, 3)
	if err != nil {
		t.Fatalf("ByAddress failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected limit of 3 rows, got %d", len(rows))
	}
	if rows[0].RiskScore != 4.0 {
		t.Errorf("expected newest run first, got score %f", rows[0].RiskScore)
	}
	for _, row := range rows {
		if row.Address != addr {
			t.Errorf("row for wrong address: %s", row.Address)
		}
		if row.ID == "" {
			t.Error("expected an assigned id")
		}
	}
}
