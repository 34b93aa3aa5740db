package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danakotech/osintwalletonline/internal/analysis/risk"
	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/infra/blacklist"
	"github.com/danakotech/osintwalletonline/internal/infra/etherscan"
)

const (
	cleanAddr = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	scamAddr  = "0xbadbadbadbadbadbadbadbadbadbadbadbadbad0"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// chainStub serves an Etherscan-shaped API backed by a fixed
// transaction list and counts how many requests it received.
type chainStub struct {
	txs      []map[string]string
	requests atomic.Int32
}

func (s *chainStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		respond := func(status string, result any) {
			raw, _ := json.Marshal(result)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": status, "message": "OK", "result": json.RawMessage(raw),
			})
		}
		switch r.URL.Query().Get("action") {
		case "balance":
			respond("1", "3000000000000000000")
		case "txlist":
			respond("1", s.txs)
		case "txlistinternal":
			respond("1", []map[string]string{})
		case "tokentx":
			respond("0", "No transactions found")
		default:
			respond("0", "unknown action")
		}
	}
}

func newTestAnalyzer(t *testing.T, stub *chainStub, feedBody string) *Analyzer {
	t.Helper()

	chainServer := httptest.NewServer(stub.handler())
	t.Cleanup(chainServer.Close)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedBody)
	}))
	t.Cleanup(feedServer.Close)

	a := NewAnalyzer(
		etherscan.NewClient(etherscan.Config{
			BaseURL:        chainServer.URL,
			RetryAttempts:  1,
			RetryBaseDelay: time.Millisecond,
		}),
		blacklist.NewChecker(blacklist.Config{FeedURL: feedServer.URL}),
		risk.NewClassifier(risk.DefaultWeights()),
	)
	a.now = func() time.Time { return testNow }
	return a
}

func stubTx(hash string, age time.Duration) map[string]string {
	return map[string]string{
		"hash":        hash,
		"from":        cleanAddr,
		"to":          "0xcccccccccccccccccccccccccccccccccccccccc",
		"value":       "1000000000000000000",
		"timeStamp":   fmt.Sprintf("%d", testNow.Add(-age).Unix()),
		"gasUsed":     "21000",
		"gasPrice":    "1000000000",
		"blockNumber": "100",
		"isError":     "0",
	}
}

func TestAnalyze_InvalidAddressRejectedBeforeNetwork(t *testing.T) {
	stub := &chainStub{}
	a := newTestAnalyzer(t, stub, `[]`)

	for _, input := range []string{"not-an-address", "0x12345", ""} {
		if _, err := a.Analyze(context.Background(), input, nil); !errors.Is(err, domain.ErrInvalidAddress) {
			t.Errorf("input %q: expected ErrInvalidAddress, got %v", input, err)
		}
	}
	if stub.requests.Load() != 0 {
		t.Errorf("expected no network calls for invalid input, got %d", stub.requests.Load())
	}
}

func TestAnalyze_BlacklistedShortCircuits(t *testing.T) {
	stub := &chainStub{}
	a := newTestAnalyzer(t, stub, fmt.Sprintf(`[%q]`, scamAddr))

	var lastPercent int
	report, err := a.Analyze(context.Background(), scamAddr, func(step string, percent int) {
		lastPercent = percent
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verdict := report.RiskAnalysis
	if !verdict.IsBlacklisted {
		t.Error("expected IsBlacklisted")
	}
	if verdict.RiskLevel != domain.RiskExtreme {
		t.Errorf("expected EXTREME, got %s", verdict.RiskLevel)
	}
	if verdict.RiskScore != 0 || verdict.ConfidenceLevel != 100 {
		t.Errorf("expected score 0 / confidence 100, got %f / %d", verdict.RiskScore, verdict.ConfidenceLevel)
	}
	if lastPercent != 100 {
		t.Errorf("expected final progress 100, got %d", lastPercent)
	}
	// Chain data must not be fetched for a blacklisted address
	if stub.requests.Load() != 0 {
		t.Errorf("expected no chain calls, got %d", stub.requests.Load())
	}
	if len(report.Transactions) != 0 || len(report.Tokens) != 0 {
		t.Error("expected empty chain data on short-circuit")
	}
}

func TestAnalyze_FallbackBlacklistWhenFeedDown(t *testing.T) {
	stub := &chainStub{}
	chainServer := httptest.NewServer(stub.handler())
	t.Cleanup(chainServer.Close)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	feedServer.Close() // feed unreachable

	a := NewAnalyzer(
		etherscan.NewClient(etherscan.Config{BaseURL: chainServer.URL, RetryAttempts: 1, RetryBaseDelay: time.Millisecond}),
		blacklist.NewChecker(blacklist.Config{FeedURL: feedServer.URL}),
		risk.NewClassifier(risk.DefaultWeights()),
	)

	report, err := a.Analyze(context.Background(), "0x0000000000000000000000000000000000000000", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.RiskAnalysis.IsBlacklisted {
		t.Error("expected fallback list hit when feed is unreachable")
	}
	if report.RiskAnalysis.RiskLevel != domain.RiskExtreme {
		t.Errorf("expected EXTREME, got %s", report.RiskAnalysis.RiskLevel)
	}
}

func TestAnalyze_EmptyHistoryIsMediumZeroScore(t *testing.T) {
	stub := &chainStub{} // no transactions at all
	a := newTestAnalyzer(t, stub, `[]`)

	report, err := a.Analyze(context.Background(), cleanAddr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verdict := report.RiskAnalysis
	if verdict.RiskLevel != domain.RiskMedium {
		t.Errorf("expected MEDIUM for empty history, got %s", verdict.RiskLevel)
	}
	if verdict.RiskScore != 0 {
		t.Errorf("expected score 0, got %f", verdict.RiskScore)
	}
	if verdict.ConfidenceLevel != 0 {
		t.Errorf("expected confidence 0, got %d", verdict.ConfidenceLevel)
	}
	if report.Balance != "3.0000" {
		t.Errorf("expected balance 3.0000, got %s", report.Balance)
	}
}

func TestAnalyze_EstablishedWallet(t *testing.T) {
	stub := &chainStub{}
	for i := 0; i < 20; i++ {
		// Spread over ~400 days so the oldest transaction anchors a
		// comfortable age bonus; distinct amounts keep the repetition
		// rule quiet
		tx := stubTx(fmt.Sprintf("h%d", i), time.Duration(i*20)*24*time.Hour)
		tx["value"] = fmt.Sprintf("%d000000000000000000", i+1)
		stub.txs = append(stub.txs, tx)
	}
	a := newTestAnalyzer(t, stub, `[]`)

	var steps []string
	var percents []int
	report, err := a.Analyze(context.Background(), cleanAddr, func(step string, percent int) {
		steps = append(steps, step)
		percents = append(percents, percent)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verdict := report.RiskAnalysis
	// 5 + 2 (age) = 7 -> MEDIUM bucket
	if verdict.RiskScore != 7 {
		t.Errorf("expected score 7, got %f", verdict.RiskScore)
	}
	if verdict.RiskLevel != domain.RiskMedium {
		t.Errorf("expected MEDIUM, got %s", verdict.RiskLevel)
	}
	if verdict.Analytics.AgeInDays != 380 {
		t.Errorf("expected age 380, got %d", verdict.Analytics.AgeInDays)
	}

	// Progress must be monotonically non-decreasing and end at 100
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Errorf("progress regressed: %v", percents)
		}
	}
	if len(percents) == 0 || percents[len(percents)-1] != 100 {
		t.Errorf("expected final progress 100, got %v", percents)
	}
	if len(steps) != len(percents) {
		t.Errorf("step/percent mismatch")
	}
}

func TestAnalyze_YoungBusyWalletIsFlagged(t *testing.T) {
	stub := &chainStub{}
	// 60 transactions within the last few days, all retained
	for i := 0; i < 60; i++ {
		stub.txs = append(stub.txs, stubTx(fmt.Sprintf("h%d", i), time.Duration(i)*90*time.Minute))
	}
	a := newTestAnalyzer(t, stub, `[]`)

	report, err := a.Analyze(context.Background(), cleanAddr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verdict := report.RiskAnalysis
	found := false
	for _, p := range verdict.Analytics.SuspiciousPatterns {
		if p == "new wallet with unusually high activity" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected new-wallet pattern, got %v", verdict.Analytics.SuspiciousPatterns)
	}
	if verdict.RiskLevel != domain.RiskHigh && verdict.RiskLevel != domain.RiskExtreme {
		t.Errorf("expected HIGH or EXTREME, got %s", verdict.RiskLevel)
	}
	if len(report.Transactions) != 60 {
		t.Errorf("expected 60 retained transactions, got %d", len(report.Transactions))
	}
}

func TestAnalyze_MinimalActivity(t *testing.T) {
	stub := &chainStub{txs: []map[string]string{stubTx("h1", 10*24*time.Hour)}}
	a := newTestAnalyzer(t, stub, `[]`)

	report, err := a.Analyze(context.Background(), cleanAddr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verdict := report.RiskAnalysis
	if verdict.RiskLevel != domain.RiskHigh {
		t.Errorf("expected HIGH for minimal activity, got %s", verdict.RiskLevel)
	}
	if verdict.RiskFactors[0] != "very new wallet with minimal activity" {
		t.Errorf("unexpected headline factor: %q", verdict.RiskFactors[0])
	}
}
