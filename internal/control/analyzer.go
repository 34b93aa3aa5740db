// Package control orchestrates the wallet risk-analysis pipeline:
// blacklist check, chain data fetch, contract aggregation, analytics
// and risk classification.
package control

import (
	"context"
	"log/slog"
	"time"

	"github.com/danakotech/osintwalletonline/internal/analysis"
	"github.com/danakotech/osintwalletonline/internal/analysis/risk"
	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/infra/blacklist"
	"github.com/danakotech/osintwalletonline/internal/infra/etherscan"
	"github.com/danakotech/osintwalletonline/internal/metrics"
)

// ProgressFunc receives stage transitions as the pipeline advances.
// Percentages are monotonically non-decreasing and the final call
// always reports 100. The callback is fire-and-forget: it must not
// block, and nothing it does can affect the pipeline's outcome.
type ProgressFunc func(step string, percent int)

// Analyzer runs the full analysis pipeline for one address at a time.
// Instances are safe for concurrent use; each invocation builds its
// result from scratch and shares no mutable state with any other.
type Analyzer struct {
	chain      *etherscan.Client
	blacklist  *blacklist.Checker
	classifier *risk.Classifier
	now        func() time.Time
}

// NewAnalyzer wires the pipeline's collaborators together.
func NewAnalyzer(chain *etherscan.Client, bl *blacklist.Checker, classifier *risk.Classifier) *Analyzer {
	return &Analyzer{
		chain:      chain,
		blacklist:  bl,
		classifier: classifier,
		now:        time.Now,
	}
}

// Analyze runs the pipeline for one address. The only error it can
// return is domain.ErrInvalidAddress, raised before any network call;
// every upstream failure degrades to an empty or zero default inside
// the stage that hit it, so the caller always receives a complete,
// internally consistent report.
func (a *Analyzer) Analyze(ctx context.Context, address string, onProgress ProgressFunc) (*domain.WalletReport, error) {
	if err := domain.ValidateAddress(address); err != nil {
		return nil, err
	}
	if onProgress == nil {
		onProgress = func(string, int) {}
	}

	start := a.now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	// Blacklist first: a hit short-circuits everything else.
	onProgress("checking scam blacklist", 5)
	if a.blacklist.IsBlacklisted(ctx, address) {
		slog.Warn("address found on blacklist", "address", address)
		onProgress("dangerous address detected", 100)
		report := &domain.WalletReport{
			Address:      address,
			Balance:      "0.0000",
			Tokens:       []domain.TokenHolding{},
			Transactions: []domain.Transaction{},
			Contracts:    []domain.ContractInteraction{},
			RiskAnalysis: a.classifier.BlacklistedVerdict(),
			AnalyzedAt:   a.now(),
		}
		metrics.AnalysesTotal.WithLabelValues(string(domain.RiskExtreme)).Inc()
		return report, nil
	}

	onProgress("fetching ETH balance", 15)
	balance := a.chain.Balance(ctx, address)

	onProgress("fetching transaction history", 30)
	transactions := a.chain.Transactions(ctx, address)

	onProgress("analyzing tokens", 50)
	tokens := a.chain.TokenHoldings(ctx, address)

	onProgress("analyzing contracts", 65)
	contracts := analysis.AggregateContracts(transactions)

	onProgress("running advanced analytics", 80)
	analytics := analysis.Compute(transactions, contracts, a.now())
	analytics.RiskScore = a.classifier.Score(analytics, len(transactions))
	analytics.ConfidenceLevel = a.classifier.Confidence(len(transactions), analytics.AgeInDays)

	onProgress("calculating risk score", 95)
	verdict := a.classifier.Classify(analytics, len(transactions), false)

	onProgress("analysis complete", 100)

	slog.Info("analysis complete",
		"address", address,
		"risk_level", verdict.RiskLevel,
		"risk_score", verdict.RiskScore,
		"transactions", len(transactions),
		"tokens", len(tokens),
	)
	metrics.AnalysesTotal.WithLabelValues(string(verdict.RiskLevel)).Inc()

	if tokens == nil {
		tokens = []domain.TokenHolding{}
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	return &domain.WalletReport{
		Address:      address,
		Balance:      balance,
		Tokens:       tokens,
		Transactions: transactions,
		Contracts:    contracts,
		RiskAnalysis: verdict,
		AnalyzedAt:   a.now(),
	}, nil
}
