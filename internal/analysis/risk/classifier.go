package risk

import (
	"fmt"
	"strings"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

// Blacklist verdict text. Fixed regardless of any on-chain data.
var blacklistFactors = []string{
	"address found on public scam blacklist",
	"reported as fraudulent",
	"extreme risk, do not interact",
	"verified against community scam database",
}

const blacklistRecommendation = "EXTREME DANGER: this address is confirmed on the public scam " +
	"blacklist. Never send funds to or interact with it."

const blacklistPattern = "address present on public scam blacklist"

// Classifier computes scores, confidence and the final verdict.
type Classifier struct {
	weights Weights
}

// NewClassifier creates a classifier with the given calibration.
func NewClassifier(weights Weights) *Classifier {
	weights.ApplyDefaults()
	return &Classifier{weights: weights}
}

// BlacklistedVerdict is the absorbing result for a blacklist hit: the
// pipeline short-circuits, so the attached analytics are a zeroed
// snapshot carrying only the blacklist marker.
func (c *Classifier) BlacklistedVerdict() domain.RiskVerdict {
	return domain.RiskVerdict{
		IsBlacklisted:   true,
		RiskLevel:       domain.RiskExtreme,
		RiskScore:       0,
		ConfidenceLevel: 100,
		RiskFactors:     append([]string(nil), blacklistFactors...),
		Recommendation:  blacklistRecommendation,
		Analytics: domain.Analytics{
			SuspiciousPatterns: []string{blacklistPattern},
			ConfidenceLevel:    100,
		},
	}
}

// Score computes the numeric risk score in [0, 10]. Higher is safer.
func (c *Classifier) Score(a domain.Analytics, txCount int) float64 {
	w := c.weights
	score := w.BaseScore

	switch {
	case a.AgeInDays > 365:
		score += w.AgeOverYearBonus
	case a.AgeInDays > 180:
		score += w.AgeOverHalfYearBonus
	case a.AgeInDays > 90:
		score += w.AgeOverQuarterBonus
	case a.AgeInDays < 7:
		score -= w.AgeUnderWeekPenalty
	case a.AgeInDays < 30:
		score -= w.AgeUnderMonthPenalty
	}

	switch {
	case txCount == 0:
		// No history means nothing to evaluate; overrides the age bonus.
		score = 0
	case txCount > 100:
		score += w.HighTxCountBonus
	case txCount < 5:
		score -= w.LowTxCountPenalty
	}

	score += float64(len(a.ExchangeInteractions)) * w.ExchangeBonus
	score -= float64(len(a.SuspiciousPatterns)) * w.PatternPenalty

	return clamp(score, 0, 10)
}

// Confidence measures how much history supports the score, not the
// score's correctness. Clamped to [0, 100].
func (c *Classifier) Confidence(txCount, ageInDays int) int {
	if txCount == 0 {
		return 0
	}

	confidence := 0
	switch {
	case txCount >= 50:
		confidence += 40
	case txCount >= 20:
		confidence += 30
	case txCount >= 10:
		confidence += 20
	default:
		confidence += 10
	}

	switch {
	case ageInDays >= 365:
		confidence += 40
	case ageInDays >= 180:
		confidence += 30
	case ageInDays >= 90:
		confidence += 20
	case ageInDays >= 30:
		confidence += 10
	}

	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

// Classify builds the final verdict from the analytics snapshot. The
// analytics RiskScore and ConfidenceLevel fields must already be
// filled in (see Score and Confidence).
func (c *Classifier) Classify(a domain.Analytics, txCount int, blacklisted bool) domain.RiskVerdict {
	if blacklisted {
		return c.BlacklistedVerdict()
	}

	w := c.weights
	var (
		level          domain.RiskLevel
		factors        []string
		recommendation string
	)

	switch {
	case txCount == 0:
		level = domain.RiskMedium
		factors = append(factors, "new wallet with no transaction history")
		recommendation = "CAUTION: wallet has no history; its safety cannot be evaluated without prior activity."
	case txCount <= w.MinimalActivityMaxTxs && a.AgeInDays < w.MinimalActivityMaxAgeDays:
		level = domain.RiskHigh
		factors = append(factors, "very new wallet with minimal activity")
		recommendation = "OPERATE WITH EXTREME CARE: new wallet with minimal activity. Verify carefully before interacting."
	case a.RiskScore >= w.LowRiskMinScore:
		level = domain.RiskLow
		factors = append(factors, "wallet with a solid history and normal patterns")
		recommendation = "LOW RISK: wallet has a good track record, but keep basic precautions."
	case a.RiskScore >= w.MediumRiskMinScore:
		level = domain.RiskMedium
		factors = append(factors, "wallet with some caution factors")
		recommendation = "MODERATE CAUTION: verify carefully before interacting."
	case a.RiskScore >= w.HighRiskMinScore:
		level = domain.RiskHigh
		factors = append(factors, "multiple risk factors detected")
		recommendation = "HIGH RISK: avoid interactions or verify exhaustively."
	default:
		level = domain.RiskExtreme
		factors = append(factors, "highly suspicious patterns detected")
		recommendation = "EXTREME RISK: avoid any interaction entirely."
	}

	for _, pattern := range a.SuspiciousPatterns {
		factors = append(factors, "detected: "+pattern)
	}
	if len(a.ExchangeInteractions) > 0 {
		factors = append(factors, "exchange interactions: "+strings.Join(a.ExchangeInteractions, ", "))
	}
	factors = append(factors,
		fmt.Sprintf("risk score: %.1f/10", a.RiskScore),
		fmt.Sprintf("confidence level: %d%%", a.ConfidenceLevel),
		fmt.Sprintf("wallet age: %d days", a.AgeInDays),
	)

	return domain.RiskVerdict{
		IsBlacklisted:   false,
		RiskLevel:       level,
		RiskScore:       a.RiskScore,
		ConfidenceLevel: a.ConfidenceLevel,
		RiskFactors:     factors,
		Recommendation:  recommendation,
		Analytics:       a,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
