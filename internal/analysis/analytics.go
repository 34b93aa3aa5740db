package analysis

import (
	"sort"
	"strconv"
	"time"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

// Thresholds for the suspicious pattern rules. Each rule is an
// independent boolean; a true rule appends its label.
const (
	newWalletMaxAgeDays    = 7
	newWalletMinTxCount    = 50
	highVolumeMinTxCount   = 100
	highVolumeMaxAgeDays   = 30
	manyContractsThreshold = 20
	repetitiveMinSamples   = 10
	repetitiveMaxRatio     = 0.3
	failedTxMinCount       = 5
	failedTxMaxRatio       = 0.2
)

// Pattern labels. Kept stable because they feed the risk factor list.
const (
	PatternNewWalletHighActivity = "new wallet with unusually high activity"
	PatternHighVolumeShortTime   = "high transaction volume in short time"
	PatternManyContracts         = "interactions with many different contracts"
	PatternRepetitiveAmounts     = "repetitive transaction patterns"
	PatternManyFailedTxs         = "high percentage of failed transactions"
)

// Compute builds the analytics snapshot for one analysis run. The
// transaction slice is expected in descending timestamp order, as
// produced by the fetcher; the oldest retained transaction anchors the
// wallet age. Score and confidence are filled in later by the risk
// classifier.
func Compute(txs []domain.Transaction, contracts []domain.ContractInteraction, now time.Time) domain.Analytics {
	age := walletAgeDays(txs, now)
	return domain.Analytics{
		AgeInDays:            age,
		TransactionFrequency: transactionFrequency(txs, now),
		ExchangeInteractions: exchangeInteractions(txs, contracts),
		SuspiciousPatterns:   suspiciousPatterns(txs, age),
	}
}

func walletAgeDays(txs []domain.Transaction, now time.Time) int {
	if len(txs) == 0 {
		return 0
	}
	oldest := txs[len(txs)-1].Timestamp
	days := int(now.Sub(time.Unix(oldest, 0)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func transactionFrequency(txs []domain.Transaction, now time.Time) domain.TransactionFrequency {
	count := func(days int) int {
		cutoff := now.AddDate(0, 0, -days).Unix()
		n := 0
		for _, tx := range txs {
			if tx.Timestamp > cutoff {
				n++
			}
		}
		return n
	}
	return domain.TransactionFrequency{
		Daily:   count(1),
		Weekly:  count(7),
		Monthly: count(30),
		Yearly:  count(365),
	}
}

// exchangeInteractions scans transaction destinations and contract
// counterparties against the known DEX table and emits one tag per
// recognized protocol. The tag set is deduplicated and sorted so the
// output is deterministic.
func exchangeInteractions(txs []domain.Transaction, contracts []domain.ContractInteraction) []string {
	tags := make(map[string]struct{})
	for _, tx := range txs {
		if tag, ok := knownExchanges[domain.NormalizeAddress(tx.To)]; ok {
			tags[tag] = struct{}{}
		}
	}
	for _, c := range contracts {
		if tag, ok := knownExchanges[c.Address]; ok {
			tags[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func distinctContracts(txs []domain.Transaction) int {
	seen := make(map[string]struct{})
	for i := range txs {
		tx := &txs[i]
		if tx.IsContractCreation() {
			continue
		}
		to := domain.NormalizeAddress(tx.To)
		if to == domain.NormalizeAddress(tx.From) {
			continue
		}
		seen[to] = struct{}{}
	}
	return len(seen)
}

func suspiciousPatterns(txs []domain.Transaction, ageInDays int) []string {
	var patterns []string

	if ageInDays < newWalletMaxAgeDays && len(txs) > newWalletMinTxCount {
		patterns = append(patterns, PatternNewWalletHighActivity)
	}
	if len(txs) > highVolumeMinTxCount && ageInDays < highVolumeMaxAgeDays {
		patterns = append(patterns, PatternHighVolumeShortTime)
	}
	// The ranked contract list is capped, so the distinct count comes
	// from the transactions themselves.
	if distinctContracts(txs) > manyContractsThreshold {
		patterns = append(patterns, PatternManyContracts)
	}

	// Repeated identical amounts among value-bearing transactions.
	var amounts []string
	for _, tx := range txs {
		if v, err := strconv.ParseFloat(tx.Value, 64); err == nil && v > 0 {
			amounts = append(amounts, tx.Value)
		}
	}
	if len(amounts) > repetitiveMinSamples {
		unique := make(map[string]struct{}, len(amounts))
		for _, a := range amounts {
			unique[a] = struct{}{}
		}
		if float64(len(unique)) < float64(len(amounts))*repetitiveMaxRatio {
			patterns = append(patterns, PatternRepetitiveAmounts)
		}
	}

	failed := 0
	for _, tx := range txs {
		if tx.Failed {
			failed++
		}
	}
	if failed > failedTxMinCount && float64(failed) > float64(len(txs))*failedTxMaxRatio {
		patterns = append(patterns, PatternManyFailedTxs)
	}

	return patterns
}
