// Package analysis derives wallet analytics from fetched chain data.
// Everything here is a pure function of its inputs: no network access,
// no shared state.
package analysis

import (
	"sort"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

// maxContracts bounds the ranked contract interaction list.
const maxContracts = 20

// AggregateContracts derives a ranked list of counterparty contracts
// from the transaction set. Transactions without a destination, with a
// contract-creation sentinel, or sent to self are skipped. The first
// matching transaction establishes the record; later ones increment
// its counter. Output is sorted by descending interaction count
// (address ascending on ties, for determinism) and capped.
func AggregateContracts(txs []domain.Transaction) []domain.ContractInteraction {
	byAddress := make(map[string]*domain.ContractInteraction)
	for i := range txs {
		tx := &txs[i]
		if tx.IsContractCreation() {
			continue
		}
		to := domain.NormalizeAddress(tx.To)
		if to == domain.NormalizeAddress(tx.From) {
			continue
		}
		if rec, ok := byAddress[to]; ok {
			rec.InteractionCount++
			continue
		}
		byAddress[to] = &domain.ContractInteraction{
			Address:          to,
			InteractionCount: 1,
			LastInteraction:  tx.Timestamp,
		}
	}

	contracts := make([]domain.ContractInteraction, 0, len(byAddress))
	for _, rec := range byAddress {
		contracts = append(contracts, *rec)
	}
	sort.Slice(contracts, func(i, j int) bool {
		if contracts[i].InteractionCount != contracts[j].InteractionCount {
			return contracts[i].InteractionCount > contracts[j].InteractionCount
		}
		return contracts[i].Address < contracts[j].Address
	})

	if len(contracts) > maxContracts {
		contracts = contracts[:maxContracts]
	}
	return contracts
}
