package domain

// TokenHolding is an ERC-20 position derived from the wallet's token
// transfer history plus a per-contract balance lookup. Only holdings
// with a strictly positive balance survive into the final report.
type TokenHolding struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	ContractAddress string `json:"contract_address"`
	Decimals        int    `json:"decimals"`
	Balance         string `json:"balance"`     // decimal amount, 6 places
	RawBalance      string `json:"raw_balance"` // integer string as returned upstream
	Value           string `json:"value"`       // price integration out of scope, always "0.00"
}
