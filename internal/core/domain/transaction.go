package domain

// TxOrigin identifies which retrieval path produced a transaction.
type TxOrigin string

const (
	TxOriginNormal   TxOrigin = "normal"
	TxOriginInternal TxOrigin = "internal"
)

// ContractCreation is the sentinel destination for transactions that
// deployed a contract and therefore have no "to" address.
const ContractCreation = "Contract Creation"

// Transaction is the canonical record a block-explorer response is
// normalized into.
type Transaction struct {
	Hash        string   `json:"hash"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Value       string   `json:"value"` // decimal ETH, 6 places
	Timestamp   int64    `json:"timestamp"`
	GasUsed     string   `json:"gas_used"`
	GasPrice    string   `json:"gas_price"`
	BlockNumber string   `json:"block_number"`
	Failed      bool     `json:"failed"`
	Origin      TxOrigin `json:"origin"`
}

// IsContractCreation reports whether the transaction deployed a contract.
func (t *Transaction) IsContractCreation() bool {
	return t.To == "" || t.To == ContractCreation
}
