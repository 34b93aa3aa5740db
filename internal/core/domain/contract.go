package domain

// ContractInteraction counts how often the wallet called a given
// counterparty. Derived entirely from the transaction set.
type ContractInteraction struct {
	Address          string `json:"address"` // lowercase
	Name             string `json:"name,omitempty"`
	InteractionCount int    `json:"interaction_count"`
	LastInteraction  int64  `json:"last_interaction"`
}
