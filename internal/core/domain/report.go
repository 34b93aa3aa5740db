package domain

import "time"

// RiskLevel is the ordered classification LOW < MEDIUM < HIGH < EXTREME.
type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskExtreme RiskLevel = "EXTREME"
)

// TransactionFrequency holds counts over four trailing windows.
type TransactionFrequency struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
}

// Analytics is the snapshot computed fresh for each analysis. It is a
// pure function of the fetched transaction and contract sets.
type Analytics struct {
	AgeInDays            int                  `json:"age_in_days"`
	TransactionFrequency TransactionFrequency `json:"transaction_frequency"`
	ExchangeInteractions []string             `json:"exchange_interactions"`
	SuspiciousPatterns   []string             `json:"suspicious_patterns"`
	RiskScore            float64              `json:"risk_score"`
	ConfidenceLevel      int                  `json:"confidence_level"`
}

// RiskVerdict is the terminal artifact of the pipeline. It is never
// mutated after construction.
type RiskVerdict struct {
	IsBlacklisted   bool      `json:"is_blacklisted"`
	RiskLevel       RiskLevel `json:"risk_level"`
	RiskScore       float64   `json:"risk_score"`
	ConfidenceLevel int       `json:"confidence_level"`
	RiskFactors     []string  `json:"risk_factors"`
	Recommendation  string    `json:"recommendation"`
	Analytics       Analytics `json:"analytics"`
}

// WalletReport bundles everything a caller needs to render one analysis.
type WalletReport struct {
	Address      string                `json:"address"`
	Balance      string                `json:"balance"` // ETH, 4 places
	Tokens       []TokenHolding        `json:"tokens"`
	Transactions []Transaction         `json:"transactions"`
	Contracts    []ContractInteraction `json:"contracts"`
	RiskAnalysis RiskVerdict           `json:"risk_analysis"`
	AnalyzedAt   time.Time             `json:"analyzed_at"`
}
