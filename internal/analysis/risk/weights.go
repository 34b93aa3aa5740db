// Package risk turns an analytics snapshot and a blacklist flag into a
// risk verdict. The classifier is total: it never fails, and always
// produces a verdict from whatever analytics it is given.
package risk

// Weights holds the heuristic scoring constants. They are not derived
// from any stated model; keeping them here allows calibration without
// touching pipeline logic.
type Weights struct {
	BaseScore float64 `yaml:"base_score"`

	// Age brackets, evaluated most-favorable-first; the first match wins.
	AgeOverYearBonus     float64 `yaml:"age_over_year_bonus"`      // > 365 days
	AgeOverHalfYearBonus float64 `yaml:"age_over_half_year_bonus"` // > 180 days
	AgeOverQuarterBonus  float64 `yaml:"age_over_quarter_bonus"`   // > 90 days
	AgeUnderWeekPenalty  float64 `yaml:"age_under_week_penalty"`   // < 7 days
	AgeUnderMonthPenalty float64 `yaml:"age_under_month_penalty"`  // < 30 days

	HighTxCountBonus  float64 `yaml:"high_tx_count_bonus"` // > 100 transactions
	LowTxCountPenalty float64 `yaml:"low_tx_count_penalty"` // < 5 transactions

	ExchangeBonus  float64 `yaml:"exchange_bonus"`  // per distinct exchange tag
	PatternPenalty float64 `yaml:"pattern_penalty"` // per suspicious pattern

	// Score buckets for level selection.
	LowRiskMinScore    float64 `yaml:"low_risk_min_score"`
	MediumRiskMinScore float64 `yaml:"medium_risk_min_score"`
	HighRiskMinScore   float64 `yaml:"high_risk_min_score"`

	// Minimal-activity gate: at most this many transactions and younger
	// than this many days forces HIGH.
	MinimalActivityMaxTxs    int `yaml:"minimal_activity_max_txs"`
	MinimalActivityMaxAgeDays int `yaml:"minimal_activity_max_age_days"`
}

// DefaultWeights are the calibration the score buckets were tuned
// against.
func DefaultWeights() Weights {
	return Weights{
		BaseScore:                 5.0,
		AgeOverYearBonus:          2.0,
		AgeOverHalfYearBonus:      1.0,
		AgeOverQuarterBonus:       0.5,
		AgeUnderWeekPenalty:       2.0,
		AgeUnderMonthPenalty:      1.0,
		HighTxCountBonus:          1.0,
		LowTxCountPenalty:         1.0,
		ExchangeBonus:             0.5,
		PatternPenalty:            0.5,
		LowRiskMinScore:           8.0,
		MediumRiskMinScore:        6.0,
		HighRiskMinScore:          4.0,
		MinimalActivityMaxTxs:     1,
		MinimalActivityMaxAgeDays: 90,
	}
}

// ApplyDefaults fills a zero-valued Weights (e.g. an absent config
// section) with the default calibration. A partially filled struct is
// left alone only for its non-zero fields.
func (w *Weights) ApplyDefaults() {
	d := DefaultWeights()
	if w.BaseScore == 0 {
		w.BaseScore = d.BaseScore
	}
	if w.AgeOverYearBonus == 0 {
		w.AgeOverYearBonus = d.AgeOverYearBonus
	}
	if w.AgeOverHalfYearBonus == 0 {
		w.AgeOverHalfYearBonus = d.AgeOverHalfYearBonus
	}
	if w.AgeOverQuarterBonus == 0 {
		w.AgeOverQuarterBonus = d.AgeOverQuarterBonus
	}
	if w.AgeUnderWeekPenalty == 0 {
		w.AgeUnderWeekPenalty = d.AgeUnderWeekPenalty
	}
	if w.AgeUnderMonthPenalty == 0 {
		w.AgeUnderMonthPenalty = d.AgeUnderMonthPenalty
	}
	if w.HighTxCountBonus == 0 {
		w.HighTxCountBonus = d.HighTxCountBonus
	}
	if w.LowTxCountPenalty == 0 {
		w.LowTxCountPenalty = d.LowTxCountPenalty
	}
	if w.ExchangeBonus == 0 {
		w.ExchangeBonus = d.ExchangeBonus
	}
	if w.PatternPenalty == 0 {
		w.PatternPenalty = d.PatternPenalty
	}
	if w.LowRiskMinScore == 0 {
		w.LowRiskMinScore = d.LowRiskMinScore
	}
	if w.MediumRiskMinScore == 0 {
		w.MediumRiskMinScore = d.MediumRiskMinScore
	}
	if w.HighRiskMinScore == 0 {
		w.HighRiskMinScore = d.HighRiskMinScore
	}
	if w.MinimalActivityMaxTxs == 0 {
		w.MinimalActivityMaxTxs = d.MinimalActivityMaxTxs
	}
	if w.MinimalActivityMaxAgeDays == 0 {
		w.MinimalActivityMaxAgeDays = d.MinimalActivityMaxAgeDays
	}
}
