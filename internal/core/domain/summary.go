package domain

import "time"

// Summary is the singleton aggregate snapshot pushed by the client.
// It is never recomputed from transactions.
type Summary struct {
	IncomeTotal  float64 `json:"income_total"`
	ExpenseTotal float64 `json:"expense_total"`
	TotalBalance float64 `json:"total_balance"`
	UpdatedAt    string  `json:"updated_at"`
}

// DefaultSummary is returned when no summary has been saved yet.
func DefaultSummary(now time.Time) Summary {
	return Summary{UpdatedAt: FormatTimestamp(now)}
}
