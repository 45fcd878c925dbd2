package dto

// SaveSummaryRequest is the body accepted by POST /api/summary.
type SaveSummaryRequest struct {
	IncomeTotal  any `json:"income_total"`
	ExpenseTotal any `json:"expense_total"`
	TotalBalance any `json:"total_balance"`
	UpdatedAt    any `json:"updated_at"`
}
