package dto

// CreateTransactionRequest is the loosely typed body accepted by
// POST /api/transactions. Every field is optional; amounts may arrive as
// numbers or numeric strings.
type CreateTransactionRequest struct {
	Date     any `json:"date"`
	Category any `json:"category"`
	Income   any `json:"income"`
	Expense  any `json:"expense"`
	Note     any `json:"note"`
}

// CreateTransactionResponse carries the store-generated id of a new transaction.
type CreateTransactionResponse struct {
	ID string `json:"id"`
}
