package domain

// DefaultCategory is stored when a transaction arrives without a category.
const DefaultCategory = "Uncategorized"

// Transaction is a single income/expense entry as stored in the
// transactions collection. Its identifier is the store-generated key and is
// not part of the record.
type Transaction struct {
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
	Note      string  `json:"note"`
	Timestamp string  `json:"timestamp"` // server-assigned at creation
}
