package ledger

import (
	"time"

	"github.com/trezcool/cantina/core"
)

// Transaction kinds
const (
	KindSale    = "venda"
	KindPayment = "pagamento"
)

// Transaction is a single immutable entry in a debtor's history.
type Transaction struct {
	ID          int       `json:"id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"` // UTC
	Description string    `json:"description"`
}

// Debtor is the credit-tab ("fiado") ledger entry for a student.
// History is append-only and kept newest-first for display; entry IDs are
// assigned monotonically per debtor and never reused. The guardian fields
// are a point-in-time contact snapshot, not a live join.
type Debtor struct {
	StudentID     int           `json:"student_id"`
	StudentName   string        `json:"student_name"`
	Balance       float64       `json:"balance"`
	GuardianID    *int          `json:"guardian_id,omitempty"`
	GuardianName  string        `json:"guardian_name,omitempty"`
	GuardianEmail string        `json:"guardian_email,omitempty"`
	GuardianPhone string        `json:"guardian_phone,omitempty"`
	History       []Transaction `json:"history"`
}

// FoldBalance recomputes the balance from history: sales add, payments
// subtract. The stored Balance is a cache that must always agree with it.
func (d *Debtor) FoldBalance() float64 {
	var sum float64
	for _, tx := range d.History {
		switch tx.Kind {
		case KindSale:
			sum += tx.Amount
		case KindPayment:
			sum -= tx.Amount
		}
	}
	return core.Round2(sum)
}

// nextTransactionID returns max(existing ids)+1, or 1 for an empty history.
func (d *Debtor) nextTransactionID() int {
	max := 0
	for _, tx := range d.History {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}

// prepend inserts tx as the newest history entry.
func (d *Debtor) prepend(tx Transaction) {
	d.History = append([]Transaction{tx}, d.History...)
}

// CreditSale is the slice of a sale the ledger needs to record it: the
// denormalized product snapshot, quantity and total captured at sale time.
type CreditSale struct {
	ProductName string
	Quantity    int
	Total       float64
	Date        time.Time
}
