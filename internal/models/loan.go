package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan records a book lent to a user. IsOverdue, DaysOverdue and Fine are
// derived by the ledger and freeze once the loan is returned.
type Loan struct {
	ID          string          `json:"id"`
	BookID      string          `json:"bookId"`
	UserID      string          `json:"userId"`
	BorrowDate  time.Time       `json:"borrowDate"`
	DueDate     time.Time       `json:"dueDate"`
	Returned    bool            `json:"returned"`
	ReturnDate  *time.Time      `json:"returnDate"`
	IsOverdue   bool            `json:"isOverdue"`
	Fine        decimal.Decimal `json:"fine"`
	DaysOverdue int             `json:"daysOverdue"`
}

// Active reports whether the book is still out.
func (l Loan) Active() bool {
	return !l.Returned
}

const LoanEntity = "loan"
