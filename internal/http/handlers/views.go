package handlers

import (
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/models/dto"
)

// viewLoans joins loans with their book titles.
func viewLoans(l *ledger.Ledger, loans []models.Loan) []dto.LoanView {
	out := make([]dto.LoanView, 0, len(loans))
	for _, loan := range loans {
		out = append(out, viewLoan(l, loan))
	}
	return out
}

func viewLoan(l *ledger.Ledger, loan models.Loan) dto.LoanView {
	view := dto.LoanView{Loan: loan}
	if book, err := l.Book(loan.BookID); err == nil {
		view.BookTitle = book.Title
		view.BookAuthor = book.Author
	}
	return view
}
