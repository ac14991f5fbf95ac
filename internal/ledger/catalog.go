package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/campus-library/internal/models"
)

// Books returns a snapshot of every book in catalog order.
func (l *Ledger) Books() []models.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Book, 0, len(l.bookOrder))
	for _, id := range l.bookOrder {
		out = append(out, *l.books[id])
	}
	return out
}

// Book returns a single book by id.
func (l *Ledger) Book(id string) (models.Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	book, ok := l.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return *book, nil
}

// AddBook appends a new book to the catalog. New books are always available;
// an empty id is assigned.
func (l *Ledger) AddBook(b models.Book) (models.Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b.ID = strings.TrimSpace(b.ID)
	if b.ID == "" {
		b.ID = "book-" + uuid.NewString()
	}
	if _, exists := l.books[b.ID]; exists {
		return models.Book{}, ErrDuplicateBook
	}
	b.Available = true
	if b.DateAdded.IsZero() {
		b.DateAdded = l.now()
	}
	l.books[b.ID] = &b
	l.bookOrder = append(l.bookOrder, b.ID)
	return b, nil
}

// UpdateBook replaces the descriptive fields of a book. Availability, the
// date added and popularity stay as the ledger knows them.
func (l *Ledger) UpdateBook(id string, b models.Book) (models.Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	current.Title = b.Title
	current.Author = b.Author
	current.ISBN = b.ISBN
	current.Category = b.Category
	current.PublishYear = b.PublishYear
	current.Pages = b.Pages
	current.Description = b.Description
	current.Type = b.Type
	current.Location = b.Location
	if b.Collection != "" {
		current.Collection = b.Collection
	}
	return *current, nil
}

// Loans returns every loan in issue order.
func (l *Ledger) Loans() []models.Loan {
	return l.filterLoans(func(models.Loan) bool { return true })
}

// LoansByUser returns the loans, active and returned, of one borrower.
func (l *Ledger) LoansByUser(userID string) []models.Loan {
	return l.filterLoans(func(ln models.Loan) bool { return ln.UserID == userID })
}

// ActiveLoans returns the loans whose books are still out.
func (l *Ledger) ActiveLoans() []models.Loan {
	return l.filterLoans(models.Loan.Active)
}

// Loan returns a single loan by id.
func (l *Ledger) Loan(id string) (models.Loan, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	loan, ok := l.loans[id]
	if !ok {
		return models.Loan{}, ErrLoanNotFound
	}
	return *loan, nil
}

func (l *Ledger) filterLoans(keep func(models.Loan) bool) []models.Loan {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Loan, 0)
	for _, id := range l.loanOrder {
		if loan := *l.loans[id]; keep(loan) {
			out = append(out, loan)
		}
	}
	return out
}

// Stats summarises the ledger for the admin dashboard.
type Stats struct {
	TotalBooks       int             `json:"totalBooks"`
	AvailableBooks   int             `json:"availableBooks"`
	ActiveLoans      int             `json:"activeLoans"`
	OverdueLoans     int             `json:"overdueLoans"`
	OutstandingFines decimal.Decimal `json:"outstandingFines"`
}

// Stats counts books and loans as currently recorded.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{TotalBooks: len(l.books), OutstandingFines: decimal.Zero}
	for _, b := range l.books {
		if b.Available {
			s.AvailableBooks++
		}
	}
	for _, loan := range l.loans {
		s.OutstandingFines = s.OutstandingFines.Add(loan.Fine)
		if loan.Returned {
			continue
		}
		s.ActiveLoans++
		if loan.IsOverdue {
			s.OverdueLoans++
		}
	}
	return s
}
