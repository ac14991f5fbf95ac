// Package ledger keeps the in-memory book and loan records of the library and
// enforces the lending rules: a book is out on at most one active loan, fines
// accrue per overdue day, and a borrower with a loan overdue past the
// suspension threshold cannot take new books.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/campus-library/internal/models"
)

const (
	defaultDailyRate           = 10
	defaultSuspensionThreshold = 7
	defaultLoanPeriodDays      = 14
)

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now as the ledger's notion of today.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the time zone whose midnights delimit overdue days.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithDailyRate sets the fine charged per overdue day.
func WithDailyRate(rate decimal.Decimal) Option {
	return func(l *Ledger) {
		if !rate.IsNegative() {
			l.dailyRate = rate
		}
	}
}

// WithSuspensionThreshold sets how many overdue days a borrower may reach
// before new issues are refused.
func WithSuspensionThreshold(days int) Option {
	return func(l *Ledger) {
		if days >= 0 {
			l.suspendAfter = days
		}
	}
}

// WithLoanPeriod sets the default loan length used when Issue gets no due date.
func WithLoanPeriod(days int) Option {
	return func(l *Ledger) {
		if days > 0 {
			l.loanPeriodDays = days
		}
	}
}

// WithIDGenerator replaces the loan id generator.
func WithIDGenerator(next func() string) Option {
	return func(l *Ledger) {
		if next != nil {
			l.newID = next
		}
	}
}

// Ledger holds books and loans. All methods are safe for concurrent use and
// every mutation is applied atomically.
type Ledger struct {
	mu        sync.RWMutex
	books     map[string]*models.Book
	bookOrder []string
	loans     map[string]*models.Loan
	loanOrder []string

	now            func() time.Time
	loc            *time.Location
	dailyRate      decimal.Decimal
	suspendAfter   int
	loanPeriodDays int
	newID          func() string
}

// New builds a ledger from seed records. Book availability is derived from
// the seeded loans: every book starts available and each active loan takes
// its book out. Derived overdue fields are recomputed before New returns.
func New(books []models.Book, loans []models.Loan, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		books:          make(map[string]*models.Book, len(books)),
		loans:          make(map[string]*models.Loan, len(loans)),
		now:            time.Now,
		loc:            time.UTC,
		dailyRate:      decimal.NewFromInt(defaultDailyRate),
		suspendAfter:   defaultSuspensionThreshold,
		loanPeriodDays: defaultLoanPeriodDays,
		newID:          func() string { return "loan-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, b := range books {
		if _, exists := l.books[b.ID]; exists {
			return nil, fmt.Errorf("seed book %s: %w", b.ID, ErrDuplicateBook)
		}
		book := b
		book.Available = true
		l.books[book.ID] = &book
		l.bookOrder = append(l.bookOrder, book.ID)
	}

	for _, ln := range loans {
		if _, exists := l.loans[ln.ID]; exists {
			return nil, fmt.Errorf("seed loan %s: %w", ln.ID, ErrDuplicateLoan)
		}
		book, ok := l.books[ln.BookID]
		if !ok {
			return nil, fmt.Errorf("seed loan %s references %s: %w", ln.ID, ln.BookID, ErrBookNotFound)
		}
		if ln.Active() {
			if !book.Available {
				return nil, fmt.Errorf("seed loan %s references %s: %w", ln.ID, ln.BookID, ErrBookUnavailable)
			}
			book.Available = false
		}
		loan := ln
		l.loans[loan.ID] = &loan
		l.loanOrder = append(l.loanOrder, loan.ID)
	}

	l.refreshOverdue()
	return l, nil
}

// DailyRate returns the fine charged per overdue day.
func (l *Ledger) DailyRate() decimal.Decimal {
	return l.dailyRate
}

// Location returns the time zone whose midnights delimit loan days.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// SuspensionThreshold returns the overdue day count a borrower may reach.
func (l *Ledger) SuspensionThreshold() int {
	return l.suspendAfter
}

// Issue lends a book to a user until due. A zero due date means the default
// loan period from today. Nothing changes when Issue fails.
func (l *Ledger) Issue(bookID, userID string, due time.Time) (models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	book, ok := l.books[bookID]
	if !ok {
		return models.Loan{}, ErrBookNotFound
	}
	if !book.Available {
		return models.Loan{}, ErrBookUnavailable
	}
	if l.suspendedLocked(userID) {
		return models.Loan{}, ErrUserSuspended
	}

	now := l.now()
	today := startOfDay(now, l.loc)
	if due.IsZero() {
		due = today.AddDate(0, 0, l.loanPeriodDays)
	}
	if startOfDay(due, l.loc).Before(today) {
		return models.Loan{}, ErrInvalidDueDate
	}

	loan := &models.Loan{
		ID:         l.newID(),
		BookID:     bookID,
		UserID:     userID,
		BorrowDate: now,
		DueDate:    due,
		Fine:       decimal.Zero,
	}
	if _, exists := l.loans[loan.ID]; exists {
		return models.Loan{}, ErrDuplicateLoan
	}
	book.Available = false
	l.loans[loan.ID] = loan
	l.loanOrder = append(l.loanOrder, loan.ID)
	return *loan, nil
}

// Return closes a loan, freezing its fine at the amount owed today, and puts
// the book back on the shelf.
func (l *Ledger) Return(loanID string) (models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan, ok := l.loans[loanID]
	if !ok {
		return models.Loan{}, ErrLoanNotFound
	}
	if loan.Returned {
		return *loan, ErrAlreadyReturned
	}

	now := l.now()
	days := overdueDays(loan.DueDate, now, l.loc)
	loan.Returned = true
	loan.ReturnDate = &now
	loan.IsOverdue = days > 0
	loan.DaysOverdue = days
	loan.Fine = fineFor(days, l.dailyRate)

	if book, ok := l.books[loan.BookID]; ok {
		book.Available = true
	}
	return *loan, nil
}

// CheckOverdue recomputes overdue status, overdue days and fines of every
// active loan against today and returns how many are overdue. Calling it
// again without the date changing leaves every loan as it was.
func (l *Ledger) CheckOverdue() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refreshOverdue()
}

func (l *Ledger) refreshOverdue() int {
	now := l.now()
	overdue := 0
	for _, id := range l.loanOrder {
		loan := l.loans[id]
		if loan.Returned {
			continue
		}
		days := overdueDays(loan.DueDate, now, l.loc)
		loan.IsOverdue = days > 0
		if !loan.IsOverdue {
			continue
		}
		overdue++
		loan.DaysOverdue = days
		loan.Fine = fineFor(days, l.dailyRate)
	}
	return overdue
}

// CanBorrow reports whether the user may take a new loan: no active loan of
// theirs may be overdue by more than the suspension threshold.
func (l *Ledger) CanBorrow(userID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return !l.suspendedLocked(userID)
}

func (l *Ledger) suspendedLocked(userID string) bool {
	for _, id := range l.loanOrder {
		loan := l.loans[id]
		if loan.UserID == userID && loan.Active() && loan.DaysOverdue > l.suspendAfter {
			return true
		}
	}
	return false
}

// PayFine clears the fine owed on a loan and returns the loan with the
// amount cleared. Overdue days and suspension are left untouched; the next
// CheckOverdue on an active loan recomputes the fine in full.
func (l *Ledger) PayFine(loanID string) (models.Loan, decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan, ok := l.loans[loanID]
	if !ok {
		return models.Loan{}, decimal.Zero, ErrLoanNotFound
	}
	cleared := loan.Fine
	loan.Fine = decimal.Zero
	return *loan, cleared, nil
}
