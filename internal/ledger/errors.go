package ledger

import "errors"

var (
	// ErrBookNotFound indicates the referenced book is not in the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookUnavailable indicates the book is already out on an active loan.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrUserSuspended indicates the borrower holds a loan overdue past the suspension threshold.
	ErrUserSuspended = errors.New("user has overdue books with fines pending past the allowed days")

	// ErrLoanNotFound indicates the referenced loan does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrAlreadyReturned indicates the loan was closed earlier.
	ErrAlreadyReturned = errors.New("loan already returned")

	// ErrInvalidDueDate indicates a due date earlier than the borrow day.
	ErrInvalidDueDate = errors.New("due date is before the borrow date")

	// ErrDuplicateBook indicates a book id collision on AddBook.
	ErrDuplicateBook = errors.New("book already exists")

	// ErrDuplicateLoan indicates a loan id collision while seeding.
	ErrDuplicateLoan = errors.New("loan already exists")
)
