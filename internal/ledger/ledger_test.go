package ledger

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/campus-library/internal/models"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testBooks(n int) []models.Book {
	books := make([]models.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, models.Book{
			ID:     fmt.Sprintf("book-%d", i),
			Title:  fmt.Sprintf("Title %d", i),
			Author: "Author",
			Type:   models.BookTypeHardcopy,
		})
	}
	return books
}

func newTestLedger(t *testing.T, clock *fakeClock, loans ...models.Loan) *Ledger {
	t.Helper()
	seq := 0
	l, err := New(testBooks(5), loans,
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("loan-new-%d", seq)
		}),
	)
	require.NoError(t, err)
	return l
}

func assertAvailabilityInvariant(t *testing.T, l *Ledger) {
	t.Helper()
	active := map[string]int{}
	for _, loan := range l.Loans() {
		if !loan.Returned {
			active[loan.BookID]++
		}
	}
	for _, b := range l.Books() {
		require.LessOrEqual(t, active[b.ID], 1, "book %s on more than one active loan", b.ID)
		assert.Equal(t, active[b.ID] == 0, b.Available, "availability of %s", b.ID)
	}
}

func TestNew_DerivesAvailabilityFromActiveLoans(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-10")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-2", UserID: "user-1", DueDate: day("2023-04-15")},
		models.Loan{ID: "loan-2", BookID: "book-3", UserID: "user-1", DueDate: day("2023-03-29"), Returned: true},
	)

	b2, err := l.Book("book-2")
	require.NoError(t, err)
	assert.False(t, b2.Available)

	b3, err := l.Book("book-3")
	require.NoError(t, err)
	assert.True(t, b3.Available)

	assertAvailabilityInvariant(t, l)
}

func TestNew_RejectsInconsistentSeed(t *testing.T) {
	_, err := New(testBooks(2), []models.Loan{
		{ID: "loan-1", BookID: "book-1", UserID: "user-1"},
		{ID: "loan-2", BookID: "book-1", UserID: "user-2"},
	})
	assert.ErrorIs(t, err, ErrBookUnavailable)

	_, err = New(testBooks(2), []models.Loan{{ID: "loan-1", BookID: "book-9", UserID: "user-1"}})
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = New(testBooks(2), []models.Loan{
		{ID: "loan-1", BookID: "book-1", UserID: "user-1", Returned: true},
		{ID: "loan-1", BookID: "book-2", UserID: "user-1"},
	})
	assert.ErrorIs(t, err, ErrDuplicateLoan)
}

func TestIssue_MarksBookUnavailable(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)

	loan, err := l.Issue("book-1", "user-1", day("2023-04-15"))
	require.NoError(t, err)

	assert.Equal(t, "loan-new-1", loan.ID)
	assert.False(t, loan.Returned)
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, 0, loan.DaysOverdue)
	assert.True(t, loan.Fine.IsZero())

	book, err := l.Book("book-1")
	require.NoError(t, err)
	assert.False(t, book.Available)
	assertAvailabilityInvariant(t, l)
}

func TestIssue_UnavailableBookCreatesNoLoan(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)

	_, err := l.Issue("book-1", "user-1", day("2023-04-15"))
	require.NoError(t, err)

	_, err = l.Issue("book-1", "user-2", day("2023-04-15"))
	assert.ErrorIs(t, err, ErrBookUnavailable)
	assert.Len(t, l.Loans(), 1)
	assertAvailabilityInvariant(t, l)
}

func TestIssue_UnknownBook(t *testing.T) {
	l := newTestLedger(t, &fakeClock{t: day("2023-04-01")})

	_, err := l.Issue("book-404", "user-1", time.Time{})
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Empty(t, l.Loans())
}

func TestIssue_SuspendedUserIsRejected(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-09")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	_, err := l.Issue("book-2", "user-1", day("2023-04-20"))
	assert.ErrorIs(t, err, ErrUserSuspended)

	book, err := l.Book("book-2")
	require.NoError(t, err)
	assert.True(t, book.Available)
	assert.Len(t, l.Loans(), 1)

	_, err = l.Issue("book-2", "user-2", day("2023-04-20"))
	assert.NoError(t, err)
}

func TestIssue_DueDates(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 4, 1, 15, 30, 0, 0, time.UTC)}
	l := newTestLedger(t, clock)

	loan, err := l.Issue("book-1", "user-1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, day("2023-04-15"), loan.DueDate)

	_, err = l.Issue("book-2", "user-1", day("2023-03-31"))
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	_, err = l.Issue("book-2", "user-1", day("2023-04-01"))
	assert.NoError(t, err)
}

func TestCheckOverdue_FineFormula(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-08")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	assert.Equal(t, 1, l.CheckOverdue())

	loan, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.True(t, loan.IsOverdue)
	assert.Equal(t, 7, loan.DaysOverdue)
	assert.Equal(t, "70", loan.Fine.String())
}

func TestCheckOverdue_PartialDayRoundsUp(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 4, 2, 0, 1, 0, 0, time.UTC)}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: time.Date(2023, 4, 1, 23, 0, 0, 0, time.UTC)},
	)

	loan, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loan.DaysOverdue)
	assert.Equal(t, "10", loan.Fine.String())
}

func TestCheckOverdue_NotOverdueOnDueDay(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 4, 1, 23, 59, 0, 0, time.UTC)}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	assert.Equal(t, 0, l.CheckOverdue())
	loan, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.False(t, loan.IsOverdue)
	assert.True(t, loan.Fine.IsZero())
}

func TestCheckOverdue_Idempotent(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-20")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-15")},
		models.Loan{ID: "loan-2", BookID: "book-2", UserID: "user-2", DueDate: day("2023-04-25")},
		models.Loan{ID: "loan-3", BookID: "book-3", UserID: "user-2", DueDate: day("2023-04-01"), Returned: true},
	)

	l.CheckOverdue()
	first := l.Loans()
	l.CheckOverdue()
	assert.Equal(t, first, l.Loans())
}

func TestCanBorrow_Threshold(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-08")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	assert.True(t, l.CanBorrow("user-1"), "exactly seven days overdue still borrows")

	clock.advance(1)
	l.CheckOverdue()
	assert.False(t, l.CanBorrow("user-1"))
	assert.True(t, l.CanBorrow("user-2"))
}

func TestCanBorrow_ReturnedLoansDoNotSuspend(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-20")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)
	require.False(t, l.CanBorrow("user-1"))

	_, err := l.Return("loan-1")
	require.NoError(t, err)
	assert.True(t, l.CanBorrow("user-1"))
}

func TestReturn_FreezesFineAndReleasesBook(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)

	issued, err := l.Issue("book-1", "user-1", day("2023-04-01"))
	require.NoError(t, err)

	clock.advance(7)
	returned, err := l.Return(issued.ID)
	require.NoError(t, err)
	assert.True(t, returned.Returned)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, day("2023-04-08"), *returned.ReturnDate)
	assert.Equal(t, 7, returned.DaysOverdue)
	assert.Equal(t, "70", returned.Fine.String())

	book, err := l.Book("book-1")
	require.NoError(t, err)
	assert.True(t, book.Available)

	clock.advance(30)
	l.CheckOverdue()
	after, err := l.Loan(issued.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.DaysOverdue)
	assert.Equal(t, "70", after.Fine.String())
	assertAvailabilityInvariant(t, l)
}

func TestReturn_OnTimeOwesNothing(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)

	issued, err := l.Issue("book-1", "user-1", day("2023-04-15"))
	require.NoError(t, err)
	clock.advance(3)

	returned, err := l.Return(issued.ID)
	require.NoError(t, err)
	assert.False(t, returned.IsOverdue)
	assert.Equal(t, 0, returned.DaysOverdue)
	assert.True(t, returned.Fine.IsZero())
}

func TestReturn_MissingOrReturnedLoanIsNoOp(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)

	_, err := l.Return("loan-404")
	assert.ErrorIs(t, err, ErrLoanNotFound)

	issued, err := l.Issue("book-1", "user-1", day("2023-04-01"))
	require.NoError(t, err)
	first, err := l.Return(issued.ID)
	require.NoError(t, err)

	clock.advance(5)
	_, err = l.Return(issued.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)

	again, err := l.Loan(issued.ID)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestPayFine_ClearsFineButNotSuspension(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-11")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	paid, cleared, err := l.PayFine("loan-1")
	require.NoError(t, err)
	assert.Equal(t, "100", cleared.String())
	assert.True(t, paid.Fine.IsZero())
	assert.Equal(t, 10, paid.DaysOverdue)
	assert.True(t, paid.IsOverdue)
	assert.False(t, paid.Returned)
	assert.False(t, l.CanBorrow("user-1"))

	clock.advance(2)
	returned, err := l.Return("loan-1")
	require.NoError(t, err)
	assert.Equal(t, 12, returned.DaysOverdue)
	assert.Equal(t, "120", returned.Fine.String())

	settled, cleared, err := l.PayFine("loan-1")
	require.NoError(t, err)
	assert.Equal(t, "120", cleared.String())
	assert.True(t, settled.Fine.IsZero())
	assert.True(t, settled.Returned)
	assert.Equal(t, 12, settled.DaysOverdue)

	l.CheckOverdue()
	frozen, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.True(t, frozen.Fine.IsZero(), "returned loans are not recomputed")

	_, cleared, err = l.PayFine("loan-404")
	assert.ErrorIs(t, err, ErrLoanNotFound)
	assert.True(t, cleared.IsZero())
}

func TestFine_FollowsDaysOverdueAfterPayment(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-08")}
	l := newTestLedger(t, clock,
		models.Loan{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")},
	)

	_, cleared, err := l.PayFine("loan-1")
	require.NoError(t, err)
	assert.Equal(t, "70", cleared.String())

	clock.advance(3)
	l.CheckOverdue()
	loan, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.Equal(t, 10, loan.DaysOverdue)
	assert.Equal(t, "100", loan.Fine.String())

	returned, err := l.Return("loan-1")
	require.NoError(t, err)
	assert.Equal(t, "100", returned.Fine.String())
	assert.True(t, returned.Fine.Equal(l.DailyRate().Mul(decimal.NewFromInt(int64(returned.DaysOverdue)))))
}

func TestIssue_DueDateInLedgerLocation(t *testing.T) {
	newYork := time.FixedZone("EDT", -4*60*60)
	now := time.Date(2023, 4, 8, 12, 0, 0, 0, newYork)
	l, err := New(testBooks(2), nil,
		WithClock(func() time.Time { return now }),
		WithLocation(newYork),
	)
	require.NoError(t, err)
	assert.Equal(t, newYork, l.Location())

	sameDay, err := time.ParseInLocation("2006-01-02", "2023-04-08", l.Location())
	require.NoError(t, err)
	loan, err := l.Issue("book-1", "user-1", sameDay)
	require.NoError(t, err, "a loan due today is valid")
	assert.Equal(t, 0, l.DaysUntilDue(loan.DueDate))

	nextDay, err := time.ParseInLocation("2006-01-02", "2023-04-09", l.Location())
	require.NoError(t, err)
	loan, err = l.Issue("book-2", "user-1", nextDay)
	require.NoError(t, err)
	assert.Equal(t, 1, l.DaysUntilDue(loan.DueDate))
}

func TestDailyRateOption(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-04")}
	l, err := New(testBooks(1),
		[]models.Loan{{ID: "loan-1", BookID: "book-1", UserID: "user-1", DueDate: day("2023-04-01")}},
		WithClock(clock.Now),
		WithDailyRate(decimal.RequireFromString("2.5")),
		WithSuspensionThreshold(2),
	)
	require.NoError(t, err)

	loan, err := l.Loan("loan-1")
	require.NoError(t, err)
	assert.Equal(t, "7.5", loan.Fine.String())
	assert.False(t, l.CanBorrow("user-1"))
	assert.Equal(t, "2.5", l.DailyRate().String())
	assert.Equal(t, 2, l.SuspensionThreshold())
	assert.Equal(t, -3, l.DaysUntilDue(day("2023-04-01")))
}

func TestAvailabilityInvariant_RandomOperations(t *testing.T) {
	clock := &fakeClock{t: day("2023-04-01")}
	l := newTestLedger(t, clock)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			bookID := fmt.Sprintf("book-%d", rng.Intn(5)+1)
			userID := fmt.Sprintf("user-%d", rng.Intn(3)+1)
			_, _ = l.Issue(bookID, userID, clock.t.AddDate(0, 0, rng.Intn(10)))
		case 2:
			if active := l.ActiveLoans(); len(active) > 0 {
				_, err := l.Return(active[rng.Intn(len(active))].ID)
				require.NoError(t, err)
			}
		case 3:
			clock.advance(rng.Intn(3))
			l.CheckOverdue()
		}
		assertAvailabilityInvariant(t, l)
	}
}
