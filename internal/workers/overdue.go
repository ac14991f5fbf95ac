package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/models"
)

// OverdueNotifier periodically refreshes overdue state on the ledger and
// posts due-soon and overdue reminders.
type OverdueNotifier struct {
	ledger   *ledger.Ledger
	board    *NoticeBoard
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewOverdueNotifier builds a notifier scanning every interval.
func NewOverdueNotifier(l *ledger.Ledger, board *NoticeBoard, interval time.Duration, logger *slog.Logger) *OverdueNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &OverdueNotifier{ledger: l, board: board, interval: interval, logger: logger, now: time.Now}
}

// Start runs one scan immediately and then one per tick until ctx is done.
func (n *OverdueNotifier) Start(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	go func() {
		defer ticker.Stop()
		n.Check()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n.Check()
			}
		}
	}()
}

// Check refreshes the ledger and posts reminders. It returns the number of
// notices newly posted.
func (n *OverdueNotifier) Check() int {
	overdue := n.ledger.CheckOverdue()
	now := n.now()
	day := now.In(n.ledger.Location()).Format("2006-01-02")

	posted := 0
	active := make(map[string]struct{})
	for _, loan := range n.ledger.ActiveLoans() {
		active[loan.ID] = struct{}{}
		title := "Book"
		if book, err := n.ledger.Book(loan.BookID); err == nil {
			title = book.Title
		}

		notice := models.Notice{UserID: loan.UserID, LoanID: loan.ID, CreatedAt: now}
		switch {
		case loan.IsOverdue:
			notice.Kind = models.NoticeOverdue
			notice.Message = fmt.Sprintf("'%s' is %d days overdue. Current fine: Rs. %s. Please return it.",
				title, loan.DaysOverdue, loan.Fine.StringFixed(2))
			if loan.DaysOverdue > n.ledger.SuspensionThreshold() {
				notice.Message += " Borrowing is suspended until it is returned."
			}
		case n.ledger.DaysUntilDue(loan.DueDate) == 1:
			notice.Kind = models.NoticeDueSoon
			notice.Message = fmt.Sprintf("'%s' is due tomorrow (%s).", title, loan.DueDate.Format("02 Jan 2006"))
		default:
			continue
		}
		if n.board.Post(notice, day) {
			posted++
		}
	}
	n.board.Forget(active)

	n.logger.Info("overdue scan complete", "overdue", overdue, "notices", posted)
	return posted
}
