package workers

import (
	"sync"

	"github.com/hongminglow/campus-library/internal/models"
)

// maxNoticesPerUser bounds each borrower's history; older notices drop off.
const maxNoticesPerUser = 50

// NoticeBoard keeps the reminders produced for each borrower.
type NoticeBoard struct {
	mu      sync.RWMutex
	notices map[string][]models.Notice
	// lastPosted holds the library day of each loan's latest notice per kind.
	lastPosted map[noticeKey]string
}

type noticeKey struct {
	loanID string
	kind   models.NoticeKind
}

// NewNoticeBoard returns an empty board.
func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{
		notices:    make(map[string][]models.Notice),
		lastPosted: make(map[noticeKey]string),
	}
}

// Post stores n unless the same loan already received a notice of the same
// kind on day. It reports whether n was stored.
func (b *NoticeBoard) Post(n models.Notice, day string) bool {
	key := noticeKey{loanID: n.LoanID, kind: n.Kind}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastPosted[key] == day {
		return false
	}
	b.lastPosted[key] = day

	list := append(b.notices[n.UserID], n)
	if len(list) > maxNoticesPerUser {
		list = append([]models.Notice(nil), list[len(list)-maxNoticesPerUser:]...)
	}
	b.notices[n.UserID] = list
	return true
}

// Forget drops the dedupe state of every loan not in active.
func (b *NoticeBoard) Forget(active map[string]struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.lastPosted {
		if _, ok := active[key.loanID]; !ok {
			delete(b.lastPosted, key)
		}
	}
}

func (b *NoticeBoard) tracked() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lastPosted)
}

// For returns the notices addressed to userID, newest first.
func (b *NoticeBoard) For(userID string) []models.Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := b.notices[userID]
	out := make([]models.Notice, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out
}
