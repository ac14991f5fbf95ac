package models

import "time"

type NoticeKind string

const (
	NoticeDueSoon NoticeKind = "due_soon"
	NoticeOverdue NoticeKind = "overdue"
)

// Notice is a reminder produced by the overdue worker for a borrower.
type Notice struct {
	UserID    string     `json:"userId"`
	LoanID    string     `json:"loanId"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Announcement is a library-wide notice shown on the landing page.
type Announcement struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Type    string `json:"type"`
}
