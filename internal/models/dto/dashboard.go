package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/models"
)

// LoanView is a loan joined with the title of its book.
type LoanView struct {
	models.Loan
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
}

// StudentSummary is one row of the admin dashboard's student table.
type StudentSummary struct {
	User        models.User     `json:"user"`
	ActiveLoans int             `json:"activeLoans"`
	Overdue     int             `json:"overdue"`
	TotalFine   decimal.Decimal `json:"totalFine"`
	CanBorrow   bool            `json:"canBorrow"`
}

// AdminDashboard is the payload for GET /dashboard/admin.
type AdminDashboard struct {
	Stats       ledger.Stats     `json:"stats"`
	ActiveLoans []LoanView       `json:"activeLoans"`
	Students    []StudentSummary `json:"students"`
}

// StudentDashboard is the payload for GET /dashboard/student.
type StudentDashboard struct {
	Current   []LoanView      `json:"current"`
	Overdue   []LoanView      `json:"overdue"`
	History   []LoanView      `json:"history"`
	TotalFine decimal.Decimal `json:"totalFine"`
	DailyFine decimal.Decimal `json:"dailyFine"`
	CanBorrow bool            `json:"canBorrow"`
}

// DueDate is one active loan with the days left until it is due.
type DueDate struct {
	LoanView
	DaysUntilDue int `json:"daysUntilDue"`
}

// DueDates is the payload for GET /dashboard/student/due-dates.
type DueDates struct {
	Upcoming []DueDate `json:"upcoming"`
	Overdue  []DueDate `json:"overdue"`
}
