package dto

// DueDateLayout is the calendar-day format accepted for due dates.
const DueDateLayout = "2006-01-02"

// IssueLoanRequest is the payload for POST /loans. DueDate is optional and
// defaults to the standard loan period.
type IssueLoanRequest struct {
	BookID  string `json:"bookId"`
	UserID  string `json:"userId"`
	DueDate string `json:"dueDate,omitempty"`
}
