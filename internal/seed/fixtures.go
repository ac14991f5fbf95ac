package seed

import (
	"time"

	"github.com/hongminglow/campus-library/internal/models"
)

// Users returns the fixed patron list. Every account shares passwordHash.
func Users(passwordHash string, now time.Time) []models.User {
	users := []models.User{
		{ID: "user-1", Name: "Rahul Sharma", Email: "rahul.sharma@ccet.ac.in", Role: models.RoleStudent, Department: "Computer Science", RollNumber: "CS2023001"},
		{ID: "user-2", Name: "Priya Patel", Email: "priya.patel@ccet.ac.in", Role: models.RoleStudent, Department: "Electrical Engineering", RollNumber: "EE2023015"},
		{ID: "user-3", Name: "Dr. Amit Kumar", Email: "amit.kumar@ccet.ac.in", Role: models.RoleAdmin, Department: "Library", StaffID: "LIB001"},
		{ID: "user-4", Name: "Vikram Singh", Email: "vikram.singh@ccet.ac.in", Role: models.RoleStudent, Department: "Mechanical Engineering", RollNumber: "ME2023022"},
		{ID: "user-5", Name: "Neha Gupta", Email: "neha.gupta@ccet.ac.in", Role: models.RoleStudent, Department: "Civil Engineering", RollNumber: "CE2023008"},
	}
	for i := range users {
		users[i].PasswordHash = passwordHash
		users[i].CreatedAt = now
	}
	return users
}

// Loans returns the starting loans placed relative to today: one seven days
// overdue, one three days overdue, two running and one returned early.
func Loans(now time.Time) []models.Loan {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return today.AddDate(0, 0, days) }
	returned := at(-27)

	return []models.Loan{
		{ID: "loan-1", BookID: "book-2", UserID: "user-1", BorrowDate: at(-21), DueDate: at(-7)},
		{ID: "loan-2", BookID: "book-6", UserID: "user-2", BorrowDate: at(-5), DueDate: at(9)},
		{ID: "loan-3", BookID: "book-3", UserID: "user-1", BorrowDate: at(-40), DueDate: at(-26), Returned: true, ReturnDate: &returned},
		{ID: "loan-4", BookID: "book-12", UserID: "user-4", BorrowDate: at(-17), DueDate: at(-3)},
		{ID: "loan-5", BookID: "book-9", UserID: "user-5", BorrowDate: at(-2), DueDate: at(12)},
	}
}

// Announcements returns the notices shown on the landing page.
func Announcements() []models.Announcement {
	return []models.Announcement{
		{
			Title:   "Extended Library Hours During Exams",
			Content: "The library will be open 24/7 during the final examination period to accommodate student study needs. Additional study rooms will be available on a first-come, first-served basis.",
			Date:    "April 15, 2023",
			Type:    "important",
		},
		{
			Title:   "New Engineering Databases Available",
			Content: "Three new research databases are now part of the digital collection: IEEE Xplore, ASME Digital Collection, and ACM Digital Library. Access them through your student portal.",
			Date:    "April 10, 2023",
			Type:    "announcement",
		},
		{
			Title:   "Technical Book Fair",
			Content: "The annual Technical Book Fair will be held in the Main Auditorium. Publishers from across India will showcase the latest engineering and technical books with special discounts for CCET students.",
			Date:    "April 5, 2023",
			Type:    "event",
		},
		{
			Title:   "Library System Maintenance",
			Content: "The library catalog and online services will be unavailable on Saturday from 2:00 AM to 6:00 AM due to scheduled system maintenance.",
			Date:    "April 1, 2023",
			Type:    "important",
		},
	}
}
