package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/models/dto"
	"github.com/hongminglow/campus-library/internal/storage"
)

// DashboardHandler serves the admin and student dashboards.
type DashboardHandler struct {
	ledger *ledger.Ledger
	users  storage.UserStore
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(l *ledger.Ledger, users storage.UserStore) *DashboardHandler {
	return &DashboardHandler{ledger: l, users: users}
}

// Register attaches dashboard routes to the router.
func (h *DashboardHandler) Register(r *mux.Router, g Guard) {
	r.Handle("/dashboard/admin", g.Role(h.handleAdmin, models.RoleAdmin)).Methods(http.MethodGet)
	r.Handle("/dashboard/student", g.Role(h.handleStudent, models.RoleStudent)).Methods(http.MethodGet)
	r.Handle("/dashboard/student/due-dates", g.Role(h.handleDueDates, models.RoleStudent)).Methods(http.MethodGet)
}

func (h *DashboardHandler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	h.ledger.CheckOverdue()

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "admin dashboard: list users failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	students := make([]dto.StudentSummary, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleStudent {
			continue
		}
		summary := dto.StudentSummary{User: u, TotalFine: decimal.Zero, CanBorrow: h.ledger.CanBorrow(u.ID)}
		for _, loan := range h.ledger.LoansByUser(u.ID) {
			summary.TotalFine = summary.TotalFine.Add(loan.Fine)
			if !loan.Active() {
				continue
			}
			summary.ActiveLoans++
			if loan.IsOverdue {
				summary.Overdue++
			}
		}
		students = append(students, summary)
	}

	respond.JSON(w, http.StatusOK, "ok", dto.AdminDashboard{
		Stats:       h.ledger.Stats(),
		ActiveLoans: viewLoans(h.ledger, h.ledger.ActiveLoans()),
		Students:    students,
	})
}

func (h *DashboardHandler) handleStudent(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	h.ledger.CheckOverdue()

	out := dto.StudentDashboard{
		Current:   []dto.LoanView{},
		Overdue:   []dto.LoanView{},
		History:   []dto.LoanView{},
		TotalFine: decimal.Zero,
		DailyFine: h.ledger.DailyRate(),
		CanBorrow: h.ledger.CanBorrow(claims.UserID()),
	}
	for _, loan := range h.ledger.LoansByUser(claims.UserID()) {
		out.TotalFine = out.TotalFine.Add(loan.Fine)
		view := viewLoan(h.ledger, loan)
		switch {
		case !loan.Active():
			out.History = append(out.History, view)
		case loan.IsOverdue:
			out.Overdue = append(out.Overdue, view)
		default:
			out.Current = append(out.Current, view)
		}
	}
	respond.JSON(w, http.StatusOK, "ok", out)
}

// handleDueDates lists the caller's active loans ordered by due date.
func (h *DashboardHandler) handleDueDates(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	h.ledger.CheckOverdue()

	active := make([]models.Loan, 0)
	for _, loan := range h.ledger.LoansByUser(claims.UserID()) {
		if loan.Active() {
			active = append(active, loan)
		}
	}
	slices.SortStableFunc(active, func(a, b models.Loan) int { return a.DueDate.Compare(b.DueDate) })

	out := dto.DueDates{Upcoming: []dto.DueDate{}, Overdue: []dto.DueDate{}}
	for _, loan := range active {
		entry := dto.DueDate{LoanView: viewLoan(h.ledger, loan), DaysUntilDue: h.ledger.DaysUntilDue(loan.DueDate)}
		if loan.IsOverdue {
			out.Overdue = append(out.Overdue, entry)
		} else {
			out.Upcoming = append(out.Upcoming, entry)
		}
	}
	respond.JSON(w, http.StatusOK, "ok", out)
}
