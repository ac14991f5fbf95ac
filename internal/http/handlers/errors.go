package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
)

// writeLedgerError maps ledger failures onto HTTP status codes.
func writeLedgerError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrBookNotFound), errors.Is(err, ledger.ErrLoanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrBookUnavailable),
		errors.Is(err, ledger.ErrAlreadyReturned),
		errors.Is(err, ledger.ErrDuplicateBook),
		errors.Is(err, ledger.ErrDuplicateLoan):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrUserSuspended):
		status = http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidDueDate):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "ledger operation failed", "path", r.URL.Path, "error", err)
		respond.Error(w, status, "internal error")
		return
	}
	respond.Error(w, status, err.Error())
}
