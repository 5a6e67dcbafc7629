package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common business-logic errors.
Repositories return plain sentinel errors; services translate them into
these AppErrors before they reach the handlers.
*/

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404. Ownership misses use this too: a row the caller does not
// own is reported as absent, never as forbidden.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict is the generic conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus rejects an operation not allowed in the entity's
// current status (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists is a 400 like the duplicate application: the
// signup form surfaces it inline.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Jobs & applications ---

// ErrJobClosed covers both an absent job and a job no longer accepting
// applications; the two are deliberately indistinguishable to callers.
var ErrJobClosed = New(
	CodeNotFound,
	"job",
	"Job not found or closed",
	http.StatusNotFound,
)

// ErrAlreadyApplied is a 400 rather than a 409: the marketplace clients
// surface it as a plain form error.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"Already applied to this job",
	http.StatusBadRequest,
)

// --- Complaints & verification ---

var ErrNoAssignedAgent = New(
	CodeInvalidOperation,
	"complaint",
	"No supervising agent assigned to this account",
	http.StatusBadRequest,
)

var ErrComplaintResolved = New(
	CodeInvalidStatus,
	"complaint",
	"Complaint is already resolved",
	http.StatusBadRequest,
)

var ErrUserNotPending = New(
	CodeInvalidStatus,
	"verification",
	"User is not awaiting verification",
	http.StatusBadRequest,
)
