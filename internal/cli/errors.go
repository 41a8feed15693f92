// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Project errors
	ErrProjectNotFound = "PROJECT_NOT_FOUND"
	ErrConfigInvalid   = "CONFIG_INVALID"

	// Generator errors
	ErrGeneratorUnknown = "GENERATOR_UNKNOWN"
	ErrNameInvalid      = "NAME_INVALID"
	ErrTemplateError    = "TEMPLATE_ERROR"
	ErrNothingToDestroy = "NOTHING_TO_DESTROY"

	// File errors
	ErrFileExists     = "FILE_EXISTS"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Task errors
	ErrTaskFailed = "TASK_FAILED"

	// Ledger errors
	ErrLedgerError = "LEDGER_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Docs errors
	ErrDocNotFound = "DOC_NOT_FOUND"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnLedgerUpdateFailed = "LEDGER_UPDATE_FAILED"
	WarnNoLedgerRecord     = "NO_LEDGER_RECORD"
	WarnRouteNotFound      = "ROUTE_NOT_FOUND"
	WarnCountMismatch      = "COUNT_MISMATCH"
)
