// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Address errors
	ErrAddressInvalid = "ADDRESS_INVALID"
	ErrAddressRoot    = "ADDRESS_ROOT"

	// Command errors
	ErrCommandInvalid   = "COMMAND_INVALID"
	ErrCommandRejected  = "COMMAND_REJECTED"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Document errors
	ErrDocumentNotFound = "DOCUMENT_NOT_FOUND"
	ErrDocumentInvalid  = "DOCUMENT_INVALID"
	ErrDocumentExists   = "DOCUMENT_EXISTS"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Journal errors
	ErrJournalError   = "JOURNAL_ERROR"
	ErrEntryNotFound  = "ENTRY_NOT_FOUND"
	ErrJournalVersion = "JOURNAL_VERSION_MISMATCH"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Server errors
	ErrServeFailed   = "SERVE_FAILED"
	ErrListenInvalid = "LISTEN_INVALID"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Docs errors
	ErrDocsNotFound = "DOCS_NOT_FOUND"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnJournalRebuilt  = "JOURNAL_REBUILT"
	WarnNoSuggestion    = "NO_SUGGESTION"
	WarnJournalDisabled = "JOURNAL_DISABLED"
)
