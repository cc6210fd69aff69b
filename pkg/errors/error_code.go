package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidSection       ErrorCode = 102
	ErrCodeInvalidDate          ErrorCode = 103
	ErrCodeMissingParameter     ErrorCode = 104

	// Configuration load errors (200-299)
	ErrCodeConfigNotFound    ErrorCode = 200
	ErrCodeConfigParseFailed ErrorCode = 201
	ErrCodeEntrySkipped      ErrorCode = 202

	// Lookup errors (300-399)
	ErrCodeSessionNotFound   ErrorCode = 300
	ErrCodeCommodityNotFound ErrorCode = 301
	ErrCodeContractNotFound  ErrorCode = 302
	ErrCodeTemplateNotFound  ErrorCode = 303

	// Calendar errors (400-499)
	ErrCodeNoSessionBound ErrorCode = 400
	ErrCodeBoundaryFailed ErrorCode = 401
)
