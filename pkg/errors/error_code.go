package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 102
	ErrCodeInvalidWindowSize    ErrorCode = 103
	ErrCodeInvalidType          ErrorCode = 104

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound         ErrorCode = 200
	ErrCodeDataSourceNotReady   ErrorCode = 201
	ErrCodeQueryFailed          ErrorCode = 202
	ErrCodeMalformedData        ErrorCode = 203
	ErrCodeEmptySeries          ErrorCode = 204

	// Encoding errors (300-399)
	ErrCodeEncodingFailed ErrorCode = 300

	// Evaluation errors (400-499)
	ErrCodeEvaluationFailed ErrorCode = 400
	ErrCodeEmptyHistory     ErrorCode = 401

	// Chart errors (500-599)
	ErrCodeChartRenderFailed ErrorCode = 500
	ErrCodeChartWriteFailed  ErrorCode = 501
)
