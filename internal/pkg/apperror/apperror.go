package apperror

// AppError is a domain error that carries an HTTP status code, a stable
// machine-readable code, and an optional detail payload.
type AppError struct {
	Status  int            // HTTP status code (e.g., 400, 404)
	Code    string         // Machine-readable code (e.g., "RESOURCE_ALREADY_BOOKED")
	Message string         // User-facing error message
	Details map[string]any // Diagnostic detail, serialized as-is when present
	Err     error          // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error carrying the given detail payload.
// Package-level sentinels stay untouched and remain comparable with errors.Is.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is matches AppErrors by code, so a detail-enriched copy still satisfies
// errors.Is against its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
