package signal

// Common error codes
const (
	ErrCodeNoSignals    = "NO_SIGNALS"
	ErrCodeGeneration   = "GENERATION_FAILED"
	ErrCodeBufferLength = "BUFFER_LENGTH_MISMATCH"
	ErrCodeIndex        = "INDEX_OUT_OF_RANGE"
)

// SignalError represents synthesis-related errors
type SignalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *SignalError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SignalError) Unwrap() error {
	return e.Cause
}

// Is matches any SignalError carrying the same code, so sentinel values
// compose with errors.Is across wrapping.
func (e *SignalError) Is(target error) bool {
	t, ok := target.(*SignalError)
	return ok && t.Code == e.Code
}

// NewSignalError creates a new signal error
func NewSignalError(code, message string, cause error) *SignalError {
	return &SignalError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrNoSignals signals that a mix was requested for an empty descriptor
// collection. Distinct from a silent signal, which mixes fine and only
// degenerates later at conditioning.
var ErrNoSignals = &SignalError{
	Code:    ErrCodeNoSignals,
	Message: "descriptor collection is empty",
}
