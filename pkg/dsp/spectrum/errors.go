package spectrum

// Common error codes
const (
	ErrCodeDegenerate     = "DEGENERATE_SPECTRUM"
	ErrCodeBandIndex      = "BAND_INDEX_OUT_OF_RANGE"
	ErrCodeTransformInput = "TRANSFORM_INPUT_INVALID"
)

// SpectrumError represents spectral-analysis errors
type SpectrumError struct {
	Code    string
	Message string
	Cause   error
}

func (e *SpectrumError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SpectrumError) Unwrap() error {
	return e.Cause
}

// Is matches any SpectrumError carrying the same code.
func (e *SpectrumError) Is(target error) bool {
	t, ok := target.(*SpectrumError)
	return ok && t.Code == e.Code
}

// NewSpectrumError creates a new spectrum error
func NewSpectrumError(code, message string, cause error) *SpectrumError {
	return &SpectrumError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrDegenerate signals that every magnitude was zero, so no finite decibel
// peak exists to normalize against. Callers decide how to render the
// "no signal" state.
var ErrDegenerate = &SpectrumError{
	Code:    ErrCodeDegenerate,
	Message: "spectrum has no finite magnitude to normalize against",
}

// ErrBandIndex signals a band lookup outside [0, bands.Count()).
var ErrBandIndex = &SpectrumError{
	Code:    ErrCodeBandIndex,
	Message: "band index out of range",
}
