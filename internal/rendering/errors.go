package rendering

import "fmt"

// EngineUnavailableError indicates the external HTML-to-PDF engine could
// not be located. It is checked explicitly before rendering starts so a
// missing engine is reported instead of silently swallowed.
type EngineUnavailableError struct {
	Message string
	Cause   error
}

func (e *EngineUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render engine unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render engine unavailable: %s", e.Message)
}

func (e *EngineUnavailableError) Unwrap() error {
	return e.Cause
}

// EngineFailureError indicates the external HTML-to-PDF engine failed,
// timed out, or returned empty output.
type EngineFailureError struct {
	Message string
	Cause   error
}

func (e *EngineFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render engine failure: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render engine failure: %s", e.Message)
}

func (e *EngineFailureError) Unwrap() error {
	return e.Cause
}
