package warmtransfer

import "fmt"

// ValidationError indicates that a contact flow invoked the function
// without the parameters it requires or with values it cannot use.
type ValidationError struct {
	// Field is the event attribute or contact flow parameter at fault.
	Field string
	// Reason describes what was wrong with the value.
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid contact flow input (%s): %s", e.Field, e.Reason)
}

// APIError indicates a failed exchange with the warm transfer API.
// StatusCode is zero when the request never produced a response.
type APIError struct {
	StatusCode int
	Reason     string
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transfer api request failed (%d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("transfer api request failed: %s", e.Reason)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
