package controls

import "fmt"

// ErrorKind is the closed set of resolution failures. Every resolution
// boundary returns a (value, Error) pair; only construction-time contract
// violations panic.
type ErrorKind int

const (
	NoError ErrorKind = iota
	ConfirmationInputNotEqualError
	AbortedError
	ProcessingValueError
	ConvertingError
	RequiredError
	ExitError
)

// Error carries the failure kind, the parameter that triggered it and an
// optional underlying message.
type Error struct {
	Kind    ErrorKind
	Trigger string
	Detail  string
}

// Ok is the no-error value.
var Ok = Error{}

// IsError reports whether the value describes an actual failure.
func (e Error) IsError() bool { return e.Kind != NoError }

// Message renders the single-line human-readable form. Aborted and exit
// signals render empty: they are reported silently.
func (e Error) Message() string {
	switch e.Kind {
	case NoError:
		return ""
	case ConfirmationInputNotEqualError:
		return fmt.Sprintf("Confirmation input (%s) is not equal", e.Trigger)
	case AbortedError:
		return ""
	case ProcessingValueError:
		return fmt.Sprintf("Processing value error (%s): %s", e.Trigger, e.Detail)
	case ConvertingError:
		return fmt.Sprintf("Converting error (%s): %s", e.Trigger, e.Detail)
	case RequiredError:
		return fmt.Sprintf("Required error (%s): %s is empty", e.Trigger, e.Detail)
	case ExitError:
		return ""
	}
	panic(fmt.Sprintf("controls: no message for error kind %d", e.Kind))
}
