package session

import (
	"errors"
	"fmt"
	"time"
)

// FaultKind names an operational fault a collection run can raise.
type FaultKind string

const (
	FaultCollect              FaultKind = "collect_error"
	FaultAccessDenied         FaultKind = "access_denied"
	FaultTemporaryUnavailable FaultKind = "temporary_unavailable"
	FaultConnectionFailure    FaultKind = "connection_failure"
	FaultParameter            FaultKind = "parameter_error"
)

// ErrNotValidated is returned when Collect runs before a successful Validate.
var ErrNotValidated = errors.New("session not validated")

// Fault is a named, recoverable-by-caller condition. It always carries the
// timestamp at which it was raised. Parameter faults may name the offending
// configuration field.
type Fault struct {
	Kind      FaultKind
	Field     string
	Message   string
	Timestamp time.Time
}

func (f *Fault) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("%s [%s]: %s", f.Kind, f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// IsFault reports whether err is a Fault of the given kind.
func IsFault(err error, kind FaultKind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == kind
}

func newFault(kind FaultKind, message string, now time.Time) *Fault {
	return &Fault{Kind: kind, Message: message, Timestamp: now}
}

// DefectMarker is the substring carried by every simulated-defect panic so
// host crash-handling can tell them apart from genuine defects.
const DefectMarker = "simulated defect"

func raiseDefect(where string) {
	panic(fmt.Sprintf("%s in %s", DefectMarker, where))
}

// Severity grades a validation finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a non-fatal, field-scoped validation message. Findings are
// accumulated and returned from Validate, never raised.
type Finding struct {
	Severity Severity
	Field    string
	Message  string
}

func errorFinding(field, message string) Finding {
	return Finding{Severity: SeverityError, Field: field, Message: message}
}

func warningFinding(field, message string) Finding {
	return Finding{Severity: SeverityWarning, Field: field, Message: message}
}
