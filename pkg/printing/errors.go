package printing

import "errors"

// Kind classifies a printing failure
type Kind int

const (
	// KindPrint is a job-level failure with a free-text diagnostic
	KindPrint Kind = iota + 1
	// KindPlatform means the capability is not wired up for this platform
	KindPlatform
	// KindInit means the native printing subsystem could not be initialized
	KindInit
	// KindNoPrinter means no printer could be selected
	KindNoPrinter
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindPrint:
		return "print"
	case KindPlatform:
		return "platform"
	case KindInit:
		return "init"
	case KindNoPrinter:
		return "no_printer"
	default:
		return "unknown"
	}
}

// Error is the failure outcome of every Printer operation
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindPlatform:
		msg = "platform error: " + e.Message
	case KindInit:
		msg = "initialization error: " + e.Message
	case KindNoPrinter:
		msg = "no printer available"
		if e.Message != "" {
			msg += ": " + e.Message
		}
	default:
		msg = "failed to print: " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is matching by kind
var (
	ErrPrint     = &Error{Kind: KindPrint}
	ErrPlatform  = &Error{Kind: KindPlatform}
	ErrInit      = &Error{Kind: KindInit}
	ErrNoPrinter = &Error{Kind: KindNoPrinter}
)

// NewPrintError creates a KindPrint error
func NewPrintError(message string, cause error) *Error {
	return &Error{Kind: KindPrint, Message: message, Cause: cause}
}

// NewPlatformError creates a KindPlatform error
func NewPlatformError(message string, cause error) *Error {
	return &Error{Kind: KindPlatform, Message: message, Cause: cause}
}

// NewInitError creates a KindInit error
func NewInitError(message string, cause error) *Error {
	return &Error{Kind: KindInit, Message: message, Cause: cause}
}

// NewNoPrinterError creates a KindNoPrinter error
func NewNoPrinterError(message string) *Error {
	return &Error{Kind: KindNoPrinter, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or 0
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}
