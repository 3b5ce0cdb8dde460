package quran

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels, matched by errors.Is against any *Error
var (
	// ErrTransport indicates the request did not complete successfully
	ErrTransport = errors.New("quran api: transport failure")
	// ErrDecoding indicates the response body did not match the expected shape
	ErrDecoding = errors.New("quran api: decoding failure")
	// ErrUnclassified indicates any other failure
	ErrUnclassified = errors.New("quran api: unclassified failure")
)

// ErrorKind is the classification of an *Error
type ErrorKind int

const (
	// KindUnclassified is the escape hatch for failures not otherwise classified
	KindUnclassified ErrorKind = iota
	// KindTransport covers connection errors, timeouts and non-success statuses
	KindTransport
	// KindDecoding covers bodies that do not match the expected schema
	KindDecoding
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecoding:
		return "decoding"
	default:
		return "unclassified"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindDecoding:
		return ErrDecoding
	default:
		return ErrUnclassified
	}
}

// Error is the only error type returned by API operations
type Error struct {
	Kind       ErrorKind
	Op         string // operation name, e.g. "GetEditions"
	Endpoint   string // endpoint relative to the base URL
	StatusCode int    // set when the server answered with a non-success status
	Message    string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("quran api %s error", e.Kind)
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Endpoint != "" {
		msg += " (" + e.Endpoint + ")"
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying transport or decoding error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel of the error
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsTransport checks if the request itself failed
func (e *Error) IsTransport() bool {
	return e.Kind == KindTransport
}

// IsDecoding checks if the server answered with an unexpected shape
func (e *Error) IsDecoding() bool {
	return e.Kind == KindDecoding
}

// IsRetryable reports whether repeating the request may succeed.
// Decoding failures never are: the client has to be fixed first.
func (e *Error) IsRetryable() bool {
	return e.Kind == KindTransport
}

// IsNotFound checks if the server answered 404
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// KindOf returns the classification of err. Errors that are not an *Error
// are unclassified.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnclassified
}

// NewError returns an unclassified error carrying msg
func NewError(op, msg string) *Error {
	return &Error{Kind: KindUnclassified, Op: op, Message: msg}
}

func transportError(op, endpoint string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Endpoint: endpoint, Err: err}
}

func statusError(op, endpoint string, code int, body string) *Error {
	return &Error{Kind: KindTransport, Op: op, Endpoint: endpoint, StatusCode: code, Message: body}
}

func decodingError(op, endpoint string, err error) *Error {
	return &Error{Kind: KindDecoding, Op: op, Endpoint: endpoint, Err: err}
}
