package result

import "encoding/json"

// Kind is the outcome of a store or transaction operation.
type Kind int

const (
	// KindOK carries shape-valid data.
	KindOK Kind = iota
	// KindEmpty is a valid query with no match, e.g. a 404 on a search.
	KindEmpty
	// KindErr is a transport, status or shape failure.
	KindErr
	// KindRejected is a business rule violation caught before any network call.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindEmpty:
		return "empty"
	case KindErr:
		return "error"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the envelope every store operation resolves to.
type Result[T any] struct {
	kind    Kind
	data    T
	message string
}

// None is the payload of operations that return no data.
type None struct{}

// OK is a successful result carrying data.
func OK[T any](data T) Result[T] {
	return Result[T]{kind: KindOK, data: data}
}

// OKWithMessage is OK carrying an informational note.
func OKWithMessage[T any](data T, message string) Result[T] {
	return Result[T]{kind: KindOK, data: data, message: message}
}

// Empty is a successful result with no match. data is the empty value callers
// should render, e.g. an empty slice or a nil pointer.
func Empty[T any](data T, message string) Result[T] {
	return Result[T]{kind: KindEmpty, data: data, message: message}
}

// Err is a transport, status or shape failure described by message.
func Err[T any](message string) Result[T] {
	return Result[T]{kind: KindErr, message: message}
}

// Rejected is a business rule violation described by message.
func Rejected[T any](message string) Result[T] {
	return Result[T]{kind: KindRejected, message: message}
}

// Done is the successful result of an operation without payload.
func Done() Result[None] {
	return OK(None{})
}

func (r Result[T]) Kind() Kind { return r.kind }

// Success reports whether the operation succeeded, with or without a match.
func (r Result[T]) Success() bool {
	return r.kind == KindOK || r.kind == KindEmpty
}

// Data returns the payload; ok is false when the operation failed.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.Success()
}

// Message is the error text for failures and the informational text otherwise.
func (r Result[T]) Message() string { return r.message }

// Recast keeps the failure of r for a result of another payload type.
// It must only be called on unsuccessful results.
func Recast[U, T any](r Result[T]) Result[U] {
	return Result[U]{kind: r.kind, message: r.message}
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON renders the {success, data, error} envelope.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{Success: r.Success()}
	if r.Success() {
		data := r.data
		env.Data = &data
		env.Message = r.message
	} else {
		env.Error = r.message
	}
	return json.Marshal(env)
}
