package api

import (
	"encoding/json"
	"io"
)

// Resource names one of the REST collections exposed by the API.
type Resource string

const (
	ResourceAthlete Resource = "athlete"
	ResourceVenue   Resource = "venue"
	ResourceFinance Resource = "finance"
)

// Category selects the folder an uploaded image is stored under.
type Category string

const (
	CategoryAthlete Category = "athlete"
	CategoryVenue   Category = "venue"
)

// Valid reports whether the category is one the upload endpoint accepts.
func (c Category) Valid() bool {
	return c == CategoryAthlete || c == CategoryVenue
}

// Outcome classifies how a request ended before its payload is inspected.
type Outcome int

const (
	// OutcomeOK means the server answered with a 2xx status.
	OutcomeOK Outcome = iota
	// OutcomeNotFound is a 404 on a lookup or name search. It is a valid, empty answer.
	OutcomeNotFound
	// OutcomeHTTPError is any other non-2xx status.
	OutcomeHTTPError
	// OutcomeTransportError means no response was received at all.
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// ErrConnecting is the message reported for every transport-level failure.
const ErrConnecting = "Error connecting to database"

// RawResult is the uniform shape every transport call is normalized into.
type RawResult struct {
	Outcome    Outcome
	StatusCode int
	Body       json.RawMessage
	Message    string
}

// Success reports whether the call produced something the caller may trust:
// a 2xx answer or an expected 404.
func (r RawResult) Success() bool {
	return r.Outcome == OutcomeOK || r.Outcome == OutcomeNotFound
}

// Image is a file to be uploaded. Content is read once.
type Image struct {
	Name    string
	Content io.Reader
}

// UploadResult is the response of the image upload endpoint.
type UploadResult struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	Error    string `json:"error,omitempty"`
}
