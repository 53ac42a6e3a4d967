package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mauv0809/fighter-franchise/internal/api"
)

// Report is the verdict on a raw transport result.
type Report struct {
	Valid bool
	// Empty marks a valid list with no elements. It is informational, never an error.
	Empty bool
	Error string
}

func invalid(format string, args ...any) Report {
	return Report{Error: fmt.Sprintf(format, args...)}
}

// List accepts a 200 response whose payload is a JSON array.
func List(raw api.RawResult) Report {
	if r, ok := checkTransport(raw); !ok {
		return r
	}
	if raw.StatusCode != http.StatusOK {
		return invalid("Unexpected status %d, expected %d", raw.StatusCode, http.StatusOK)
	}
	body := bytes.TrimSpace(raw.Body)
	if len(body) > 0 && !json.Valid(body) {
		return invalid("Invalid response: malformed JSON")
	}
	if kind := jsonKind(body); kind != "array" {
		return invalid("Invalid response: expected a list but received %s", kind)
	}
	if isEmptyArray(body) {
		return Report{Valid: true, Empty: true}
	}
	return Report{Valid: true}
}

// Single accepts a 200 response whose payload is a JSON object. A 404 lookup
// must have been turned into an empty result by the transport before this.
func Single(raw api.RawResult) Report {
	if r, ok := checkTransport(raw); !ok {
		return r
	}
	if raw.StatusCode != http.StatusOK {
		return invalid("Unexpected status %d, expected %d", raw.StatusCode, http.StatusOK)
	}
	body := bytes.TrimSpace(raw.Body)
	if len(body) > 0 && !json.Valid(body) {
		return invalid("Invalid response: malformed JSON")
	}
	if kind := jsonKind(body); kind != "object" {
		return invalid("Invalid response: expected a single record but received %s", kind)
	}
	return Report{Valid: true}
}

// Status accepts a 2xx response with exactly the wanted status code. It is
// used for mutations where the payload is not inspected.
func Status(raw api.RawResult, want int) Report {
	if r, ok := checkTransport(raw); !ok {
		return r
	}
	if raw.StatusCode != want {
		return invalid("Unexpected status %d, expected %d", raw.StatusCode, want)
	}
	return Report{Valid: true}
}

func checkTransport(raw api.RawResult) (Report, bool) {
	switch raw.Outcome {
	case api.OutcomeOK:
		return Report{}, true
	case api.OutcomeNotFound:
		return invalid("Unexpected not found response"), false
	default:
		msg := raw.Message
		if msg == "" {
			msg = api.ErrConnecting
		}
		return Report{Error: msg}, false
	}
}

// jsonKind names the top level JSON value without decoding it.
func jsonKind(body []byte) string {
	if len(body) == 0 {
		return "an empty body"
	}
	switch body[0] {
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "a string"
	case 'n':
		return "null"
	case 't', 'f':
		return "a boolean"
	default:
		return "a number"
	}
}

func isEmptyArray(body []byte) bool {
	inner := bytes.TrimSpace(body[1:])
	return len(inner) > 0 && inner[0] == ']'
}
