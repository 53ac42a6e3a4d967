package validate

import (
	"testing"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/stretchr/testify/assert"
)

func ok(status int, body string) api.RawResult {
	return api.RawResult{Outcome: api.OutcomeOK, StatusCode: status, Body: []byte(body)}
}

func TestList(t *testing.T) {
	tests := []struct {
		name      string
		raw       api.RawResult
		wantValid bool
		wantEmpty bool
	}{
		{name: "array", raw: ok(200, `[{"id":1}]`), wantValid: true},
		{name: "empty array", raw: ok(200, " [ ] "), wantValid: true, wantEmpty: true},
		{name: "object where list expected", raw: ok(200, `{"id":1}`)},
		{name: "null", raw: ok(200, `null`)},
		{name: "empty body", raw: ok(200, ``)},
		{name: "malformed", raw: ok(200, `[{"id":`)},
		{name: "wrong status", raw: ok(201, `[]`)},
		{name: "transport failure", raw: api.RawResult{Outcome: api.OutcomeTransportError, Message: api.ErrConnecting}},
		{name: "not found", raw: api.RawResult{Outcome: api.OutcomeNotFound, StatusCode: 404}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := List(tt.raw)
			assert.Equal(t, tt.wantValid, r.Valid)
			assert.Equal(t, tt.wantEmpty, r.Empty)
			if tt.wantValid {
				assert.Empty(t, r.Error)
			} else {
				assert.NotEmpty(t, r.Error)
			}
		})
	}
}

func TestList_ObjectMessage(t *testing.T) {
	r := List(ok(200, `{"id":1}`))
	assert.Equal(t, "Invalid response: expected a list but received object", r.Error)
}

func TestSingle(t *testing.T) {
	assert.True(t, Single(ok(200, `{"id":1}`)).Valid)
	assert.False(t, Single(ok(200, `null`)).Valid)
	assert.False(t, Single(ok(200, ``)).Valid)
	assert.False(t, Single(ok(200, `[{"id":1}]`)).Valid)
	assert.False(t, Single(ok(204, `{"id":1}`)).Valid)

	r := Single(api.RawResult{Outcome: api.OutcomeHTTPError, StatusCode: 500, Message: "Request failed with status 500"})
	assert.Equal(t, "Request failed with status 500", r.Error)
}

func TestStatus(t *testing.T) {
	assert.True(t, Status(ok(201, ``), 201).Valid)
	assert.True(t, Status(ok(204, ``), 204).Valid)

	r := Status(ok(200, `{}`), 201)
	assert.False(t, r.Valid)
	assert.Equal(t, "Unexpected status 200, expected 201", r.Error)

	r = Status(api.RawResult{Outcome: api.OutcomeTransportError}, 204)
	assert.Equal(t, api.ErrConnecting, r.Error)
}
