package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/cache"
	"github.com/mauv0809/fighter-franchise/internal/catalog"
	"github.com/mauv0809/fighter-franchise/internal/config"
	"github.com/mauv0809/fighter-franchise/internal/database"
	"github.com/mauv0809/fighter-franchise/internal/entity"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	server "github.com/mauv0809/fighter-franchise/internal/http"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/notifier"
	"github.com/mauv0809/fighter-franchise/internal/venue"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	url       string
	publisher *events.Mock
	notifier  *notifier.Mock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("API_BASE_URL", "")
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("SLACK_CHANNEL_ID", "")

	db, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv := server.NewServer(catalog.New(db), cache.Nop{}, metrics.NewMock(),
		metrics.NewMetricsHandler(prometheus.NewRegistry()), config.Config{UploadDir: t.TempDir()})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &harness{url: ts.URL, publisher: events.NewMock(), notifier: notifier.NewMock()}
}

// run executes one CLI invocation with a fresh set of stores.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{publisher: h.publisher, notifier: h.notifier}
	defer a.close()

	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--api", h.url}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("image-bytes"), 0o644))
	return path
}

func TestAthletesCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "athletes", "list")
	assert.Contains(t, out, "No athletes found.")

	out = h.mustRun(t, "athletes", "create", "--name", "Apollo", "--gender", "M", "--price", "500", "--image", writeImage(t, "apollo.png"))
	assert.Contains(t, out, `Athlete "Apollo" created.`)
	assert.Contains(t, out, "Apollo")
	assert.Contains(t, out, "500")

	out = h.mustRun(t, "athletes", "get", "1")
	assert.Contains(t, out, "Apollo")

	out = h.mustRun(t, "athletes", "get", "99")
	assert.Contains(t, out, "No athlete with id 99.")

	out = h.mustRun(t, "athletes", "list", "--search", "zzz")
	assert.Contains(t, out, "No athletes match the search.")

	out = h.mustRun(t, "athletes", "update", "1", "--price", "750.50")
	assert.Contains(t, out, "Athlete 1 updated.")

	out = h.mustRun(t, "--json", "athletes", "list", "--search", "apo")
	var listed []athlete.Athlete
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "750.5", listed[0].Price.String())
	assert.NotEmpty(t, listed[0].Image, "image kept when update uploads none")

	out = h.mustRun(t, "athletes", "delete", "1")
	assert.Contains(t, out, "Athlete 1 deleted.")
	assert.Contains(t, out, "No athletes found.")
}

func TestAthletesCommands_Rejections(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing gender", []string{"athletes", "create", "--name", "Apollo", "--image", writeImage(t, "a.png")}, "rejected: Gender is required"},
		{"missing image", []string{"athletes", "create", "--name", "Apollo", "--gender", "M"}, "rejected: An image is required"},
		{"invalid price", []string{"athletes", "create", "--name", "Apollo", "--gender", "M", "--price", "lots"}, "invalid price"},
		{"negative price", []string{"athletes", "create", "--name", "Apollo", "--gender", "M", "--price=-1", "--image", writeImage(t, "b.png")}, "rejected: Price cannot be negative"},
		{"bad id", []string{"athletes", "get", "abc"}, `invalid id "abc"`},
		{"unknown athlete", []string{"athletes", "update", "7", "--name", "x"}, "no athlete with id 7"},
		{"missing file", []string{"venues", "create", "--name", "x", "--image", "/does/not/exist.png"}, "failed to open image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVenuesCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "venues", "create", "--name", "Spectrum", "--capacity", "18000", "--image", writeImage(t, "spectrum.jpg"))
	assert.Contains(t, out, `Venue "Spectrum" created.`)

	h.mustRun(t, "venues", "update", "1", "--capacity", "19000")
	out = h.mustRun(t, "--json", "venues", "get", "1")
	var v venue.Venue
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, 19000, v.Capacity)
	assert.NotEmpty(t, v.Image)

	_, err := h.run(t, "venues", "create", "--name", "Nowhere", "--capacity=-5", "--image", writeImage(t, "n.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Capacity cannot be negative")

	out = h.mustRun(t, "venues", "delete", "1")
	assert.Contains(t, out, "No venues found.")
}

func TestFinanceCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "finance", "show")
	assert.Contains(t, out, "No finance ledger found.")

	_, err := h.run(t, "finance", "loan", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No finance ledger loaded")

	h.mustRun(t, "finance", "init")
	out = h.mustRun(t, "finance", "loan", "1000")
	assert.Contains(t, out, "Borrowed 1000.")

	h.mustRun(t, "athletes", "create", "--name", "Apollo", "--gender", "M", "--price", "500", "--image", writeImage(t, "apollo.png"))
	h.mustRun(t, "athletes", "create", "--name", "Drago", "--gender", "M", "--price", "5000", "--image", writeImage(t, "drago.png"))

	out = h.mustRun(t, "finance", "purchase", "1")
	assert.Contains(t, out, "Purchased Apollo for 500.")

	_, err = h.run(t, "finance", "purchase", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Apollo is already purchased")

	_, err = h.run(t, "finance", "purchase", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected: Insufficient funds")

	_, err = h.run(t, "finance", "loan", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Loan amount must be a positive number")

	out = h.mustRun(t, "finance", "sell", "1")
	assert.Contains(t, out, "Sold Apollo for 500.")

	out = h.mustRun(t, "--json", "finance", "show")
	var l finance.Ledger
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "1000", l.MoneyLeft.String())
	assert.Equal(t, "500", l.MoneySpent.String())
	assert.Equal(t, "1000", l.Debt.String())

	published := h.publisher.Published()
	require.Len(t, published, 3)
	assert.Equal(t, events.KindLoan, published[0].Kind)
	assert.Equal(t, events.KindPurchase, published[1].Kind)
	assert.Equal(t, "Apollo", published[1].AthleteName)
	assert.Equal(t, events.KindSale, published[2].Kind)
	assert.Len(t, h.notifier.Calls(), 3)
}

func TestUnreachableAPI(t *testing.T) {
	a := &app{publisher: events.NewMock(), notifier: notifier.NewMock()}
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("SLACK_BOT_TOKEN", "")

	cmd := newRootCmd(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--api", "http://127.0.0.1:1", "athletes", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), api.ErrConnecting)
}

func TestLoanAmountCheckedBeforeLoading(t *testing.T) {
	a := &app{publisher: events.NewMock(), notifier: notifier.NewMock()}
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("SLACK_BOT_TOKEN", "")

	cmd := newRootCmd(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--api", "http://127.0.0.1:1", "finance", "loan", "abc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "rejected: Loan amount must be a positive number", err.Error())
}

func TestRenderState(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out}

	t.Run("loading", func(t *testing.T) {
		out.Reset()
		err := renderState(a, entity.State[venue.Venue]{IsLoading: true}, venueColumns)
		require.NoError(t, err)
		assert.Equal(t, "Loading venues...\n", out.String())
	})

	t.Run("error", func(t *testing.T) {
		out.Reset()
		err := renderState(a, entity.State[venue.Venue]{ErrorMessage: "boom", Items: []venue.Venue{{ID: 1}}}, venueColumns)
		require.EqualError(t, err, "boom")
		assert.Empty(t, out.String())
	})

	t.Run("search results replace items", func(t *testing.T) {
		out.Reset()
		st := entity.State[venue.Venue]{
			Items:         []venue.Venue{{ID: 1, Name: "Garden"}},
			SearchResults: []venue.Venue{{ID: 2, Name: "Spectrum"}},
			SearchActive:  true,
		}
		require.NoError(t, renderState(a, st, venueColumns))
		assert.Contains(t, out.String(), "Spectrum")
		assert.NotContains(t, out.String(), "Garden")
	})

	t.Run("empty json is an array", func(t *testing.T) {
		out.Reset()
		jsonApp := &app{out: &out, json: true}
		require.NoError(t, renderState(jsonApp, entity.State[venue.Venue]{HasInitialized: true}, venueColumns))
		assert.JSONEq(t, `[]`, out.String())
	})
}
