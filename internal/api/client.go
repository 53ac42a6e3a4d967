package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 10 << 20
	uploadResource = "upload"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// APIClient talks JSON to the franchise REST API and implements the Transport interface.
type APIClient struct {
	httpClient httpDoer
	metrics    metrics.Metrics
	BaseURL    string
}

// NewClient creates a new API client.
func NewClient(cfg Config, metrics metrics.Metrics) Transport {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &APIClient{
		httpClient: httpClient,
		metrics:    metrics,
		BaseURL:    normalizeBaseURL(cfg.BaseURL),
	}
}

// Ensure APIClient implements the Transport interface.
var _ Transport = (*APIClient)(nil)

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// Get fetches the full collection of a resource.
func (c *APIClient) Get(ctx context.Context, resource Resource) RawResult {
	return c.do(ctx, resource, http.MethodGet, "/"+string(resource), nil, "", "")
}

// GetByID fetches a single record. A 404 is reported as a valid empty result.
func (c *APIClient) GetByID(ctx context.Context, resource Resource, id int) RawResult {
	path := fmt.Sprintf("/%s/%d", resource, id)
	notFound := fmt.Sprintf("No %s found with id %d", resource, id)
	return c.do(ctx, resource, http.MethodGet, path, nil, "", notFound)
}

// GetByName runs the server side name search. A 404 is reported as a valid empty result.
func (c *APIClient) GetByName(ctx context.Context, resource Resource, query string) RawResult {
	path := fmt.Sprintf("/%s/byname/%s", resource, url.PathEscape(query))
	notFound := fmt.Sprintf("No %s found matching %q", resource, query)
	return c.do(ctx, resource, http.MethodGet, path, nil, "", notFound)
}

// Post creates a record from body. The body is encoded, never modified.
func (c *APIClient) Post(ctx context.Context, resource Resource, body any) RawResult {
	return c.send(ctx, resource, http.MethodPost, body)
}

// Put replaces a record with body.
func (c *APIClient) Put(ctx context.Context, resource Resource, body any) RawResult {
	return c.send(ctx, resource, http.MethodPut, body)
}

// Delete removes a record by id.
func (c *APIClient) Delete(ctx context.Context, resource Resource, id int) RawResult {
	path := fmt.Sprintf("/%s/%d", resource, id)
	return c.do(ctx, resource, http.MethodDelete, path, nil, "", "")
}

func (c *APIClient) send(ctx context.Context, resource Resource, method string, body any) RawResult {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to encode request body", "resource", resource, "method", method, "error", err)
		return RawResult{Outcome: OutcomeHTTPError, Message: fmt.Sprintf("Failed to encode %s: %v", resource, err)}
	}
	return c.do(ctx, resource, method, "/"+string(resource), bytes.NewReader(payload), "application/json", "")
}

// do executes a request and normalizes the answer. notFound is non-empty for
// lookups, where a 404 is an expected business outcome.
func (c *APIClient) do(ctx context.Context, resource Resource, method, path string, body io.Reader, contentType, notFound string) RawResult {
	start := time.Now()
	res := c.roundTrip(ctx, method, c.BaseURL+path, body, contentType)

	if res.Outcome == OutcomeHTTPError && res.StatusCode == http.StatusNotFound && notFound != "" {
		res = RawResult{Outcome: OutcomeNotFound, StatusCode: http.StatusNotFound, Message: notFound}
	}

	if c.metrics != nil {
		c.metrics.IncAPIRequests(string(resource), method, res.Outcome.String())
		c.metrics.ObserveAPIDuration(string(resource), time.Since(start).Seconds())
	}
	log.Debug("API request finished", "method", method, "path", path, "status", res.StatusCode, "outcome", res.Outcome)
	return res
}

func (c *APIClient) roundTrip(ctx context.Context, method, url string, body io.Reader, contentType string) RawResult {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		log.Error("Failed to create request", "method", method, "url", url, "error", err)
		return RawResult{Outcome: OutcomeTransportError, Message: ErrConnecting}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to execute request", "method", method, "url", url, "error", err)
		return RawResult{Outcome: OutcomeTransportError, Message: ErrConnecting}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Error("Failed to read response body", "method", method, "url", url, "error", err)
		return RawResult{Outcome: OutcomeTransportError, StatusCode: resp.StatusCode, Message: ErrConnecting}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("Received non-2xx HTTP status from API", "method", method, "url", url, "status", resp.StatusCode, "body", strings.TrimSpace(string(payload)))
		return RawResult{
			Outcome:    OutcomeHTTPError,
			StatusCode: resp.StatusCode,
			Body:       payload,
			Message:    "Request failed with status " + strconv.Itoa(resp.StatusCode),
		}
	}
	return RawResult{Outcome: OutcomeOK, StatusCode: resp.StatusCode, Body: payload}
}

// UploadImage posts image as multipart form field "file" and returns the
// server assigned file name.
func (c *APIClient) UploadImage(ctx context.Context, category Category, image Image) UploadResult {
	if !category.Valid() {
		return UploadResult{Error: fmt.Sprintf("Unknown image category %q", category)}
	}
	if image.Content == nil {
		return UploadResult{Error: "No image supplied"}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filepath.Base(image.Name))
	if err != nil {
		return UploadResult{Error: fmt.Sprintf("Failed to prepare upload: %v", err)}
	}
	if _, err := io.Copy(part, image.Content); err != nil {
		return UploadResult{Error: fmt.Sprintf("Failed to read image: %v", err)}
	}
	if err := form.Close(); err != nil {
		return UploadResult{Error: fmt.Sprintf("Failed to prepare upload: %v", err)}
	}

	start := time.Now()
	res := c.roundTrip(ctx, http.MethodPost, c.BaseURL+"/ImageUpload/"+string(category), &buf, form.FormDataContentType())
	if c.metrics != nil {
		c.metrics.IncAPIRequests(uploadResource, http.MethodPost, res.Outcome.String())
		c.metrics.ObserveAPIDuration(uploadResource, time.Since(start).Seconds())
	}
	return decodeUpload(res)
}

func decodeUpload(res RawResult) UploadResult {
	if res.Outcome == OutcomeTransportError {
		return UploadResult{Error: ErrConnecting}
	}

	var out UploadResult
	if len(res.Body) > 0 {
		if err := json.Unmarshal(res.Body, &out); err != nil && res.Outcome == OutcomeOK {
			log.Error("Failed to decode upload response", "error", err)
			return UploadResult{Error: "Invalid upload response"}
		}
	}

	if res.Outcome != OutcomeOK {
		if out.Error == "" {
			out.Error = "Upload failed with status " + strconv.Itoa(res.StatusCode)
		}
		out.Success = false
		out.FileName = ""
		return out
	}
	if !out.Success {
		if out.Error == "" {
			out.Error = "Upload was not accepted"
		}
		return out
	}
	if out.FileName == "" {
		return UploadResult{Error: "Upload response is missing the file name"}
	}
	return out
}
