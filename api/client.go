// Package api implements the read-only client for the Sigrid
// analysis-results REST API. The client fetches raw JSON; normalization into
// display models is the model package's job.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/model"
)

// DefaultBaseURL is the production Sigrid analysis-results API root.
const DefaultBaseURL = "https://sigrid-says.com/rest/analysis-results/api/v1"

const defaultTimeout = 30 * time.Second

// Credentials authenticate one customer system against the API. Customer
// and System are URL path segments and must already be lowercased; the
// settings layer takes care of that.
type Credentials struct {
	Token    string
	Customer string
	System   string
}

// Client fetches analysis results for one Sigrid system.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. for an on-premise Sigrid
// installation or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTracer sets an OpenTelemetry tracer for request spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// NewClient creates a Sigrid API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tracer:     noop.NewTracerProvider().Tracer("sigrid-api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SecurityFindings fetches the security-findings payload. The response is a
// bare JSON array; the decoded value is returned untyped for the normalizer.
func (c *Client) SecurityFindings(ctx context.Context, creds Credentials) (any, error) {
	return c.fetch(ctx, creds, fmt.Sprintf("security-findings/%s/%s", creds.Customer, creds.System))
}

// OshFindings fetches the open-source health payload: either a bare SBOM
// object or an {sbom: ...} wrapper, depending on the Sigrid version.
func (c *Client) OshFindings(ctx context.Context, creds Credentials) (any, error) {
	return c.fetch(ctx, creds, fmt.Sprintf("osh-findings/%s/%s", creds.Customer, creds.System))
}

// RefactoringCandidates fetches one category's refactoring-candidates
// payload, shaped as {refactoringCandidates: [...]}.
func (c *Client) RefactoringCandidates(ctx context.Context, creds Credentials, category model.Category) (any, error) {
	return c.fetch(ctx, creds,
		fmt.Sprintf("refactoring-candidates/%s/%s/%s", creds.Customer, creds.System, category))
}

// fetch performs one authenticated GET and decodes the JSON body. A non-2xx
// response is an error carrying "HTTP <status>: <statusText>" so the store
// can surface it verbatim.
func (c *Client) fetch(ctx context.Context, creds Credentials, endpoint string) (any, error) {
	url := c.baseURL + "/" + endpoint

	ctx, span := c.tracer.Start(ctx, "sigrid.fetch",
		trace.WithAttributes(attribute.String("http.url", url)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &HTTPError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return payload, nil
}

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.StatusText)
}
