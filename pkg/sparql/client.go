// Package sparql implements a client for a Fuseki-compatible triple store:
// SELECT and CONSTRUCT reads, INSERT DATA writes with basic auth, liveness
// pings, literal escaping, and identifier minting for new graph nodes.
package sparql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wep/pkg/logger"
)

// ErrUnavailable wraps network and protocol failures while reading from the
// store. Callers can treat it as a degraded-store condition.
var ErrUnavailable = errors.New("triple store unavailable")

const pingTimeout = 5 * time.Second

// Client issues read and write requests against one dataset of a triple
// store. It holds no state besides its endpoints and credentials; a Client
// is safe for concurrent use.
//
// A Client should be created using NewClient and injected into whatever
// component needs store access.
type Client struct {
	baseURL        string
	queryEndpoint  string
	updateEndpoint string

	username string
	password string

	httpClient *http.Client
}

// NewClientParams contains configuration for creating a Client.
//
// BaseURL is the store root (for example http://fuseki:3030) and Dataset the
// dataset name under it. Username and Password authenticate update requests.
type NewClientParams struct {
	BaseURL  string
	Dataset  string
	Username string
	Password string
	Timeout  time.Duration
}

// NewClient creates a Client for the given store and dataset. The read
// endpoint is {base}/{dataset}/sparql and the write endpoint
// {base}/{dataset}/update.
func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	base := strings.TrimRight(params.BaseURL, "/")
	return &Client{
		baseURL:        base,
		queryEndpoint:  base + "/" + params.Dataset + "/sparql",
		updateEndpoint: base + "/" + params.Dataset + "/update",
		username:       params.Username,
		password:       params.Password,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// NewEndpointClient creates a read-only Client for a bare SPARQL endpoint,
// such as a public knowledge base. Updates against such a client always
// fail; only Select, SelectRaw and Construct are meaningful.
func NewEndpointClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(endpoint, "/"),
		queryEndpoint: endpoint,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured store root, for health reporting.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks store liveness via the ping endpoint with a short timeout.
// It returns false on any failure and never returns an error; an
// unreachable store is a reportable condition, not a fatal one.
func (c *Client) Ping(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pingCtx, http.MethodGet, c.baseURL+"/$/ping", nil)
	if err != nil {
		return false
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

// Select executes a SELECT query and decodes the variable bindings.
// Failures propagate wrapped in ErrUnavailable.
func (c *Client) Select(ctx context.Context, query string) (Results, error) {
	raw, err := c.SelectRaw(ctx, query)
	if err != nil {
		return Results{}, err
	}
	return decodeResults(raw)
}

// SelectRaw executes a SELECT query and returns the undecoded
// application/sparql-results+json body. Used by the raw query passthrough.
func (c *Client) SelectRaw(ctx context.Context, query string) (json.RawMessage, error) {
	body := url.Values{"query": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryEndpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: query returned status %d", ErrUnavailable, res.StatusCode)
	}
	return data, nil
}

// Construct executes a CONSTRUCT query and returns the serialized graph in
// the requested format ("turtle", "xml" or "n3"; anything else falls back
// to turtle).
func (c *Client) Construct(ctx context.Context, query string, format string) (string, error) {
	accept := "text/turtle"
	switch format {
	case "xml":
		accept = "application/rdf+xml"
	case "n3":
		accept = "text/n3"
	}

	body := url.Values{"query": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryEndpoint, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", accept)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: construct returned status %d", ErrUnavailable, res.StatusCode)
	}
	return string(data), nil
}

// Update executes a SPARQL update against the write endpoint with basic
// auth. It returns true only when the store acknowledged the whole update;
// every failure is reported as false, never as an error, so a false return
// is the sole failure signal for writes.
func (c *Client) Update(ctx context.Context, update string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.updateEndpoint, strings.NewReader(update))
	if err != nil {
		logger.Error("Failed to build update request", "err", err)
		return false
	}
	req.Header.Set("Content-Type", "application/sparql-update")
	req.SetBasicAuth(c.username, c.password)

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Store update failed", "err", err)
		return false
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	default:
		logger.Error("Store rejected update", "status", res.StatusCode)
		return false
	}
}
