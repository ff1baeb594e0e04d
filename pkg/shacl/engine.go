package shacl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wep/pkg/logger"
)

// EngineClient validates through an external SHACL engine over HTTP.
type EngineClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewEngineClientParams contains configuration for creating an EngineClient.
type NewEngineClientParams struct {
	Endpoint string
	Timeout  time.Duration
}

// NewEngineClient creates a Validator backed by a SHACL engine endpoint.
func NewEngineClient(params NewEngineClientParams) *EngineClient {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EngineClient{
		endpoint:   params.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ Validator = (*EngineClient)(nil)

type engineRequest struct {
	DataGraph   string `json:"dataGraph"`
	ShapesGraph string `json:"shapesGraph"`
}

type engineResponse struct {
	Conforms bool   `json:"conforms"`
	Text     string `json:"text"`
	Report   string `json:"report"`
}

// Validate posts both graphs to the engine and wraps its verdict in a
// Report with a freshly minted ID. An unreachable engine is an error;
// callers decide whether that is fatal.
func (c *EngineClient) Validate(ctx context.Context, dataGraph, shapesGraph string) (*Report, error) {
	payload, err := json.Marshal(engineRequest{
		DataGraph:   dataGraph,
		ShapesGraph: shapesGraph,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("SHACL engine unreachable", "endpoint", c.endpoint, "err", err)
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shacl engine returned status %d", res.StatusCode)
	}

	var decoded engineResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	return &Report{
		ID:       mintReportID(),
		Conforms: decoded.Conforms,
		Text:     decoded.Text,
		Graph:    decoded.Report,
	}, nil
}
