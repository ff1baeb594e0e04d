package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wep/pkg/sparql"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	// Spotlight input is capped; longer bodies are annotated on their head.
	maxAnnotateInput = 1000
	minAnnotateInput = 20

	maxAnnotations   = 15
	maxCrossRefInput = 3

	annotateConfidence = "0.3"
	annotateSupport    = "10"
)

// DBpediaClient implements Enricher against the public DBpedia and
// Wikidata services. Spotlight calls are rate limited and every request
// carries its own short timeout so a slow collaborator can never stall
// article creation.
type DBpediaClient struct {
	spotlightURL string
	httpClient   *http.Client

	kb       *sparql.Client
	wikidata *sparql.Client

	limiter    *rate.Limiter
	lookupSem  *semaphore.Weighted
	maxRetries int
}

// NewDBpediaClientParams contains configuration for creating a
// DBpediaClient. Zero values fall back to the public endpoints.
type NewDBpediaClientParams struct {
	SpotlightURL string
	SparqlURL    string
	WikidataURL  string

	Timeout time.Duration

	// MaxConcurrentLookups bounds parallel cross-reference lookups.
	MaxConcurrentLookups int64
	MaxRetries           int
}

// NewDBpediaClient creates an Enricher for the configured endpoints.
func NewDBpediaClient(params NewDBpediaClientParams) *DBpediaClient {
	spotlightURL := params.SpotlightURL
	if spotlightURL == "" {
		spotlightURL = "https://api.dbpedia-spotlight.org/en/annotate"
	}
	sparqlURL := params.SparqlURL
	if sparqlURL == "" {
		sparqlURL = "http://dbpedia.org/sparql"
	}
	wikidataURL := params.WikidataURL
	if wikidataURL == "" {
		wikidataURL = "https://query.wikidata.org/sparql"
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	lookups := params.MaxConcurrentLookups
	if lookups <= 0 {
		lookups = 3
	}
	retries := params.MaxRetries
	if retries <= 0 {
		retries = 2
	}

	return &DBpediaClient{
		spotlightURL: spotlightURL,
		httpClient:   &http.Client{Timeout: timeout},
		kb:           sparql.NewEndpointClient(sparqlURL, timeout),
		wikidata:     sparql.NewEndpointClient(wikidataURL, timeout),
		limiter:      rate.NewLimiter(rate.Every(time.Second), 5),
		lookupSem:    semaphore.NewWeighted(lookups),
		maxRetries:   retries,
	}
}

var _ Enricher = (*DBpediaClient)(nil)

type spotlightResponse struct {
	Resources []struct {
		URI   string `json:"@URI"`
		Types string `json:"@types"`
	} `json:"Resources"`
}

// Annotate sends the text head to Spotlight and keeps resources of the
// accepted semantic types, capped at 15. Text shorter than 20 characters
// is skipped entirely.
func (c *DBpediaClient) Annotate(ctx context.Context, text string) ([]string, error) {
	if len(strings.TrimSpace(text)) < minAnnotateInput {
		return nil, nil
	}
	runes := []rune(text)
	if len(runes) > maxAnnotateInput {
		text = string(runes[:maxAnnotateInput])
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{
		"text":       {text},
		"confidence": {annotateConfidence},
		"support":    {annotateSupport},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.spotlightURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotlight returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var decoded spotlightResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, err
	}

	entities := make([]string, 0, maxAnnotations)
	for _, r := range decoded.Resources {
		if len(entities) >= maxAnnotations {
			break
		}
		if !hasAcceptedType(r.Types) {
			continue
		}
		entities = append(entities, r.URI)
	}
	return entities, nil
}

func hasAcceptedType(types string) bool {
	for _, t := range acceptedTypes {
		if strings.Contains(types, t) {
			return true
		}
	}
	return false
}
