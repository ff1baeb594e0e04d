// Package enrich talks to public knowledge bases: DBpedia Spotlight for
// entity annotation, the DBpedia SPARQL endpoint for entity details and
// Wikidata cross-references, and the Wikidata query service for label
// search. Every call is time-bounded; callers decide how to degrade when
// a collaborator is unreachable.
package enrich

import (
	"context"
	"encoding/json"
)

// Enricher is the linked-data collaborator contract consumed by the
// service layer.
type Enricher interface {
	// Annotate extracts candidate knowledge-base URIs from free text,
	// filtered to a fixed set of semantic types.
	Annotate(ctx context.Context, text string) ([]string, error)

	// CrossReference resolves Wikidata identifiers for up to the first 3
	// source URIs. Individual lookup failures are skipped, never fatal to
	// the batch.
	CrossReference(ctx context.Context, uris []string) []string

	// EntityInfo fetches raw property/value rows for one entity.
	EntityInfo(ctx context.Context, uri string) (json.RawMessage, error)

	// SearchWikidata finds entities by exact english label.
	SearchWikidata(ctx context.Context, term string) ([]WikidataMatch, error)
}

// WikidataMatch is one label-search hit.
type WikidataMatch struct {
	URI         string `json:"item"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Semantic types kept during annotation. Everything else Spotlight finds
// is discarded.
var acceptedTypes = []string{
	"Person",
	"Place",
	"Organisation",
	"Work",
	"Species",
	"Event",
}
