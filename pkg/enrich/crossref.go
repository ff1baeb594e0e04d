package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"wep/internal/util"
	"wep/pkg/logger"
	"wep/pkg/sparql"
	"wep/pkg/vocab"
)

// CrossReference resolves owl:sameAs Wikidata identifiers for up to the
// first 3 source URIs. Lookups run concurrently under a semaphore, each
// with its own retry; a lookup that keeps failing is skipped and the rest
// of the batch survives. Result order follows the input order.
func (c *DBpediaClient) CrossReference(ctx context.Context, uris []string) []string {
	if len(uris) > maxCrossRefInput {
		uris = uris[:maxCrossRefInput]
	}

	results := make([]string, len(uris))
	var wg sync.WaitGroup
	for i, uri := range uris {
		if err := c.lookupSem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(idx int, entityURI string) {
			defer wg.Done()
			defer c.lookupSem.Release(1)

			wikidataURI, err := util.RetryWithContext(ctx, c.maxRetries, func(rCtx context.Context) (string, error) {
				return c.lookupSameAs(rCtx, entityURI)
			})
			if err != nil {
				logger.Debug("Wikidata lookup skipped", "uri", entityURI, "err", err)
				return
			}
			results[idx] = wikidataURI
		}(i, uri)
	}
	wg.Wait()

	out := make([]string, 0, len(results))
	for _, r := range results {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func (c *DBpediaClient) lookupSameAs(ctx context.Context, uri string) (string, error) {
	query := fmt.Sprintf(`
SELECT ?wikidata
WHERE {
    <%s> <%s> ?wikidata .
    FILTER(STRSTARTS(STR(?wikidata), "http://www.wikidata.org/"))
}
LIMIT 1
`, uri, vocab.OwlSameAs)

	res, err := c.kb.Select(ctx, query)
	if err != nil {
		return "", err
	}
	if len(res.Bindings) == 0 {
		return "", fmt.Errorf("no wikidata link for %s", uri)
	}
	return res.Bindings[0].Value("wikidata"), nil
}

// EntityInfo fetches up to 50 property/value rows for one entity and
// returns the undecoded bindings document for the explorer endpoint.
func (c *DBpediaClient) EntityInfo(ctx context.Context, uri string) (json.RawMessage, error) {
	query := fmt.Sprintf(`
SELECT ?property ?value
WHERE {
    <%s> ?property ?value .
}
LIMIT 50
`, uri)
	return c.kb.SelectRaw(ctx, query)
}

// SearchWikidata finds entities matching an exact english label, with
// their english descriptions, capped at 5.
func (c *DBpediaClient) SearchWikidata(ctx context.Context, term string) ([]WikidataMatch, error) {
	query := fmt.Sprintf(`
SELECT ?item ?itemLabel ?description
WHERE {
    ?item rdfs:label "%s"@en .
    ?item schema:description ?description .
    FILTER(LANG(?description) = "en")
    SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
LIMIT 5
`, sparql.EscapeLiteral(term))

	res, err := c.wikidata.Select(ctx, query)
	if err != nil {
		return nil, err
	}

	matches := make([]WikidataMatch, 0, len(res.Bindings))
	for _, row := range res.Bindings {
		matches = append(matches, WikidataMatch{
			URI:         row.Value("item"),
			Label:       row.Value("itemLabel"),
			Description: row.Value("description"),
		})
	}
	return matches, nil
}
