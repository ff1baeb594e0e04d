package fuseki

import (
	"context"
	"fmt"

	"wep/pkg/store"
)

// ExportRDF serializes the article node and its linked activity as a
// constructed subgraph in the requested format (turtle, xml or n3).
// ErrNotFound is returned when the construction comes back empty.
func (s *Store) ExportRDF(ctx context.Context, id, format string) (string, error) {
	articleURI := s.articleURI(id)
	query := fmt.Sprintf(`
CONSTRUCT {
    ?s ?p ?o .
}
WHERE {
    {
        <%[1]s> ?p ?o .
        BIND(<%[1]s> AS ?s)
    }
    UNION
    {
        <%[1]s> ?rel ?activity .
        ?activity ?p ?o .
        BIND(?activity AS ?s)
    }
}
`, articleURI)

	data, err := s.gw.Construct(ctx, query, format)
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", store.ErrNotFound
	}
	return data, nil
}
