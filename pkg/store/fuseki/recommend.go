package fuseki

import (
	"context"
	"fmt"

	"wep/pkg/store"
	"wep/pkg/vocab"
)

// GetRecommendations finds up to 5 other articles sharing at least one
// keyword with the given article. The article itself is filtered out in
// the query.
func (s *Store) GetRecommendations(ctx context.Context, id string) ([]store.Summary, error) {
	articleURI := s.articleURI(id)
	query := vocab.PrefixBlock + fmt.Sprintf(`
SELECT DISTINCT ?article ?title ?author ?publication
WHERE {
    <%[1]s> schema:keywords ?keyword .
    ?article a schema:NewsArticle ;
             schema:keywords ?keyword ;
             schema:headline ?title ;
             schema:author ?author ;
             schema:publisher ?publication .
    FILTER(?article != <%[1]s>)
}
LIMIT 5
`, articleURI)

	res, err := s.gw.Select(ctx, query)
	if err != nil {
		return nil, err
	}

	recs := make([]store.Summary, 0, len(res.Bindings))
	for _, row := range res.Bindings {
		recs = append(recs, store.Summary{
			ID:          idFromURI(row.Value("article")),
			Title:       row.Value("title"),
			Author:      row.Value("author"),
			Publication: row.Value("publication"),
		})
	}
	return recs, nil
}
