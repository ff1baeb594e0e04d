package fuseki

import (
	"context"
	"fmt"

	"wep/internal/util"
	"wep/pkg/sparql"
	"wep/pkg/store"
	"wep/pkg/vocab"
)

const snippetLength = 200

// SearchArticles matches the term case-insensitively against headline,
// body and author, optionally filtered to an exact language tag. Body text
// in results is cut to a 200-character snippet. Capped at 20 results.
func (s *Store) SearchArticles(ctx context.Context, term, language string) ([]store.Summary, error) {
	langFilter := ""
	if language != "" {
		langFilter = fmt.Sprintf(`FILTER(?language = "%s")`, sparql.EscapeLiteral(language))
	}

	query := vocab.PrefixBlock + fmt.Sprintf(`
SELECT ?article ?title ?author ?content ?publication ?language
WHERE {
    ?article a schema:NewsArticle ;
             schema:headline ?title ;
             schema:author ?author ;
             schema:articleBody ?content ;
             schema:publisher ?publication ;
             schema:inLanguage ?language .
    FILTER(
        CONTAINS(LCASE(?title), LCASE("%[1]s")) ||
        CONTAINS(LCASE(?content), LCASE("%[1]s")) ||
        CONTAINS(LCASE(?author), LCASE("%[1]s"))
    )
    %[2]s
}
LIMIT 20
`, sparql.EscapeLiteral(term), langFilter)

	res, err := s.gw.Select(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]store.Summary, 0, len(res.Bindings))
	for _, row := range res.Bindings {
		results = append(results, store.Summary{
			ID:          idFromURI(row.Value("article")),
			Title:       row.Value("title"),
			Author:      row.Value("author"),
			Publication: row.Value("publication"),
			Language:    row.Value("language"),
			Snippet:     util.Snippet(row.Value("content"), snippetLength),
		})
	}
	return results, nil
}
