package fuseki

import (
	"context"
	"strconv"

	"wep/pkg/store"
	"wep/pkg/vocab"

	"golang.org/x/sync/errgroup"
)

const (
	totalArticlesQuery = vocab.PrefixBlock + `
SELECT (COUNT(?article) AS ?count)
WHERE { ?article a schema:NewsArticle . }
`

	totalAuthorsQuery = vocab.PrefixBlock + `
SELECT (COUNT(DISTINCT ?author) AS ?count)
WHERE { ?article a schema:NewsArticle ; schema:author ?author . }
`

	byLanguageQuery = vocab.PrefixBlock + `
SELECT ?language (COUNT(?article) AS ?count)
WHERE { ?article a schema:NewsArticle ; schema:inLanguage ?language . }
GROUP BY ?language
`

	topKeywordsQuery = vocab.PrefixBlock + `
SELECT ?keyword (COUNT(?article) AS ?count)
WHERE { ?article a schema:NewsArticle ; schema:keywords ?keyword . }
GROUP BY ?keyword
ORDER BY DESC(?count)
LIMIT 10
`
)

// GetStatistics aggregates store-wide counts. The four aggregate queries
// run concurrently. Keyword ties keep the store's own grouping order.
func (s *Store) GetStatistics(ctx context.Context) (*store.Stats, error) {
	stats := &store.Stats{}

	eg, ectx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		n, err := s.countQuery(ectx, totalArticlesQuery)
		stats.TotalArticles = n
		return err
	})
	eg.Go(func() error {
		n, err := s.countQuery(ectx, totalAuthorsQuery)
		stats.TotalAuthors = n
		return err
	})
	eg.Go(func() error {
		res, err := s.gw.Select(ectx, byLanguageQuery)
		if err != nil {
			return err
		}
		counts := make([]store.LanguageCount, 0, len(res.Bindings))
		for _, row := range res.Bindings {
			counts = append(counts, store.LanguageCount{
				Language: row.Value("language"),
				Count:    atoi(row.Value("count")),
			})
		}
		stats.ByLanguage = counts
		return nil
	})
	eg.Go(func() error {
		res, err := s.gw.Select(ectx, topKeywordsQuery)
		if err != nil {
			return err
		}
		counts := make([]store.KeywordCount, 0, len(res.Bindings))
		for _, row := range res.Bindings {
			counts = append(counts, store.KeywordCount{
				Keyword: row.Value("keyword"),
				Count:   atoi(row.Value("count")),
			})
		}
		stats.TopKeywords = counts
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) countQuery(ctx context.Context, query string) (int, error) {
	res, err := s.gw.Select(ctx, query)
	if err != nil {
		return 0, err
	}
	if len(res.Bindings) == 0 {
		return 0, nil
	}
	return atoi(res.Bindings[0].Value("count")), nil
}

func atoi(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}