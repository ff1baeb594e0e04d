package fuseki

import (
	"context"
	"fmt"

	"wep/pkg/store"
	"wep/pkg/vocab"
)

const articlesQuery = vocab.PrefixBlock + `
SELECT ?article ?title ?author ?content ?publication ?language ?created
WHERE {
    ?article a schema:NewsArticle ;
             schema:headline ?title ;
             schema:author ?author ;
             schema:articleBody ?content ;
             schema:publisher ?publication ;
             schema:inLanguage ?language ;
             schema:dateCreated ?created .
}
ORDER BY DESC(?created)
LIMIT 50
`

// GetArticles returns up to 50 articles, newest first. The query requires
// every core field, so rows with missing fields are excluded rather than
// partially returned.
func (s *Store) GetArticles(ctx context.Context) ([]store.Article, error) {
	res, err := s.gw.Select(ctx, articlesQuery)
	if err != nil {
		return nil, err
	}

	articles := make([]store.Article, 0, len(res.Bindings))
	for _, row := range res.Bindings {
		articles = append(articles, store.Article{
			ID:          idFromURI(row.Value("article")),
			Title:       row.Value("title"),
			Author:      row.Value("author"),
			Body:        row.Value("content"),
			Publication: row.Value("publication"),
			Language:    row.Value("language"),
			CreatedAt:   row.Value("created"),
			Keywords:    []string{},
		})
	}
	return articles, nil
}

// GetArticle returns one article with its media references and provenance
// summary. The optional multi-valued fields arrive as a cartesian product
// of rows and are collapsed through a uniqueness set. ErrNotFound is
// returned when the required core fields are absent.
func (s *Store) GetArticle(ctx context.Context, id string) (*store.Article, error) {
	articleURI := s.articleURI(id)
	query := vocab.PrefixBlock + fmt.Sprintf(`
SELECT ?title ?author ?content ?publication ?language ?created
       ?keyword ?image ?video ?audio
       ?activity ?agent ?agentName
WHERE {
    <%[1]s> a schema:NewsArticle ;
        schema:headline ?title ;
        schema:author ?author ;
        schema:articleBody ?content ;
        schema:publisher ?publication ;
        schema:inLanguage ?language ;
        schema:dateCreated ?created .

    OPTIONAL { <%[1]s> schema:keywords ?keyword . }
    OPTIONAL { <%[1]s> schema:image ?image . }
    OPTIONAL { <%[1]s> schema:video ?video . }
    OPTIONAL { <%[1]s> schema:audio ?audio . }

    OPTIONAL {
        <%[1]s> prov:wasGeneratedBy ?activity .
        ?activity prov:wasAssociatedWith ?agent .
        ?agent schema:name ?agentName .
    }
}
`, articleURI)

	res, err := s.gw.Select(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(res.Bindings) == 0 {
		return nil, store.ErrNotFound
	}

	first := res.Bindings[0]

	var keywords, images, videos, audios []string
	for _, row := range res.Bindings {
		keywords = append(keywords, row.Value("keyword"))
		images = append(images, row.Value("image"))
		videos = append(videos, row.Value("video"))
		audios = append(audios, row.Value("audio"))
	}

	article := &store.Article{
		ID:          id,
		Title:       first.Value("title"),
		Author:      first.Value("author"),
		Body:        first.Value("content"),
		Publication: first.Value("publication"),
		Language:    first.Value("language"),
		CreatedAt:   first.Value("created"),
		Keywords:    store.DedupeStrings(keywords),
		ImageURLs:   store.DedupeStrings(images),
		VideoURLs:   store.DedupeStrings(videos),
		AudioURLs:   store.DedupeStrings(audios),
	}
	if article.Keywords == nil {
		article.Keywords = []string{}
	}

	if first.Has("activity") {
		article.Provenance = &store.Provenance{
			Activity:  first.Value("activity"),
			Agent:     first.Value("agent"),
			AgentName: first.Value("agentName"),
		}
	}

	return article, nil
}
