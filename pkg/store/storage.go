// Package store defines the article storage contract: an append-only,
// provenance-aware store of news articles backed by an RDF triple store.
package store

import (
	"context"
	"errors"
)

// Common storage errors.
var (
	// ErrNotFound is returned when an article is not found.
	ErrNotFound = errors.New("article not found")

	// ErrWriteRejected is returned when the store did not acknowledge a
	// write. No partial state exists in that case.
	ErrWriteRejected = errors.New("store rejected write")
)

// Derivation kinds accepted on a draft. Translation and Revision map to a
// revision-of edge; anything else maps to a derived-from edge.
const (
	DerivationTranslation = "Translation"
	DerivationRevision    = "Revision"
)

// Draft is an article submission before it has an identity in the graph.
type Draft struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Body        string   `json:"content"`
	Publication string   `json:"publication"`
	Language    string   `json:"language"`
	Keywords    []string `json:"keywords,omitempty"`
	Subjects    []string `json:"iptc_subjects,omitempty"`

	ImageURLs []string `json:"image_urls,omitempty"`
	VideoURLs []string `json:"video_urls,omitempty"`
	AudioURLs []string `json:"audio_urls,omitempty"`

	// SourceURL is an external resource this article was derived from.
	SourceURL string `json:"url,omitempty"`

	// BasedOnArticleID references a prior article in this store.
	BasedOnArticleID string `json:"based_on_article_id,omitempty"`
	DerivationKind   string `json:"derivation_type,omitempty"`

	// Enrichment results, filled in before the draft reaches the store.
	RelatedEntities  []string `json:"dbpedia_entities,omitempty"`
	WikidataEntities []string `json:"wikidata_entities,omitempty"`
}

// Article is the stored view of a news item. Core descriptive fields are
// immutable once written; the store is append-only and has no delete.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Body        string   `json:"content"`
	Publication string   `json:"publication"`
	Language    string   `json:"language"`
	CreatedAt   string   `json:"created_at"`
	Keywords    []string `json:"keywords"`

	ImageURLs []string `json:"image_urls,omitempty"`
	VideoURLs []string `json:"video_urls,omitempty"`
	AudioURLs []string `json:"audio_urls,omitempty"`

	RelatedEntities []string `json:"dbpedia_entities,omitempty"`

	Provenance *Provenance `json:"provenance,omitempty"`
}

// Provenance is the generation summary attached to an article view.
type Provenance struct {
	Activity  string `json:"activity"`
	Agent     string `json:"agent"`
	AgentName string `json:"agent_name"`
}

// Summary is the reduced article shape returned by search and
// recommendation queries.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publication string `json:"publication"`
	Language    string `json:"language,omitempty"`
	Snippet     string `json:"content,omitempty"`
}

// Chain is the full provenance record of one article. A zero-valued chain
// (no activity) is a legitimate state for articles written without
// provenance, not an error.
type Chain struct {
	Entity   *ChainEntity   `json:"entity,omitempty"`
	Activity *ChainActivity `json:"activity,omitempty"`
	Agent    *ChainAgent    `json:"agent,omitempty"`

	// DerivedFrom and RevisionOf are distinct relation types and are never
	// merged: Translation and Revision derivations come back as RevisionOf.
	DerivedFrom []string `json:"derived_from,omitempty"`
	RevisionOf  []string `json:"revision_of,omitempty"`

	RelatedEntities  []string `json:"related_entities,omitempty"`
	WikidataEntities []string `json:"wikidata_entities,omitempty"`
}

// Empty reports whether no generation activity is recorded for the article.
func (c *Chain) Empty() bool {
	return c == nil || c.Activity == nil
}

// ChainEntity identifies the article node of a chain.
type ChainEntity struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// ChainActivity is the generation activity of a chain.
type ChainActivity struct {
	URI       string `json:"uri"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ChainAgent is the responsible agent of a chain.
type ChainAgent struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Stats aggregates store-wide counts. Keyword ties come back in whatever
// order the store groups them.
type Stats struct {
	TotalArticles int             `json:"total_articles"`
	TotalAuthors  int             `json:"total_authors"`
	ByLanguage    []LanguageCount `json:"articles_by_language"`
	TopKeywords   []KeywordCount  `json:"top_keywords"`
}

// LanguageCount is an article count for one language tag.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// KeywordCount is an article count for one keyword.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ArticleStorage is the provenance graph contract. Every operation is a
// pure function of current store contents; implementations hold no
// cross-call state.
type ArticleStorage interface {
	// CreateArticle writes the draft plus its generation activity and agent
	// as one atomic insertion and echoes the written view. It returns
	// ErrWriteRejected when the store did not acknowledge the write.
	CreateArticle(ctx context.Context, draft Draft) (*Article, error)

	// GetArticles returns up to 50 articles with required core fields,
	// newest first.
	GetArticles(ctx context.Context) ([]Article, error)

	// GetArticle returns one article with media and provenance summary, or
	// ErrNotFound when the required fields are absent.
	GetArticle(ctx context.Context, id string) (*Article, error)

	// GetRecommendations returns up to 5 other articles sharing at least
	// one keyword with the given article.
	GetRecommendations(ctx context.Context, id string) ([]Summary, error)

	// GetProvenanceChain returns the full provenance record. An article
	// without a generation activity yields an empty chain, not an error.
	GetProvenanceChain(ctx context.Context, id string) (*Chain, error)

	// SearchArticles matches term case-insensitively against headline,
	// body and author, optionally filtered by exact language, capped at 20
	// results with 200-character body snippets.
	SearchArticles(ctx context.Context, term, language string) ([]Summary, error)

	// GetStatistics returns aggregate counts over the whole store.
	GetStatistics(ctx context.Context) (*Stats, error)

	// ExportRDF serializes the article subgraph (article node plus linked
	// activity) in the requested format: turtle, xml or n3.
	ExportRDF(ctx context.Context, id, format string) (string, error)

	// Ping reports store liveness. False is a degraded-health signal, not
	// an error.
	Ping(ctx context.Context) bool
}
