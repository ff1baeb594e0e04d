// Package jsonld projects stored articles onto schema.org JSON-LD
// documents for linked-data consumers.
package jsonld

import (
	"wep/pkg/store"
)

// Person is an embedded schema.org Person node.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Organization is an embedded schema.org Organization node.
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Document is a schema.org NewsArticle in JSON-LD form.
type Document struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	ID          string       `json:"@id"`
	Headline    string       `json:"headline"`
	ArticleBody string       `json:"articleBody"`
	Author      Person       `json:"author"`
	Publisher   Organization `json:"publisher"`
	InLanguage  string       `json:"inLanguage"`
	DateCreated string       `json:"dateCreated,omitempty"`
	Keywords    []string     `json:"keywords,omitempty"`

	Image []string `json:"image,omitempty"`
	Video []string `json:"video,omitempty"`
	Audio []string `json:"audio,omitempty"`

	// Mentions carries the knowledge-base entities linked during
	// enrichment; SameAs their Wikidata counterparts.
	Mentions []string `json:"mentions,omitempty"`
	SameAs   []string `json:"sameAs,omitempty"`

	// IsBasedOn lists articles or external sources this one derives from.
	IsBasedOn []string `json:"isBasedOn,omitempty"`
}

// FromArticle maps a stored article onto its JSON-LD document. The chain
// may be nil or empty; derivation and entity fields are simply omitted
// then.
func FromArticle(article *store.Article, chain *store.Chain, namespace string) *Document {
	doc := &Document{
		Context:     "https://schema.org",
		Type:        "NewsArticle",
		ID:          namespace + "/article/" + article.ID,
		Headline:    article.Title,
		ArticleBody: article.Body,
		Author:      Person{Type: "Person", Name: article.Author},
		Publisher:   Organization{Type: "Organization", Name: article.Publication},
		InLanguage:  article.Language,
		DateCreated: article.CreatedAt,
		Keywords:    article.Keywords,
		Image:       article.ImageURLs,
		Video:       article.VideoURLs,
		Audio:       article.AudioURLs,
		Mentions:    article.RelatedEntities,
	}

	if chain != nil {
		doc.SameAs = chain.WikidataEntities
		doc.IsBasedOn = append(doc.IsBasedOn, chain.RevisionOf...)
		doc.IsBasedOn = append(doc.IsBasedOn, chain.DerivedFrom...)
		if len(doc.Mentions) == 0 {
			doc.Mentions = chain.RelatedEntities
		}
	}
	return doc
}
