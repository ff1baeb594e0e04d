package fuseki

import (
	"context"
	"time"

	"wep/pkg/sparql"
	"wep/pkg/store"
	"wep/pkg/vocab"
)

// CreateArticle mints identities for the article, its generation activity
// and its agent, assembles the complete triple set and writes it as one
// atomic insertion. On success it echoes the written view without
// re-querying the store; when the store rejects the write it returns
// ErrWriteRejected and no partial state exists.
func (s *Store) CreateArticle(ctx context.Context, draft store.Draft) (*store.Article, error) {
	articleID := sparql.MintID()
	articleURI := s.articleURI(articleID)
	activityURI := sparql.EntityURI(s.namespace, "activity", sparql.MintID())
	agentURI := sparql.EntityURI(s.namespace, "agent", sparql.MintID())

	now := time.Now().UTC().Format(time.RFC3339)

	language := draft.Language
	if language == "" {
		language = "en"
	}

	b := sparql.NewInsert(vocab.PrefixBlock)

	article := b.Subject(articleURI).
		Type(vocab.SchemaNewsArticle, vocab.ProvEntity).
		Literal(vocab.DcTitle, draft.Title).
		Literal(vocab.SchemaHeadline, draft.Title).
		Literal(vocab.DcCreator, draft.Author).
		Literal(vocab.SchemaAuthor, draft.Author).
		Literal(vocab.SchemaArticleBody, draft.Body).
		Literal(vocab.DcPublisher, draft.Publication).
		Literal(vocab.SchemaPublisher, draft.Publication).
		Literal(vocab.DcLanguage, language).
		Literal(vocab.SchemaInLanguage, language).
		TypedLiteral(vocab.DctermsCreated, now, vocab.XsdDateTime).
		TypedLiteral(vocab.SchemaDateCreated, now, vocab.XsdDateTime)

	for _, kw := range draft.Keywords {
		article.Literal(vocab.SchemaKeywords, kw)
	}
	for _, subject := range draft.Subjects {
		article.Literal(vocab.IptcSubject, subject)
	}

	for _, entity := range draft.RelatedEntities {
		article.IRI(vocab.WepRelatedEntity, entity)
	}
	// Cross-references are recorded twice: the related set stays a
	// superset of the cross-reference set.
	for _, entity := range draft.WikidataEntities {
		article.IRI(vocab.WepWikidataEntity, entity)
		article.IRI(vocab.WepRelatedEntity, entity)
	}

	for _, u := range draft.ImageURLs {
		article.IRI(vocab.SchemaImage, u)
	}
	for _, u := range draft.VideoURLs {
		article.IRI(vocab.SchemaVideo, u)
	}
	for _, u := range draft.AudioURLs {
		article.IRI(vocab.SchemaAudio, u)
	}

	if draft.BasedOnArticleID != "" {
		basedURI := s.articleURI(draft.BasedOnArticleID)
		switch draft.DerivationKind {
		case store.DerivationTranslation, store.DerivationRevision:
			article.IRI(vocab.ProvWasRevisionOf, basedURI)
		default:
			article.IRI(vocab.ProvWasDerivedFrom, basedURI)
		}
	}
	if draft.SourceURL != "" {
		article.IRI(vocab.ProvWasDerivedFrom, draft.SourceURL)
	}

	article.IRI(vocab.ProvWasGeneratedBy, activityURI)

	// Generation is modeled as instantaneous: start and end coincide with
	// the article's creation time.
	b.Subject(activityURI).
		Type(vocab.ProvActivity).
		TypedLiteral(vocab.ProvStartedAtTime, now, vocab.XsdDateTime).
		TypedLiteral(vocab.ProvEndedAtTime, now, vocab.XsdDateTime).
		IRI(vocab.ProvWasAssociatedWith, agentURI)

	b.Subject(agentURI).
		Type(vocab.ProvAgent, vocab.SchemaPerson).
		Literal(vocab.SchemaName, draft.Author)

	if !s.gw.Update(ctx, b.String()) {
		return nil, store.ErrWriteRejected
	}

	related := append(append([]string{}, draft.RelatedEntities...), draft.WikidataEntities...)

	return &store.Article{
		ID:              articleID,
		Title:           draft.Title,
		Author:          draft.Author,
		Body:            draft.Body,
		Publication:     draft.Publication,
		Language:        language,
		CreatedAt:       now,
		Keywords:        draft.Keywords,
		ImageURLs:       store.DedupeStrings(draft.ImageURLs),
		VideoURLs:       store.DedupeStrings(draft.VideoURLs),
		AudioURLs:       store.DedupeStrings(draft.AudioURLs),
		RelatedEntities: store.DedupeStrings(related),
	}, nil
}
