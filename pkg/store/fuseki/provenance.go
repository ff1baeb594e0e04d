package fuseki

import (
	"context"
	"fmt"

	"wep/pkg/store"
	"wep/pkg/vocab"
)

const (
	maxRelatedEntities  = 5
	maxWikidataEntities = 3
)

// GetProvenanceChain returns the full provenance record of an article:
// generation activity, agent, timestamps, derivation targets and
// enrichment entities, each de-duplicated independently in discovery
// order. An article without a recorded activity yields an empty chain.
// Revision edges and derivation edges are kept apart; they are
// semantically distinct.
func (s *Store) GetProvenanceChain(ctx context.Context, id string) (*store.Chain, error) {
	articleURI := s.articleURI(id)
	query := vocab.PrefixBlock + fmt.Sprintf(`
SELECT ?activity ?agent ?agentName ?startTime ?endTime
       ?derivedFrom ?revisionOf ?relatedEntity ?wikidataEntity
WHERE {
    <%[1]s> prov:wasGeneratedBy ?activity .
    ?activity prov:wasAssociatedWith ?agent ;
              prov:startedAtTime ?startTime ;
              prov:endedAtTime ?endTime .
    ?agent schema:name ?agentName .

    OPTIONAL { <%[1]s> prov:wasDerivedFrom ?derivedFrom . }
    OPTIONAL { <%[1]s> prov:wasRevisionOf ?revisionOf . }
    OPTIONAL { <%[1]s> wep:relatedEntity ?relatedEntity . }
    OPTIONAL { <%[1]s> wep:wikidataEntity ?wikidataEntity . }
}
`, articleURI)

	res, err := s.gw.Select(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(res.Bindings) == 0 {
		return &store.Chain{}, nil
	}

	first := res.Bindings[0]
	chain := &store.Chain{
		Entity: &store.ChainEntity{
			URI:  articleURI,
			Type: "NewsArticle",
		},
		Activity: &store.ChainActivity{
			URI:       first.Value("activity"),
			StartTime: first.Value("startTime"),
			EndTime:   first.Value("endTime"),
		},
		Agent: &store.ChainAgent{
			URI:  first.Value("agent"),
			Name: first.Value("agentName"),
		},
	}

	var derived, revisions, related, wikidata []string
	for _, row := range res.Bindings {
		derived = append(derived, row.Value("derivedFrom"))
		revisions = append(revisions, row.Value("revisionOf"))
		related = append(related, row.Value("relatedEntity"))
		wikidata = append(wikidata, row.Value("wikidataEntity"))
	}

	chain.DerivedFrom = store.DedupeStrings(derived)
	chain.RevisionOf = store.DedupeStrings(revisions)
	// Truncation happens after de-duplication so discovery order survives.
	chain.RelatedEntities = store.CapStrings(store.DedupeStrings(related), maxRelatedEntities)
	chain.WikidataEntities = store.CapStrings(store.DedupeStrings(wikidata), maxWikidataEntities)

	return chain, nil
}
