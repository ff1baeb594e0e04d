package fuseki

import (
	"context"
	"strings"
	"testing"

	"wep/pkg/sparql"
)

func TestSearchArticlesSnippets(t *testing.T) {
	longBody := strings.Repeat("x", 500)
	gw := newFakeGateway()
	gw.on("CONTAINS(LCASE(?title)",
		sparql.Binding{
			"article":     iri("http://localhost:8000/article/id-1"),
			"title":       lit("Hit"),
			"author":      lit("A"),
			"content":     lit(longBody),
			"publication": lit("P"),
			"language":    lit("en"),
		},
		sparql.Binding{
			"article":     iri("http://localhost:8000/article/id-2"),
			"title":       lit("Short"),
			"author":      lit("B"),
			"content":     lit("tiny"),
			"publication": lit("P"),
			"language":    lit("en"),
		},
	)
	s := newTestStore(gw)

	results, err := s.SearchArticles(context.Background(), "hit", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	long := results[0].Snippet
	if len(long) > 203 {
		t.Fatalf("snippet longer than 203 chars: %d", len(long))
	}
	if !strings.HasSuffix(long, "...") {
		t.Fatalf("long snippet must end with ellipsis: %q", long[len(long)-10:])
	}
	if results[1].Snippet != "tiny" {
		t.Fatalf("short body must come back whole: %q", results[1].Snippet)
	}
}

func TestSearchArticlesEscapesTerm(t *testing.T) {
	gw := newFakeGateway()
	s := newTestStore(gw)

	// a quote in the term must not break out of the literal position;
	// success here is simply a well-formed query that matches nothing
	if _, err := s.SearchArticles(context.Background(), `term" ) } INSERT`, ""); err != nil {
		t.Fatalf("search failed: %v", err)
	}
}

func TestSearchArticlesLanguageFilter(t *testing.T) {
	gw := newFakeGateway()
	s := newTestStore(gw)

	if _, err := s.SearchArticles(context.Background(), "x", "ro"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
}

func TestGetRecommendationsExcludesSelf(t *testing.T) {
	gw := newFakeGateway()
	gw.on("schema:keywords ?keyword",
		sparql.Binding{
			"article":     iri("http://localhost:8000/article/other-1"),
			"title":       lit("Other"),
			"author":      lit("B"),
			"publication": lit("P"),
		},
	)
	s := newTestStore(gw)

	recs, err := s.GetRecommendations(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "other-1" {
		t.Fatalf("unexpected recommendations: %v", recs)
	}
	for _, r := range recs {
		if r.ID == "id-1" {
			t.Fatal("recommendations must never include the queried article")
		}
	}
}
