package sparql

import (
	"strings"
	"testing"
)

func TestInsertBuilder(t *testing.T) {
	b := NewInsert("PREFIX schema: <http://schema.org/>\n")
	b.Subject("http://example.org/a/1").
		Type("http://schema.org/NewsArticle").
		Literal("http://schema.org/headline", `Breaking "News"`).
		TypedLiteral("http://purl.org/dc/terms/created", "2026-01-02T03:04:05Z", "http://www.w3.org/2001/XMLSchema#dateTime").
		IRI("http://www.w3.org/ns/prov#wasGeneratedBy", "http://example.org/act/1")

	got := b.String()

	wants := []string{
		"PREFIX schema: <http://schema.org/>",
		"INSERT DATA {",
		`<http://example.org/a/1> a <http://schema.org/NewsArticle> .`,
		`<http://example.org/a/1> <http://schema.org/headline> "Breaking \"News\"" .`,
		`<http://example.org/a/1> <http://purl.org/dc/terms/created> "2026-01-02T03:04:05Z"^^<http://www.w3.org/2001/XMLSchema#dateTime> .`,
		`<http://example.org/a/1> <http://www.w3.org/ns/prov#wasGeneratedBy> <http://example.org/act/1> .`,
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("update missing %q:\n%s", want, got)
		}
	}
}

func TestInsertBuilderSkipsEmptyValues(t *testing.T) {
	b := NewInsert("")
	b.Subject("http://example.org/a/1").
		Literal("http://schema.org/headline", "").
		TypedLiteral("http://purl.org/dc/terms/created", "", "http://www.w3.org/2001/XMLSchema#dateTime").
		IRI("http://schema.org/image", "")

	got := b.String()
	if strings.Contains(got, "headline") || strings.Contains(got, "created") || strings.Contains(got, "image") {
		t.Fatalf("empty values must not emit triples:\n%s", got)
	}
}

func TestInsertBuilderEscapesInjection(t *testing.T) {
	b := NewInsert("")
	b.Subject("http://example.org/a/1").
		Literal("http://schema.org/headline", `x" . <http://evil> <http://evil> "y`)

	got := b.String()
	if strings.Contains(got, `" . <http://evil>`) {
		t.Fatalf("literal broke out of quoted position:\n%s", got)
	}
	if !strings.Contains(got, `\" . <http://evil>`) {
		t.Fatalf("quote in literal was not escaped:\n%s", got)
	}
}

func TestMintIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := MintID()
		if id == "" {
			t.Fatal("minted empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("minted duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestEntityURI(t *testing.T) {
	got := EntityURI("http://localhost:8000", "article", "abc")
	if got != "http://localhost:8000/article/abc" {
		t.Fatalf("unexpected uri: %q", got)
	}
}
