package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnnotateFiltersAndCaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.FormValue("confidence"); got != "0.3" {
			t.Errorf("unexpected confidence %q", got)
		}
		var resources []string
		resources = append(resources,
			`{"@URI": "http://dbpedia.org/resource/Berlin", "@types": "Schema:Place,DBpedia:Place"}`,
			`{"@URI": "http://dbpedia.org/resource/Noise", "@types": "DBpedia:ChemicalCompound"}`,
		)
		for i := 0; i < 20; i++ {
			resources = append(resources, fmt.Sprintf(
				`{"@URI": "http://dbpedia.org/resource/P%d", "@types": "DBpedia:Person"}`, i))
		}
		fmt.Fprintf(w, `{"Resources": [%s]}`, strings.Join(resources, ","))
	}))
	defer srv.Close()

	c := NewDBpediaClient(NewDBpediaClientParams{SpotlightURL: srv.URL})
	entities, err := c.Annotate(context.Background(), strings.Repeat("news text ", 10))
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if len(entities) != 15 {
		t.Fatalf("expected cap of 15 entities, got %d", len(entities))
	}
	if entities[0] != "http://dbpedia.org/resource/Berlin" {
		t.Fatalf("unexpected first entity: %q", entities[0])
	}
	for _, e := range entities {
		if e == "http://dbpedia.org/resource/Noise" {
			t.Fatal("unaccepted semantic type survived the filter")
		}
	}
}

func TestAnnotateSkipsShortText(t *testing.T) {
	c := NewDBpediaClient(NewDBpediaClientParams{SpotlightURL: "http://127.0.0.1:1"})
	entities, err := c.Annotate(context.Background(), "too short")
	if err != nil {
		t.Fatalf("short text must not error: %v", err)
	}
	if entities != nil {
		t.Fatalf("expected no entities, got %v", entities)
	}
}

func TestAnnotateErrorsSurface(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewDBpediaClient(NewDBpediaClientParams{SpotlightURL: srv.URL})
	if _, err := c.Annotate(context.Background(), strings.Repeat("news text ", 10)); err == nil {
		t.Fatal("expected an error for a failing collaborator")
	}
}

func TestAnnotateTruncatesInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := len([]rune(r.FormValue("text"))); got > 1000 {
			t.Errorf("input not capped: %d runes", got)
		}
		fmt.Fprint(w, `{"Resources": []}`)
	}))
	defer srv.Close()

	c := NewDBpediaClient(NewDBpediaClientParams{SpotlightURL: srv.URL})
	if _, err := c.Annotate(context.Background(), strings.Repeat("x", 5000)); err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
}

func sameAsHandler(t *testing.T, known map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.FormValue("query")
		if !strings.Contains(query, "<http://www.w3.org/2002/07/owl#sameAs>") {
			t.Errorf("lookup does not query the sameAs predicate: %s", query)
		}
		for uri, wikidata := range known {
			if strings.Contains(query, uri) {
				fmt.Fprintf(w, `{"results": {"bindings": [
					{"wikidata": {"type": "uri", "value": "%s"}}
				]}}`, wikidata)
				return
			}
		}
		fmt.Fprint(w, `{"results": {"bindings": []}}`)
	}
}

func TestCrossReference(t *testing.T) {
	known := map[string]string{
		"http://dbpedia.org/resource/Berlin": "http://www.wikidata.org/entity/Q64",
		"http://dbpedia.org/resource/Paris":  "http://www.wikidata.org/entity/Q90",
	}
	srv := httptest.NewServer(sameAsHandler(t, known))
	defer srv.Close()

	c := NewDBpediaClient(NewDBpediaClientParams{SparqlURL: srv.URL})
	got := c.CrossReference(context.Background(), []string{
		"http://dbpedia.org/resource/Berlin",
		"http://dbpedia.org/resource/Unknown", // no link: skipped, not fatal
		"http://dbpedia.org/resource/Paris",
		"http://dbpedia.org/resource/Ignored", // beyond the cap of 3
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 cross-references, got %v", got)
	}
	if got[0] != "http://www.wikidata.org/entity/Q64" || got[1] != "http://www.wikidata.org/entity/Q90" {
		t.Fatalf("unexpected cross-references or order: %v", got)
	}
}

func TestCrossReferenceDeadEndpoint(t *testing.T) {
	c := NewDBpediaClient(NewDBpediaClientParams{SparqlURL: "http://127.0.0.1:1"})
	got := c.CrossReference(context.Background(), []string{"http://dbpedia.org/resource/Berlin"})
	if len(got) != 0 {
		t.Fatalf("dead endpoint must yield an empty batch, got %v", got)
	}
}

func TestSearchWikidata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": {"bindings": [
			{
				"item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q64"},
				"itemLabel": {"type": "literal", "value": "Berlin"},
				"description": {"type": "literal", "value": "capital of Germany"}
			}
		]}}`)
	}))
	defer srv.Close()

	c := NewDBpediaClient(NewDBpediaClientParams{WikidataURL: srv.URL})
	matches, err := c.SearchWikidata(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Label != "Berlin" {
		t.Fatalf("unexpected matches: %v", matches)
	}
}
