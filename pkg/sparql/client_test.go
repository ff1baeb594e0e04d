package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResults = `{
	"head": {"vars": ["article", "title"]},
	"results": {"bindings": [
		{
			"article": {"type": "uri", "value": "http://example.org/article/1"},
			"title": {"type": "literal", "value": "First"}
		},
		{
			"article": {"type": "uri", "value": "http://example.org/article/2"}
		}
	]}
}`

func TestSelectDecodesBindings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ds/sparql" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.FormValue("query"); got != "SELECT * WHERE { ?s ?p ?o }" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(sampleResults))
	}))
	defer srv.Close()

	c := NewClient(NewClientParams{BaseURL: srv.URL, Dataset: "ds"})
	res, err := c.Select(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(res.Bindings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Bindings))
	}

	first := res.Bindings[0]
	term, ok := first.Get("article")
	if !ok || !term.IsIRI() || term.Value != "http://example.org/article/1" {
		t.Fatalf("unexpected article term: %+v ok=%v", term, ok)
	}
	if first.Value("title") != "First" {
		t.Fatalf("unexpected title: %q", first.Value("title"))
	}

	// second row has no title binding
	if res.Bindings[1].Has("title") {
		t.Fatal("expected title to be absent in second row")
	}
}

func TestSelectPropagatesStoreErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(NewClientParams{BaseURL: srv.URL, Dataset: "ds"})
	if _, err := c.Select(context.Background(), "SELECT * WHERE { ?s ?p ?o }"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "ok", status: http.StatusOK, want: true},
		{name: "created", status: http.StatusCreated, want: true},
		{name: "no content", status: http.StatusNoContent, want: true},
		{name: "unauthorized", status: http.StatusUnauthorized, want: false},
		{name: "server error", status: http.StatusInternalServerError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/ds/update" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/sparql-update" {
					t.Errorf("unexpected content type %q", ct)
				}
				user, pass, ok := r.BasicAuth()
				if !ok || user != "admin" || pass != "secret" {
					t.Errorf("missing or wrong basic auth")
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(NewClientParams{
				BaseURL:  srv.URL,
				Dataset:  "ds",
				Username: "admin",
				Password: "secret",
			})
			got := c.Update(context.Background(), "INSERT DATA { <a> <b> <c> }")
			if got != tt.want {
				t.Fatalf("unexpected update result: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateNeverPanicsOnDeadStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(NewClientParams{BaseURL: srv.URL, Dataset: "ds"})
	if c.Update(context.Background(), "INSERT DATA { <a> <b> <c> }") {
		t.Fatal("expected false for unreachable store")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/$/ping" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(NewClientParams{BaseURL: srv.URL, Dataset: "ds"})
	if !c.Ping(context.Background()) {
		t.Fatal("expected ping to succeed")
	}

	srv.Close()
	if c.Ping(context.Background()) {
		t.Fatal("expected ping to fail after server shutdown")
	}
}

func TestConstructContentNegotiation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Accept") {
		case "text/turtle", "application/rdf+xml", "text/n3":
		default:
			t.Errorf("unexpected accept header %q", r.Header.Get("Accept"))
		}
		w.Write([]byte("<a> <b> <c> ."))
	}))
	defer srv.Close()

	c := NewClient(NewClientParams{BaseURL: srv.URL, Dataset: "ds"})
	for _, format := range []string{"turtle", "xml", "n3", "unknown"} {
		data, err := c.Construct(context.Background(), "CONSTRUCT { ?s ?p ?o } WHERE { ?s ?p ?o }", format)
		if err != nil {
			t.Fatalf("construct %s failed: %v", format, err)
		}
		if data == "" {
			t.Fatalf("construct %s returned empty body", format)
		}
	}
}
