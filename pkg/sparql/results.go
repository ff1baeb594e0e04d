package sparql

import (
	"encoding/json"
	"fmt"
)

// Term is one bound value in a query result row. Type distinguishes IRI
// references from literals; Datatype and Lang are set when the store
// reported them.
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// IsIRI reports whether the term is a reference rather than a literal.
func (t Term) IsIRI() bool {
	return t.Type == "uri"
}

// Binding is one result row, mapping query-variable names to terms.
// Variables from OPTIONAL clauses that did not match are absent, so
// lookups go through Get with an explicit presence check.
type Binding map[string]Term

// Get returns the term bound to the named variable and whether it was
// present in this row.
func (b Binding) Get(name string) (Term, bool) {
	t, ok := b[name]
	return t, ok
}

// Value returns the bound value for the named variable, or the empty
// string when the variable is absent from this row.
func (b Binding) Value(name string) string {
	return b[name].Value
}

// Has reports whether the named variable is bound in this row.
func (b Binding) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Results is a decoded SELECT response.
type Results struct {
	Vars     []string
	Bindings []Binding
}

type resultsEnvelope struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

func decodeResults(raw []byte) (Results, error) {
	var envelope resultsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Results{}, fmt.Errorf("%w: malformed result body: %v", ErrUnavailable, err)
	}
	return Results{
		Vars:     envelope.Head.Vars,
		Bindings: envelope.Results.Bindings,
	}, nil
}
