package fuseki

import (
	"context"
	"strings"

	"wep/pkg/sparql"
)

// fakeGateway scripts select results keyed by query substring and records
// every update it receives.
type fakeGateway struct {
	selects     map[string]sparql.Results
	selectErr   error
	updates     []string
	updateOK    bool
	constructed string
	alive       bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		selects:  make(map[string]sparql.Results),
		updateOK: true,
		alive:    true,
	}
}

// on registers a result for any query containing the given fragment.
func (f *fakeGateway) on(fragment string, rows ...sparql.Binding) {
	f.selects[fragment] = sparql.Results{Bindings: rows}
}

func (f *fakeGateway) Select(_ context.Context, query string) (sparql.Results, error) {
	if f.selectErr != nil {
		return sparql.Results{}, f.selectErr
	}
	for fragment, res := range f.selects {
		if strings.Contains(query, fragment) {
			return res, nil
		}
	}
	return sparql.Results{}, nil
}

func (f *fakeGateway) Construct(_ context.Context, query, format string) (string, error) {
	return f.constructed, nil
}

func (f *fakeGateway) Update(_ context.Context, update string) bool {
	f.updates = append(f.updates, update)
	return f.updateOK
}

func (f *fakeGateway) Ping(_ context.Context) bool {
	return f.alive
}

func iri(v string) sparql.Term {
	return sparql.Term{Type: "uri", Value: v}
}

func lit(v string) sparql.Term {
	return sparql.Term{Type: "literal", Value: v}
}
