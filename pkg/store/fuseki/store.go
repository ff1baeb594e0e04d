// Package fuseki implements the store.ArticleStorage contract against a
// Fuseki-compatible triple store, going through the sparql gateway for
// every read and write.
package fuseki

import (
	"context"
	"strings"

	"wep/pkg/sparql"
	"wep/pkg/store"
)

// Gateway is the slice of the sparql client the store depends on. Tests
// substitute a fake; production wiring passes *sparql.Client.
type Gateway interface {
	Select(ctx context.Context, query string) (sparql.Results, error)
	Construct(ctx context.Context, query, format string) (string, error)
	Update(ctx context.Context, update string) bool
	Ping(ctx context.Context) bool
}

// Store reads and writes provenance graphs for news articles. It holds no
// cross-call state; every operation is a round trip against the gateway.
type Store struct {
	gw        Gateway
	namespace string
}

var _ store.ArticleStorage = (*Store)(nil)

// NewStoreParams contains configuration for creating a Store.
//
// Namespace is the base IRI under which article, activity and agent nodes
// are minted, typically the service's public base URL.
type NewStoreParams struct {
	Gateway   Gateway
	Namespace string
}

// NewStore creates a Store over the given gateway.
func NewStore(params NewStoreParams) *Store {
	return &Store{
		gw:        params.Gateway,
		namespace: strings.TrimRight(params.Namespace, "/"),
	}
}

// Ping reports liveness of the underlying triple store.
func (s *Store) Ping(ctx context.Context) bool {
	return s.gw.Ping(ctx)
}

func (s *Store) articleURI(id string) string {
	return sparql.EntityURI(s.namespace, "article", id)
}

// idFromURI recovers the opaque article token from a node IRI.
func idFromURI(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
