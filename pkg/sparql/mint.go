package sparql

import "github.com/google/uuid"

// MintID produces a fresh 128-bit random token. Article, activity and agent
// nodes each get their own token; tokens are never reused.
func MintID() string {
	return uuid.NewString()
}

// EntityURI builds the IRI for a graph node from the configured namespace,
// an entity kind segment ("article", "activity" or "agent") and a minted
// token. The concatenation is deterministic so the same inputs always name
// the same node.
func EntityURI(namespace, kind, token string) string {
	return namespace + "/" + kind + "/" + token
}
