// Package shacl holds the shape graph for news articles and delegates
// validation to an external SHACL engine. Conformance checking itself is
// never reimplemented here; the engine owns it.
package shacl

import (
	"context"
	"fmt"

	"wep/pkg/vocab"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Validator checks an RDF data graph against a shapes graph.
type Validator interface {
	Validate(ctx context.Context, dataGraph, shapesGraph string) (*Report, error)
}

// Report is the outcome of one validation run.
type Report struct {
	// ID identifies this run, minted locally.
	ID       string `json:"id"`
	Conforms bool   `json:"conforms"`
	// Text is the engine's human-readable summary.
	Text string `json:"text"`
	// Graph is the engine's full validation report in turtle.
	Graph string `json:"graph,omitempty"`
}

func mintReportID() string {
	id, err := gonanoid.New()
	if err != nil {
		// gonanoid only fails when the system entropy source does.
		panic(fmt.Sprintf("mint report id: %v", err))
	}
	return "urn:shacl-report:" + id
}

// ShapesGraph returns the turtle shapes graph articles are validated
// against: every schema:NewsArticle needs a headline, an author, and a
// generating activity.
func ShapesGraph() string {
	return fmt.Sprintf(`@prefix sh: <%s> .
@prefix schema: <%s> .
@prefix prov: <%s> .
@prefix wep: <%s> .

wep:NewsArticleShape
    a sh:NodeShape ;
    sh:targetClass schema:NewsArticle ;
    sh:property [
        sh:path schema:headline ;
        sh:minCount 1 ;
        sh:datatype <%s> ;
        sh:message "A news article requires a headline." ;
    ] ;`, vocab.Shacl, vocab.Schema, vocab.Prov, vocab.Wep, vocab.RdfsLiteral) + `
    sh:property [
        sh:path schema:author ;
        sh:minCount 1 ;
        sh:message "A news article requires an author." ;
    ] ;
    sh:property [
        sh:path prov:wasGeneratedBy ;
        sh:minCount 1 ;
        sh:message "A news article requires a generating activity." ;
    ] .
`
}
