package sparql

import "strings"

// InsertBuilder assembles an INSERT DATA update from typed triple parts,
// keeping query structure separate from values. Literal values are escaped
// on the way in; empty values and empty IRIs are skipped so optional fields
// never produce dangling triples.
type InsertBuilder struct {
	prefixes string
	subjects []*SubjectBuilder
}

// NewInsert creates an InsertBuilder with the given prefix block.
func NewInsert(prefixes string) *InsertBuilder {
	return &InsertBuilder{prefixes: prefixes}
}

// Subject opens a triple block for the given subject IRI. Triples added to
// the returned SubjectBuilder share this subject.
func (b *InsertBuilder) Subject(iri string) *SubjectBuilder {
	s := &SubjectBuilder{subject: iri}
	b.subjects = append(b.subjects, s)
	return s
}

// String renders the complete update: prefix block plus one INSERT DATA
// section containing every accumulated triple.
func (b *InsertBuilder) String() string {
	var sb strings.Builder
	sb.WriteString(b.prefixes)
	sb.WriteString("INSERT DATA {\n")
	for _, s := range b.subjects {
		s.render(&sb)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// SubjectBuilder accumulates predicate-object pairs for one subject.
type SubjectBuilder struct {
	subject string
	triples []triple
}

type triple struct {
	predicate string
	object    string
}

// Type adds rdf:type triples for each non-empty class IRI.
func (s *SubjectBuilder) Type(classIRIs ...string) *SubjectBuilder {
	for _, iri := range classIRIs {
		if iri == "" {
			continue
		}
		s.triples = append(s.triples, triple{"a", "<" + iri + ">"})
	}
	return s
}

// Literal adds a plain string literal triple. The value is escaped; empty
// values are skipped.
func (s *SubjectBuilder) Literal(predicateIRI, value string) *SubjectBuilder {
	if value == "" {
		return s
	}
	s.triples = append(s.triples, triple{
		predicate: "<" + predicateIRI + ">",
		object:    `"` + EscapeLiteral(value) + `"`,
	})
	return s
}

// TypedLiteral adds a literal triple with an explicit datatype IRI.
func (s *SubjectBuilder) TypedLiteral(predicateIRI, value, datatypeIRI string) *SubjectBuilder {
	if value == "" {
		return s
	}
	s.triples = append(s.triples, triple{
		predicate: "<" + predicateIRI + ">",
		object:    `"` + EscapeLiteral(value) + `"^^<` + datatypeIRI + ">",
	})
	return s
}

// IRI adds a reference triple. Empty object IRIs are skipped.
func (s *SubjectBuilder) IRI(predicateIRI, objectIRI string) *SubjectBuilder {
	if objectIRI == "" {
		return s
	}
	s.triples = append(s.triples, triple{
		predicate: "<" + predicateIRI + ">",
		object:    "<" + objectIRI + ">",
	})
	return s
}

func (s *SubjectBuilder) render(sb *strings.Builder) {
	for _, t := range s.triples {
		sb.WriteString("    <")
		sb.WriteString(s.subject)
		sb.WriteString("> ")
		sb.WriteString(t.predicate)
		sb.WriteString(" ")
		sb.WriteString(t.object)
		sb.WriteString(" .\n")
	}
}
