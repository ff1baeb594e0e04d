// Package vocab holds the RDF vocabulary used by the provenance store:
// PROV-O for provenance, schema.org and Dublin Core for article metadata,
// IPTC for topical subjects, and the service's own wep namespace.
package vocab

// Namespace base IRIs.
const (
	Prov    = "http://www.w3.org/ns/prov#"
	Schema  = "http://schema.org/"
	Dc      = "http://purl.org/dc/elements/1.1/"
	Dcterms = "http://purl.org/dc/terms/"
	Iptc    = "http://iptc.org/std/Iptc4xmpExt/2008-02-29/"
	Wep     = "http://example.org/wep/"
	Xsd     = "http://www.w3.org/2001/XMLSchema#"
	Owl     = "http://www.w3.org/2002/07/owl#"
	Rdfs    = "http://www.w3.org/2000/01/rdf-schema#"
	Shacl   = "http://www.w3.org/ns/shacl#"
)

// PROV-O classes and properties.
const (
	// ProvEntity marks a thing with provenance.
	ProvEntity = Prov + "Entity"

	// ProvActivity marks the act that produced an entity.
	ProvActivity = Prov + "Activity"

	// ProvAgent marks the party responsible for an activity.
	ProvAgent = Prov + "Agent"

	// ProvWasGeneratedBy links an entity to its generating activity.
	ProvWasGeneratedBy = Prov + "wasGeneratedBy"

	// ProvWasAssociatedWith links an activity to its agent.
	ProvWasAssociatedWith = Prov + "wasAssociatedWith"

	// ProvWasDerivedFrom links an entity to the resource it was derived from.
	ProvWasDerivedFrom = Prov + "wasDerivedFrom"

	// ProvWasRevisionOf links an entity to the entity it revises or translates.
	ProvWasRevisionOf = Prov + "wasRevisionOf"

	ProvStartedAtTime = Prov + "startedAtTime"
	ProvEndedAtTime   = Prov + "endedAtTime"
)

// schema.org classes and properties for news articles.
const (
	SchemaNewsArticle = Schema + "NewsArticle"
	SchemaPerson      = Schema + "Person"

	SchemaHeadline    = Schema + "headline"
	SchemaAuthor      = Schema + "author"
	SchemaArticleBody = Schema + "articleBody"
	SchemaPublisher   = Schema + "publisher"
	SchemaInLanguage  = Schema + "inLanguage"
	SchemaDateCreated = Schema + "dateCreated"
	SchemaKeywords    = Schema + "keywords"
	SchemaImage       = Schema + "image"
	SchemaVideo       = Schema + "video"
	SchemaAudio       = Schema + "audio"
	SchemaName        = Schema + "name"
)

// Dublin Core duplicates. Article descriptive fields are written under both
// schema.org and Dublin Core predicates so either vocabulary queries cleanly.
const (
	DcTitle        = Dc + "title"
	DcCreator      = Dc + "creator"
	DcPublisher    = Dc + "publisher"
	DcLanguage     = Dc + "language"
	DctermsCreated = Dcterms + "created"
)

// IPTC and wep service terms.
const (
	// IptcSubject records an IPTC topical subject code or label.
	IptcSubject = Iptc + "subject"

	// WepRelatedEntity links an article to any knowledge-base entity it
	// mentions. Cross-referenced entities are recorded here too, so the
	// related set is always a superset of the cross-reference set.
	WepRelatedEntity = Wep + "relatedEntity"

	// WepWikidataEntity links an article to a Wikidata cross-reference.
	WepWikidataEntity = Wep + "wikidataEntity"
)

// XSD datatypes and misc terms.
const (
	XsdDateTime = Xsd + "dateTime"
	OwlSameAs   = Owl + "sameAs"
	RdfsLiteral = Rdfs + "Literal"
)

// PrefixBlock is the prefix header shared by the store's queries and updates.
const PrefixBlock = `PREFIX prov: <http://www.w3.org/ns/prov#>
PREFIX dc: <http://purl.org/dc/elements/1.1/>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX schema: <http://schema.org/>
PREFIX iptc: <http://iptc.org/std/Iptc4xmpExt/2008-02-29/>
PREFIX wep: <http://example.org/wep/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
`
