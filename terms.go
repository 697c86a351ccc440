package jelly

import "fmt"

// PhysicalStreamType is the declared shape of a Jelly stream: all triples
// (no graphs), all quads (a graph on every row), or named graphs (graph
// framed by GraphStart/GraphEnd markers around triples).
type PhysicalStreamType int32

const (
	// PhysicalStreamUnspecified is never a valid configured value.
	PhysicalStreamUnspecified PhysicalStreamType = 0
	PhysicalStreamTriples     PhysicalStreamType = 1
	PhysicalStreamQuads       PhysicalStreamType = 2
	PhysicalStreamGraphs      PhysicalStreamType = 3
)

func (t PhysicalStreamType) String() string {
	switch t {
	case PhysicalStreamUnspecified:
		return "unspecified"
	case PhysicalStreamTriples:
		return "triples"
	case PhysicalStreamQuads:
		return "quads"
	case PhysicalStreamGraphs:
		return "graphs"
	default:
		return fmt.Sprintf("PhysicalStreamType(%d)", int32(t))
	}
}

// Hard protocol caps on dictionary table sizes.
const (
	MaxNameTableSizeCap     = 4096
	MaxPrefixTableSizeCap   = 1024
	MaxDatatypeTableSizeCap = 256
)

// StreamOptions is the decoded payload of a stream's Options row.
type StreamOptions struct {
	PhysicalType         PhysicalStreamType
	MaxNameTableSize     uint32
	MaxPrefixTableSize   uint32
	MaxDatatypeTableSize uint32
}

// RowKind identifies the tagged-union variant of a decoded Row.
type RowKind uint8

const (
	RowKindNone RowKind = iota
	RowKindOptions
	RowKindName
	RowKindPrefix
	RowKindDatatype
	RowKindNamespace
	RowKindTriple
	RowKindQuad
	RowKindGraphStart
	RowKindGraphEnd
)

func (k RowKind) String() string {
	switch k {
	case RowKindOptions:
		return "Options"
	case RowKindName:
		return "Name"
	case RowKindPrefix:
		return "Prefix"
	case RowKindDatatype:
		return "Datatype"
	case RowKindNamespace:
		return "Namespace"
	case RowKindTriple:
		return "Triple"
	case RowKindQuad:
		return "Quad"
	case RowKindGraphStart:
		return "GraphStart"
	case RowKindGraphEnd:
		return "GraphEnd"
	default:
		return "None"
	}
}

// LiteralKind discriminates the literal_kind oneof of a wire literal.
type LiteralKind uint8

const (
	LiteralKindPlain LiteralKind = iota
	LiteralKindLangTag
	LiteralKindDatatype
)

// TermIRI is the wire-level (prefix_id, name_id) pair for an IRI.
type TermIRI struct {
	PrefixID uint32
	NameID   uint32
}

// TermLiteral is the wire-level literal descriptor: a lexical form plus
// an optional language tag or datatype id.
type TermLiteral struct {
	Lex        string
	Kind       LiteralKind
	LangTag    string
	DatatypeID uint32
}

// TermNodeKind discriminates the oneof carried by a TermNode.
type TermNodeKind uint8

const (
	TermNodeNone TermNodeKind = iota
	TermNodeIRI
	TermNodeBlankNode
	TermNodeLiteral
	TermNodeTripleTerm
)

// TermNode is a wire-level term descriptor as it appears in a subject,
// predicate, or object position: one of an IRI reference, a blank node
// key, a literal, or a nested (RDF-star) triple. TermNodeNone means the
// position was absent on the wire.
type TermNode struct {
	Kind       TermNodeKind
	IRI        TermIRI
	BlankNode  string
	Literal    TermLiteral
	TripleTerm *WireTriple
}

// GraphTermKind discriminates the oneof carried by a GraphTerm.
type GraphTermKind uint8

const (
	GraphTermNone GraphTermKind = iota
	GraphTermIRI
	GraphTermBlankNode
	GraphTermLiteral
	GraphTermDefault
)

// GraphTerm is a wire-level graph descriptor, as carried by a GraphStart
// row or a quad's graph position. GraphTermDefault is the explicit
// "default graph" marker, which clears the decoder's last-graph
// register rather than setting it.
type GraphTerm struct {
	Kind      GraphTermKind
	IRI       TermIRI
	BlankNode string
	Literal   TermLiteral
}

// WireTriple is the wire-level (subject, predicate, object) triple, used
// both for top-level Triple rows and for nested RDF-star triple terms.
// A nil position means "absent on the wire": top-level rows inherit the
// decoder's last-term registers, nested triples treat this as an error.
type WireTriple struct {
	Subject   *TermNode
	Predicate *TermNode
	Object    *TermNode
}

// WireQuad is the wire-level (subject, predicate, object, graph) quad
// used for top-level Quad rows. Graph is nil when the row carries no
// graph field at all (inherit last_graph unchanged); a non-nil
// GraphTermDefault explicitly clears last_graph.
type WireQuad struct {
	Subject   *TermNode
	Predicate *TermNode
	Object    *TermNode
	Graph     *GraphTerm
}

// TableEntry is a decoded Name/Prefix/Datatype entry row.
type TableEntry struct {
	ID    uint32
	Value string
}

// NamespaceDecl is a decoded, informational namespace declaration row.
type NamespaceDecl struct {
	Name  string
	Value *TermNode
}

// Row is one tagged-union element of a Frame. Exactly one of the
// pointer fields matching Kind is non-nil.
type Row struct {
	Kind       RowKind
	Options    *StreamOptions
	Name       *TableEntry
	Prefix     *TableEntry
	Datatype   *TableEntry
	Namespace  *NamespaceDecl
	Triple     *WireTriple
	Quad       *WireQuad
	GraphStart *GraphTerm
}

// Frame is one length-prefixed protocol message: a batch of rows.
type Frame struct {
	Rows []Row
}
