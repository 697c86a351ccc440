package jelly

import "fmt"

// ModelKind identifies the concrete shape of a ModelTerm.
type ModelKind uint8

const (
	ModelKindIRI ModelKind = iota
	ModelKindBlankNode
	ModelKindLiteral
	ModelKindTripleTerm
)

// ModelTerm is a materialized RDF term usable as a host-side value,
// the Term type parameter ModelMaterializer fills in for Decoder.
type ModelTerm interface {
	Kind() ModelKind
	String() string
}

// ModelIRI is a materialized IRI term.
type ModelIRI struct {
	Value string
}

func (i ModelIRI) Kind() ModelKind { return ModelKindIRI }
func (i ModelIRI) String() string  { return i.Value }

// ModelBlankNode is a materialized blank node term.
type ModelBlankNode struct {
	ID string
}

func (b ModelBlankNode) Kind() ModelKind { return ModelKindBlankNode }
func (b ModelBlankNode) String() string  { return "_:" + b.ID }

// ModelLiteral is a materialized literal term: exactly one of Lang or
// Datatype.Value is non-empty, or neither (a plain/xsd:string literal).
type ModelLiteral struct {
	Lexical  string
	Datatype ModelIRI
	Lang     string
}

func (l ModelLiteral) Kind() ModelKind { return ModelKindLiteral }

func (l ModelLiteral) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// ModelTripleTerm is a materialized RDF-star quoted-triple term.
type ModelTripleTerm struct {
	S ModelTerm
	P ModelIRI
	O ModelTerm
}

func (t ModelTripleTerm) Kind() ModelKind { return ModelKindTripleTerm }

func (t ModelTripleTerm) String() string {
	return fmt.Sprintf("<<%s %s %s>>", t.S.String(), t.P.String(), t.O.String())
}

// NewModelTripleTerm builds a quoted-triple term from three already
// materialized terms, enforcing the wire-level constraint that a
// nested triple's predicate position is always an IRI: TermNode's
// triple_term field has no slot for anything else. Returns a
// *NotImplementedError if p is not a ModelIRI.
func NewModelTripleTerm(s ModelTerm, p ModelTerm, o ModelTerm) (ModelTripleTerm, error) {
	pIRI, ok := p.(ModelIRI)
	if !ok {
		return ModelTripleTerm{}, &NotImplementedError{Feature: "non-IRI predicate in quoted triple term"}
	}
	return ModelTripleTerm{S: s, P: pIRI, O: o}, nil
}

// ModelTriple is a materialized RDF triple, the Triple type parameter
// ModelMaterializer fills in for Decoder.
type ModelTriple struct {
	S ModelTerm
	P ModelIRI
	O ModelTerm
}

// ModelQuad is a materialized RDF quad, the Quad type parameter
// ModelMaterializer fills in for Decoder. G is nil for the default
// graph.
type ModelQuad struct {
	S ModelTerm
	P ModelIRI
	O ModelTerm
	G ModelTerm
}

// ToTriple extracts the triple from a quad, ignoring the graph.
func (q ModelQuad) ToTriple() ModelTriple {
	return ModelTriple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad carries no named graph.
func (q ModelQuad) InDefaultGraph() bool {
	return q.G == nil
}

// ToQuad converts a triple to a quad in the default graph.
func (t ModelTriple) ToQuad() ModelQuad {
	return ModelQuad{S: t.S, P: t.P, O: t.O, G: nil}
}

// ToQuadInGraph converts a triple to a quad in a named graph.
func (t ModelTriple) ToQuadInGraph(graph ModelTerm) ModelQuad {
	return ModelQuad{S: t.S, P: t.P, O: t.O, G: graph}
}
