package jelly

// NoState is used as the State type parameter when a materializer has
// no host-side state to thread through the decoder (e.g.
// StringMaterializer).
type NoState = struct{}

// Cloner is implemented by a State type that supports Decoder.Clone.
// Materialization state is opaque to the decoder; only a State that
// opts in by implementing Cloner can be deep-copied.
type Cloner[State any] interface {
	Clone() State
}

// Materializer is the pluggable contract a host RDF model implements to
// turn the decoder's wire-level term descriptors into host-side RDF
// values. Term, Triple, and Quad are the host model's own types (e.g.
// owned strings, shared-ownership term objects, or a foreign-function
// callback handle); State is host-side materialization state the
// decoder threads through but never interprets, such as a blank-node
// interning map.
//
// Implementations must return owned or reference-counted terms, never
// terms borrowed from the Decoder: the decoder mutates its last-term
// registers between emissions, so a term that aliases decoder-owned
// memory would observe those mutations.
type Materializer[Term, Triple, Quad, State any] interface {
	// IRI builds a term from an already-resolved prefix and name string.
	IRI(prefix, name string, dec *Decoder[Term, Triple, Quad, State]) (Term, error)
	// BNode builds or interns a blank node from its raw wire key.
	BNode(key string, dec *Decoder[Term, Triple, Quad, State]) (Term, error)
	// Literal builds a literal term. Exactly one of lang/datatype is
	// non-empty, or neither (a plain/xsd:string literal).
	Literal(lex, lang, datatype string, dec *Decoder[Term, Triple, Quad, State]) (Term, error)
	// TermTriple builds an RDF-star quoted-triple term from three
	// already-materialized terms. Implementations that do not model
	// RDF-star should return a *NotImplementedError.
	TermTriple(s, p, o Term, dec *Decoder[Term, Triple, Quad, State]) (Term, error)
	// Triple assembles a Triple from the decoder's current last-term
	// registers, after they have been updated for the emitting row.
	Triple(dec *Decoder[Term, Triple, Quad, State]) (Triple, error)
	// Quad assembles a Quad from the decoder's current last-term
	// registers (including last graph), after they have been updated
	// for the emitting row.
	Quad(dec *Decoder[Term, Triple, Quad, State]) (Quad, error)
}
