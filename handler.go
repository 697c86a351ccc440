package jelly

// Handler is the callback surface by which materialized triples/quads
// leave the decoder. The decoder calls at most one of HandleTriple or
// HandleQuad per emitting row, in wire order. Pass a pointer-typed
// implementation so accumulated state remains visible to the caller
// after HandleFrame returns.
type Handler[Triple, Quad any] interface {
	HandleTriple(Triple) error
	HandleQuad(Quad) error
}

// HandlerFuncs adapts two functions into a Handler. A nil OnTriple or
// OnQuad is treated as a no-op; the decoder only ever calls one of the
// two for a given emitting row.
type HandlerFuncs[Triple, Quad any] struct {
	OnTriple func(Triple) error
	OnQuad   func(Quad) error
}

func (h HandlerFuncs[Triple, Quad]) HandleTriple(t Triple) error {
	if h.OnTriple == nil {
		return nil
	}
	return h.OnTriple(t)
}

func (h HandlerFuncs[Triple, Quad]) HandleQuad(q Quad) error {
	if h.OnQuad == nil {
		return nil
	}
	return h.OnQuad(q)
}

// CollectingHandler accumulates every triple/quad it receives, mirroring
// the original Rust reference implementation's Vec-based handler used in
// its string-materialized round-trip tests.
type CollectingHandler[Triple, Quad any] struct {
	Triples []Triple
	Quads   []Quad
}

func (h *CollectingHandler[Triple, Quad]) HandleTriple(t Triple) error {
	h.Triples = append(h.Triples, t)
	return nil
}

func (h *CollectingHandler[Triple, Quad]) HandleQuad(q Quad) error {
	h.Quads = append(h.Quads, q)
	return nil
}
