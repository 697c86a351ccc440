package jelly

import "testing"

func newModelDecoder(validate bool) *modelDecoder {
	return NewDecoder[ModelTerm, ModelTriple, ModelQuad, BlankNodeTable](ModelMaterializer{ValidateIRIs: validate})
}

func TestModelMaterializerIRI(t *testing.T) {
	dec := newModelDecoder(false)
	term, err := ModelMaterializer{}.IRI("http://ex.org/", "a", dec)
	if err != nil {
		t.Fatalf("IRI: %v", err)
	}
	iri, ok := term.(ModelIRI)
	if !ok || iri.Value != "http://ex.org/a" {
		t.Fatalf("got %+v", term)
	}
}

func TestModelMaterializerIRIValidationRejectsMalformed(t *testing.T) {
	dec := newModelDecoder(true)
	_, err := ModelMaterializer{ValidateIRIs: true}.IRI("not a scheme ", "<bad>", dec)
	if err == nil {
		t.Fatal("expected validation error for malformed IRI")
	}
}

func TestModelMaterializerIRIValidationAcceptsWellFormed(t *testing.T) {
	dec := newModelDecoder(true)
	_, err := ModelMaterializer{ValidateIRIs: true}.IRI("http://ex.org/", "a", dec)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestModelMaterializerBNodeInterning(t *testing.T) {
	dec := newModelDecoder(false)
	m := ModelMaterializer{}

	first, err := m.BNode("b1", dec)
	if err != nil {
		t.Fatalf("BNode: %v", err)
	}
	second, err := m.BNode("b1", dec)
	if err != nil {
		t.Fatalf("BNode: %v", err)
	}
	if first != second {
		t.Fatalf("same key produced different blank nodes: %+v vs %+v", first, second)
	}
	other, err := m.BNode("b2", dec)
	if err != nil {
		t.Fatalf("BNode: %v", err)
	}
	if other == first {
		t.Fatal("different keys produced the same blank node")
	}
	table := *dec.State()
	if len(table) != 2 {
		t.Fatalf("blank node table has %d entries, want 2", len(table))
	}
}

func TestModelMaterializerLiteral(t *testing.T) {
	dec := newModelDecoder(false)
	m := ModelMaterializer{}

	plain, err := m.Literal("hi", "", "", dec)
	if err != nil {
		t.Fatalf("Literal: %v", err)
	}
	lit, ok := plain.(ModelLiteral)
	if !ok || lit.Lexical != "hi" || lit.Lang != "" || lit.Datatype.Value != "" {
		t.Fatalf("got %+v", plain)
	}

	typed, err := m.Literal("1", "", "http://www.w3.org/2001/XMLSchema#integer", dec)
	if err != nil {
		t.Fatalf("Literal: %v", err)
	}
	typedLit := typed.(ModelLiteral)
	if typedLit.Datatype.Value != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Fatalf("got %+v", typedLit)
	}
}

func TestModelMaterializerTermTripleRejectsNonIRIPredicate(t *testing.T) {
	dec := newModelDecoder(false)
	m := ModelMaterializer{}
	_, err := m.TermTriple(ModelIRI{Value: "s"}, ModelLiteral{Lexical: "not-a-predicate"}, ModelIRI{Value: "o"}, dec)
	if _, ok := err.(*NotImplementedError); !ok {
		t.Fatalf("expected NotImplementedError, got %v", err)
	}
}

func TestModelMaterializerTermTripleBuildsQuotedTriple(t *testing.T) {
	dec := newModelDecoder(false)
	m := ModelMaterializer{}
	s := ModelIRI{Value: "s"}
	p := ModelIRI{Value: "p"}
	o := ModelIRI{Value: "o"}
	term, err := m.TermTriple(s, p, o, dec)
	if err != nil {
		t.Fatalf("TermTriple: %v", err)
	}
	tt, ok := term.(ModelTripleTerm)
	if !ok || tt.S != ModelTerm(s) || tt.P != p || tt.O != ModelTerm(o) {
		t.Fatalf("got %+v", term)
	}
}

func TestModelMaterializerTripleAndQuadAssembly(t *testing.T) {
	dec := newModelDecoder(false)
	var h CollectingHandler[ModelTriple, ModelQuad]
	iriTerm := func(prefix, name uint32) *TermNode {
		return &TermNode{Kind: TermNodeIRI, IRI: TermIRI{PrefixID: prefix, NameID: name}}
	}
	frame := &Frame{Rows: []Row{
		optionsRow(PhysicalStreamQuads, 8, 2, 0),
		{Kind: RowKindPrefix, Prefix: &TableEntry{ID: 0, Value: "http://ex.org/"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "s"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "p"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "o"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "g"}},
		{
			Kind: RowKindQuad,
			Quad: &WireQuad{
				Subject: iriTerm(1, 1), Predicate: iriTerm(1, 2), Object: iriTerm(1, 3),
				Graph: &GraphTerm{Kind: GraphTermIRI, IRI: TermIRI{PrefixID: 1, NameID: 4}},
			},
		},
	}}
	if err := dec.HandleFrame(frame, &h); err != nil {
		t.Fatalf("HandleFrame: %v", err)
	}
	if len(h.Quads) != 1 {
		t.Fatalf("got %d quads, want 1", len(h.Quads))
	}
	q := h.Quads[0]
	if q.InDefaultGraph() {
		t.Fatal("quad should carry a named graph")
	}
	if q.S.(ModelIRI).Value != "http://ex.org/s" || q.P.Value != "http://ex.org/p" || q.O.(ModelIRI).Value != "http://ex.org/o" {
		t.Fatalf("unexpected quad: %+v", q)
	}
	triple := q.ToTriple()
	if triple.S != q.S || triple.P != q.P || triple.O != q.O {
		t.Fatalf("ToTriple mismatch: %+v vs %+v", triple, q)
	}
}

func TestModelMaterializerQuadDefaultGraph(t *testing.T) {
	dec := newModelDecoder(false)
	var h CollectingHandler[ModelTriple, ModelQuad]
	iriTerm := func(prefix, name uint32) *TermNode {
		return &TermNode{Kind: TermNodeIRI, IRI: TermIRI{PrefixID: prefix, NameID: name}}
	}
	frame := &Frame{Rows: []Row{
		optionsRow(PhysicalStreamQuads, 8, 2, 0),
		{Kind: RowKindPrefix, Prefix: &TableEntry{ID: 0, Value: "http://ex.org/"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "s"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "p"}},
		{Kind: RowKindName, Name: &TableEntry{ID: 0, Value: "o"}},
		{
			Kind: RowKindQuad,
			Quad: &WireQuad{Subject: iriTerm(1, 1), Predicate: iriTerm(1, 2), Object: iriTerm(1, 3)},
		},
	}}
	if err := dec.HandleFrame(frame, &h); err != nil {
		t.Fatalf("HandleFrame: %v", err)
	}
	if !h.Quads[0].InDefaultGraph() {
		t.Fatalf("expected default graph, got %+v", h.Quads[0].G)
	}
}
