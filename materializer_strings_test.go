package jelly

import "testing"

func TestStringMaterializerIRI(t *testing.T) {
	dec := newStringDecoder()
	got, err := StringMaterializer{}.IRI("http://ex.org/", "a", dec)
	if err != nil {
		t.Fatalf("IRI: %v", err)
	}
	if got != "<http://ex.org/a>" {
		t.Fatalf("got %q", got)
	}
}

func TestStringMaterializerBNode(t *testing.T) {
	dec := newStringDecoder()
	got, err := StringMaterializer{}.BNode("b1", dec)
	if err != nil {
		t.Fatalf("BNode: %v", err)
	}
	if got != "_:Bb1" {
		t.Fatalf("got %q", got)
	}
}

func TestStringMaterializerLiteralVariants(t *testing.T) {
	dec := newStringDecoder()
	m := StringMaterializer{}

	plain, err := m.Literal("hi", "", "", dec)
	if err != nil || plain != `"hi"` {
		t.Fatalf("plain literal = %q, %v", plain, err)
	}
	lang, err := m.Literal("hi", "en", "", dec)
	if err != nil || lang != `"hi"@en` {
		t.Fatalf("lang literal = %q, %v", lang, err)
	}
	typed, err := m.Literal("1", "", "http://www.w3.org/2001/XMLSchema#integer", dec)
	if err != nil || typed != `"1"^^<http://www.w3.org/2001/XMLSchema#integer>` {
		t.Fatalf("typed literal = %q, %v", typed, err)
	}
}

func TestStringMaterializerTermTriple(t *testing.T) {
	dec := newStringDecoder()
	got, err := StringMaterializer{}.TermTriple("<s>", "<p>", "<o>", dec)
	if err != nil {
		t.Fatalf("TermTriple: %v", err)
	}
	if got != "<< <s> <p> <o> >>" {
		t.Fatalf("got %q", got)
	}
}

func TestStringMaterializerTripleAndQuadReadLastTermRegisters(t *testing.T) {
	dec := newStringDecoder()
	var h CollectingHandler[[3]string, [4]string]
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
	want := [4]string{"<http://ex.org/s>", "<http://ex.org/p>", "<http://ex.org/o>", ""}
	if h.Quads[0] != want {
		t.Fatalf("got %+v, want %+v", h.Quads[0], want)
	}
}
