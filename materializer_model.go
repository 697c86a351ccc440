package jelly

// BlankNodeTable interns blank node keys into stable ModelBlankNode
// values so repeated wire keys materialize to the same Go value,
// mirroring the deduplication a host RDF store would want. It
// implements Cloner so Decoder.Clone can copy materialization state
// along with the lookup tables.
type BlankNodeTable map[string]ModelBlankNode

func (t BlankNodeTable) Clone() BlankNodeTable {
	clone := make(BlankNodeTable, len(t))
	for k, v := range t {
		clone[k] = v
	}
	return clone
}

// ModelMaterializer builds terms from model.go's Term/Triple/Quad types,
// for hosts that want to work with structured RDF values instead of
// pre-rendered strings. ValidateIRIs, if true, rejects malformed IRIs
// at materialization time rather than passing them through.
type ModelMaterializer struct {
	ValidateIRIs bool
}

type modelDecoder = Decoder[ModelTerm, ModelTriple, ModelQuad, BlankNodeTable]

func (m ModelMaterializer) IRI(prefix, name string, dec *modelDecoder) (ModelTerm, error) {
	if m.ValidateIRIs {
		if err := ValidateIRIParts(prefix, name); err != nil {
			return nil, err
		}
	}
	return ModelIRI{Value: prefix + name}, nil
}

func (m ModelMaterializer) BNode(key string, dec *modelDecoder) (ModelTerm, error) {
	table := dec.State()
	if *table == nil {
		*table = BlankNodeTable{}
	}
	if bn, ok := (*table)[key]; ok {
		return bn, nil
	}
	bn := ModelBlankNode{ID: key}
	(*table)[key] = bn
	return bn, nil
}

func (m ModelMaterializer) Literal(lex, lang, datatype string, dec *modelDecoder) (ModelTerm, error) {
	lit := ModelLiteral{Lexical: lex, Lang: lang}
	if datatype != "" {
		lit.Datatype = ModelIRI{Value: datatype}
	}
	return lit, nil
}

func (m ModelMaterializer) TermTriple(s, p, o ModelTerm, dec *modelDecoder) (ModelTerm, error) {
	tt, err := NewModelTripleTerm(s, p, o)
	if err != nil {
		return nil, err
	}
	return tt, nil
}

func (m ModelMaterializer) Triple(dec *modelDecoder) (ModelTriple, error) {
	p, ok := dec.LastPredicate().(ModelIRI)
	if !ok {
		return ModelTriple{}, &NotImplementedError{Feature: "non-IRI predicate"}
	}
	return ModelTriple{S: dec.LastSubject(), P: p, O: dec.LastObject()}, nil
}

func (m ModelMaterializer) Quad(dec *modelDecoder) (ModelQuad, error) {
	p, ok := dec.LastPredicate().(ModelIRI)
	if !ok {
		return ModelQuad{}, &NotImplementedError{Feature: "non-IRI predicate"}
	}
	graph, _ := dec.LastGraph()
	return ModelQuad{S: dec.LastSubject(), P: p, O: dec.LastObject(), G: graph}, nil
}
