package jelly

import "fmt"

// StringMaterializer is the simplest Materializer: every term is its
// own N-Triples-style string rendering, and triples/quads are plain
// string arrays. It carries no host state.
type StringMaterializer struct{}

func (StringMaterializer) IRI(prefix, name string, dec *Decoder[string, [3]string, [4]string, NoState]) (string, error) {
	return fmt.Sprintf("<%s%s>", prefix, name), nil
}

func (StringMaterializer) BNode(key string, dec *Decoder[string, [3]string, [4]string, NoState]) (string, error) {
	return "_:B" + key, nil
}

func (StringMaterializer) Literal(lex, lang, datatype string, dec *Decoder[string, [3]string, [4]string, NoState]) (string, error) {
	switch {
	case lang != "":
		return fmt.Sprintf("%q@%s", lex, lang), nil
	case datatype != "":
		return fmt.Sprintf("%q^^<%s>", lex, datatype), nil
	default:
		return fmt.Sprintf("%q", lex), nil
	}
}

func (StringMaterializer) TermTriple(s, p, o string, dec *Decoder[string, [3]string, [4]string, NoState]) (string, error) {
	return fmt.Sprintf("<< %s %s %s >>", s, p, o), nil
}

func (StringMaterializer) Triple(dec *Decoder[string, [3]string, [4]string, NoState]) ([3]string, error) {
	return [3]string{dec.LastSubject(), dec.LastPredicate(), dec.LastObject()}, nil
}

func (StringMaterializer) Quad(dec *Decoder[string, [3]string, [4]string, NoState]) ([4]string, error) {
	graph, _ := dec.LastGraph()
	return [4]string{dec.LastSubject(), dec.LastPredicate(), dec.LastObject(), graph}, nil
}
