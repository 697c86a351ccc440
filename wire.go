// Field numbering for the Protobuf messages decoded/encoded below is an
// internal, self-consistent stand-in for the real wire schema: no
// protoc toolchain is available to generate one from a .proto file, so
// the field tags below are this package's own invention, consistent
// between DecodeFrame and EncodeFrame. The message shape otherwise
// mirrors the data model's rows and term descriptors one-to-one.
//
//	RdfStreamFrame    { repeated RdfStreamRow rows = 1; }
//	RdfStreamRow      { oneof: options=1 name=2 prefix=3 datatype=4
//	                     triple=5 quad=6 graph_start=7 graph_end=8
//	                     namespace=9 }
//	RdfStreamOptions  { physical_type=1 max_name_table_size=2
//	                     max_prefix_table_size=3 max_datatype_table_size=4 }
//	RdfNameEntry/RdfPrefixEntry/RdfDatatypeEntry { id=1 value=2 }
//	RdfNamespaceDeclaration { name=1 value=2(TermNode) }
//	TermNode (subject/predicate/object/namespace value) { oneof:
//	                     iri=1(RdfIri) bnode=2(string) literal=3(RdfLiteral)
//	                     triple_term=4(RdfTriple) }
//	RdfIri            { prefix_id=1 name_id=2 }
//	RdfLiteral        { lex=1 oneof: langtag=2 datatype=3 }
//	RdfTriple         { subject=1(TermNode) predicate=2(TermNode) object=3(TermNode) }
//	RdfQuad           { subject=1(TermNode) predicate=2(TermNode) object=3(TermNode) graph=4(GraphTerm) }
//	GraphTerm         { oneof: iri=1(RdfIri) bnode=2(string) literal=3(RdfLiteral)
//	                     default_graph=4(varint 1) }
//
// RdfStreamRow's graph_start field carries a GraphTerm message
// directly; graph_end carries no payload at all. The decoder treats a
// GraphTerm field 4 of any wire type as the default-graph marker.
package jelly

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeFrame decodes a single RdfStreamFrame payload (the bytes
// following a frame's varint length prefix) into a Frame.
func DecodeFrame(payload []byte) (*Frame, error) {
	frame := &Frame{}
	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed frame: %w", protowire.ParseError(n))
		}
		payload = payload[n:]
		if num != 1 || typ != protowire.BytesType {
			skip := protowire.ConsumeFieldValue(num, typ, payload)
			if skip < 0 {
				return nil, fmt.Errorf("jelly: malformed frame: %w", protowire.ParseError(skip))
			}
			payload = payload[skip:]
			continue
		}
		rowBytes, n := protowire.ConsumeBytes(payload)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed frame row: %w", protowire.ParseError(n))
		}
		payload = payload[n:]
		row, err := decodeRow(rowBytes)
		if err != nil {
			return nil, err
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}

func decodeRow(b []byte) (Row, error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Row{}, fmt.Errorf("jelly: malformed row: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType {
			skip := protowire.ConsumeFieldValue(num, typ, b)
			if skip < 0 {
				return Row{}, fmt.Errorf("jelly: malformed row: %w", protowire.ParseError(skip))
			}
			b = b[skip:]
			continue
		}
		field, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return Row{}, fmt.Errorf("jelly: malformed row field: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case 1:
			opts, err := decodeStreamOptions(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindOptions, Options: opts}, nil
		case 2:
			e, err := decodeTableEntry(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindName, Name: e}, nil
		case 3:
			e, err := decodeTableEntry(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindPrefix, Prefix: e}, nil
		case 4:
			e, err := decodeTableEntry(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindDatatype, Datatype: e}, nil
		case 5:
			t, err := decodeWireTriple(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindTriple, Triple: t}, nil
		case 6:
			q, err := decodeWireQuad(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindQuad, Quad: q}, nil
		case 7:
			g, err := decodeGraphTerm(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindGraphStart, GraphStart: g}, nil
		case 8:
			return Row{Kind: RowKindGraphEnd}, nil
		case 9:
			nsd, err := decodeNamespaceDecl(field)
			if err != nil {
				return Row{}, err
			}
			return Row{Kind: RowKindNamespace, Namespace: nsd}, nil
		default:
			continue
		}
	}
	return Row{}, fmt.Errorf("jelly: row with no recognized oneof field")
}

func decodeStreamOptions(b []byte) (*StreamOptions, error) {
	opts := &StreamOptions{}
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		v, n, err := consumeVarint(typ, b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		switch num {
		case 1:
			opts.PhysicalType = PhysicalStreamType(v)
		case 2:
			opts.MaxNameTableSize = uint32(v)
		case 3:
			opts.MaxPrefixTableSize = uint32(v)
		case 4:
			opts.MaxDatatypeTableSize = uint32(v)
		}
	}
	return opts, nil
}

func decodeTableEntry(b []byte) (*TableEntry, error) {
	e := &TableEntry{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed table entry: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed table entry id: %w", protowire.ParseError(n))
			}
			e.ID = uint32(v)
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed table entry value: %w", protowire.ParseError(n))
			}
			e.Value = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed table entry: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return e, nil
}

func decodeNamespaceDecl(b []byte) (*NamespaceDecl, error) {
	nsd := &NamespaceDecl{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed namespace decl: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed namespace name: %w", protowire.ParseError(n))
			}
			nsd.Name = v
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed namespace value: %w", protowire.ParseError(n))
			}
			term, err := decodeTermNode(field)
			if err != nil {
				return nil, err
			}
			nsd.Value = term
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed namespace decl: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nsd, nil
}

func decodeWireTriple(b []byte) (*WireTriple, error) {
	wt := &WireTriple{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed triple: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed triple: %w", protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		field, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed triple field: %w", protowire.ParseError(n))
		}
		b = b[n:]
		term, err := decodeTermNode(field)
		if err != nil {
			return nil, err
		}
		switch num {
		case 1:
			wt.Subject = term
		case 2:
			wt.Predicate = term
		case 3:
			wt.Object = term
		}
	}
	return wt, nil
}

func decodeWireQuad(b []byte) (*WireQuad, error) {
	wq := &WireQuad{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed quad: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed quad: %w", protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		field, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed quad field: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case 1, 2, 3:
			term, err := decodeTermNode(field)
			if err != nil {
				return nil, err
			}
			switch num {
			case 1:
				wq.Subject = term
			case 2:
				wq.Predicate = term
			case 3:
				wq.Object = term
			}
		case 4:
			g, err := decodeGraphTerm(field)
			if err != nil {
				return nil, err
			}
			wq.Graph = g
		}
	}
	return wq, nil
}

func decodeTermNode(b []byte) (*TermNode, error) {
	node := &TermNode{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed term: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed term iri: %w", protowire.ParseError(n))
			}
			iri, err := decodeRdfIri(field)
			if err != nil {
				return nil, err
			}
			node.Kind, node.IRI = TermNodeIRI, iri
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed term bnode: %w", protowire.ParseError(n))
			}
			node.Kind, node.BlankNode = TermNodeBlankNode, v
			b = b[n:]
		case num == 3 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed term literal: %w", protowire.ParseError(n))
			}
			lit, err := decodeRdfLiteral(field)
			if err != nil {
				return nil, err
			}
			node.Kind, node.Literal = TermNodeLiteral, lit
			b = b[n:]
		case num == 4 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed term triple: %w", protowire.ParseError(n))
			}
			wt, err := decodeWireTriple(field)
			if err != nil {
				return nil, err
			}
			node.Kind, node.TripleTerm = TermNodeTripleTerm, wt
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed term: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return node, nil
}

func decodeGraphTerm(b []byte) (*GraphTerm, error) {
	g := &GraphTerm{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("jelly: malformed graph term: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed graph term iri: %w", protowire.ParseError(n))
			}
			iri, err := decodeRdfIri(field)
			if err != nil {
				return nil, err
			}
			g.Kind, g.IRI = GraphTermIRI, iri
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed graph term bnode: %w", protowire.ParseError(n))
			}
			g.Kind, g.BlankNode = GraphTermBlankNode, v
			b = b[n:]
		case num == 3 && typ == protowire.BytesType:
			field, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed graph term literal: %w", protowire.ParseError(n))
			}
			lit, err := decodeRdfLiteral(field)
			if err != nil {
				return nil, err
			}
			g.Kind, g.Literal = GraphTermLiteral, lit
			b = b[n:]
		case num == 4:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed graph term default: %w", protowire.ParseError(n))
			}
			g.Kind = GraphTermDefault
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("jelly: malformed graph term: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return g, nil
}

func decodeRdfIri(b []byte) (TermIRI, error) {
	var iri TermIRI
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return iri, err
		}
		b = b[n:]
		v, n, err := consumeVarint(typ, b)
		if err != nil {
			return iri, err
		}
		b = b[n:]
		switch num {
		case 1:
			iri.PrefixID = uint32(v)
		case 2:
			iri.NameID = uint32(v)
		}
	}
	return iri, nil
}

func decodeRdfLiteral(b []byte) (TermLiteral, error) {
	var lit TermLiteral
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return lit, fmt.Errorf("jelly: malformed literal: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return lit, fmt.Errorf("jelly: malformed literal lex: %w", protowire.ParseError(n))
			}
			lit.Lex = v
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return lit, fmt.Errorf("jelly: malformed literal langtag: %w", protowire.ParseError(n))
			}
			lit.Kind, lit.LangTag = LiteralKindLangTag, v
			b = b[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return lit, fmt.Errorf("jelly: malformed literal datatype: %w", protowire.ParseError(n))
			}
			lit.Kind, lit.DatatypeID = LiteralKindDatatype, uint32(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return lit, fmt.Errorf("jelly: malformed literal: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return lit, nil
}

func consumeTag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, fmt.Errorf("jelly: malformed tag: %w", protowire.ParseError(n))
	}
	return num, typ, n, nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		n := protowire.ConsumeFieldValue(0, typ, b)
		if n < 0 {
			return 0, 0, fmt.Errorf("jelly: malformed varint field: %w", protowire.ParseError(n))
		}
		return 0, n, nil
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("jelly: malformed varint: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

// EncodeFrame serializes frame into the wire payload bytes that
// DecodeFrame inverts. It exists for round-trip testing; the core
// decoder and the jellycat CLI never call it.
func EncodeFrame(frame *Frame) []byte {
	var out []byte
	for _, row := range frame.Rows {
		rowBytes := encodeRow(row)
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, rowBytes)
	}
	return out
}

func encodeRow(row Row) []byte {
	var b []byte
	switch row.Kind {
	case RowKindOptions:
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeStreamOptions(row.Options))
	case RowKindName:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTableEntry(row.Name))
	case RowKindPrefix:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTableEntry(row.Prefix))
	case RowKindDatatype:
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTableEntry(row.Datatype))
	case RowKindTriple:
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeWireTriple(row.Triple))
	case RowKindQuad:
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeWireQuad(row.Quad))
	case RowKindGraphStart:
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeGraphTerm(row.GraphStart))
	case RowKindGraphEnd:
		b = protowire.AppendTag(b, 8, protowire.BytesType)
		b = protowire.AppendBytes(b, nil)
	case RowKindNamespace:
		b = protowire.AppendTag(b, 9, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeNamespaceDecl(row.Namespace))
	}
	return b
}

func encodeStreamOptions(opts *StreamOptions) []byte {
	var b []byte
	if opts == nil {
		return b
	}
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(opts.PhysicalType))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(opts.MaxNameTableSize))
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(opts.MaxPrefixTableSize))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(opts.MaxDatatypeTableSize))
	return b
}

func encodeTableEntry(e *TableEntry) []byte {
	var b []byte
	if e == nil {
		return b
	}
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(e.ID))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, e.Value)
	return b
}

func encodeNamespaceDecl(nsd *NamespaceDecl) []byte {
	var b []byte
	if nsd == nil {
		return b
	}
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, nsd.Name)
	if nsd.Value != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(nsd.Value))
	}
	return b
}

func encodeWireTriple(wt *WireTriple) []byte {
	var b []byte
	if wt == nil {
		return b
	}
	if wt.Subject != nil {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wt.Subject))
	}
	if wt.Predicate != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wt.Predicate))
	}
	if wt.Object != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wt.Object))
	}
	return b
}

func encodeWireQuad(wq *WireQuad) []byte {
	var b []byte
	if wq == nil {
		return b
	}
	if wq.Subject != nil {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wq.Subject))
	}
	if wq.Predicate != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wq.Predicate))
	}
	if wq.Object != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeTermNode(wq.Object))
	}
	if wq.Graph != nil {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeGraphTerm(wq.Graph))
	}
	return b
}

func encodeTermNode(n *TermNode) []byte {
	var b []byte
	if n == nil {
		return b
	}
	switch n.Kind {
	case TermNodeIRI:
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeRdfIri(n.IRI))
	case TermNodeBlankNode:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, n.BlankNode)
	case TermNodeLiteral:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeRdfLiteral(n.Literal))
	case TermNodeTripleTerm:
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeWireTriple(n.TripleTerm))
	}
	return b
}

func encodeGraphTerm(g *GraphTerm) []byte {
	var b []byte
	if g == nil {
		return b
	}
	switch g.Kind {
	case GraphTermIRI:
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeRdfIri(g.IRI))
	case GraphTermBlankNode:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, g.BlankNode)
	case GraphTermLiteral:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeRdfLiteral(g.Literal))
	case GraphTermDefault:
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	return b
}

func encodeRdfIri(iri TermIRI) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(iri.PrefixID))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(iri.NameID))
	return b
}

func encodeRdfLiteral(lit TermLiteral) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, lit.Lex)
	switch lit.Kind {
	case LiteralKindLangTag:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, lit.LangTag)
	case LiteralKindDatatype:
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(lit.DatatypeID))
	}
	return b
}
