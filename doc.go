// Package jelly implements the core of a streaming deserializer for the
// Jelly binary RDF protocol: a length-prefixed sequence of frames, each
// carrying rows that configure the stream, populate bounded dictionary
// tables, mark graph boundaries, or assert triples/quads as compact
// indices into those dictionaries.
//
// The package is split into:
//   - Frame Transport (varint.go): decodes the length-prefixed byte
//     stream into frames, synchronously (FrameReader) or asynchronously
//     with context cancellation (AsyncFrameReader).
//   - Wire Codec (wire.go): decodes/encodes the frame payload's row
//     union from/to the Protobuf wire format.
//   - Lookup Table (lookup.go): the bounded, 1-indexed, rotating-cursor
//     dictionary used for names, prefixes, and datatypes.
//   - Frame Decoder (decoder.go): the state machine that validates row
//     sequencing against the declared physical stream type and
//     assembles triples/quads from the wire's "repeat previous term"
//     compression.
//   - Materialization Interface (materializer.go): the pluggable
//     contract a host RDF model implements to receive decoded terms.
//   - Handler Interface (handler.go): the callback surface by which
//     assembled triples/quads leave the decoder.
//
// Two reference materializers ship alongside the core: StringMaterializer
// (materializer_strings.go), which renders terms as N-Quads-style
// strings, and ModelMaterializer (materializer_model.go), which builds
// the shared IRI/BlankNode/Literal/TripleTerm model in model.go.
//
// Example (decoding a stream into N-Quads-style strings):
//
//	dec := jelly.NewDecoder[string, [3]string, [4]string, jelly.NoState](jelly.StringMaterializer{})
//	reader := jelly.NewFrameReader(r)
//	h := jelly.HandlerFuncs[[3]string, [4]string]{
//	    OnTriple: func(t [3]string) error { fmt.Println(t); return nil },
//	}
//	for {
//	    frame, err := reader.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    if err := dec.HandleFrame(frame, h); err != nil {
//	        // handle error
//	    }
//	}
//
// Jelly's RDF-star ("quoted triple") terms and named-graph framing are
// supported; query, canonicalization, storage, the Protobuf schema
// generator, the conformance-test harness, and serializing RDF into a
// stream are out of scope for this package. EncodeFrame and FrameWriter
// only re-encode rows that are already built, for round-trip testing.
package jelly
