package jelly

import "log"

// DecoderOption configures a Decoder at construction time, following
// the functional-options pattern common across this package.
type DecoderOption[Term, Triple, Quad, State any] func(*Decoder[Term, Triple, Quad, State])

// WithLogger overrides the logger used for non-fatal diagnostics, such
// as a duplicate Options row being ignored. The default is log.Default().
func WithLogger[Term, Triple, Quad, State any](l *log.Logger) DecoderOption[Term, Triple, Quad, State] {
	return func(d *Decoder[Term, Triple, Quad, State]) {
		d.logger = l
	}
}

// Decoder is the per-stream state machine that applies a sequence of
// rows, resolving lookup-table references and last-term inheritance
// into materialized triples and quads. It is safe to reuse across
// multiple frames of the same stream, but a single instance must not be
// called from more than one goroutine concurrently: its lookup-table
// cursors and last-term registers are intrinsically sequential.
type Decoder[Term, Triple, Quad, State any] struct {
	materializer Materializer[Term, Triple, Quad, State]
	logger       *log.Logger

	configured   bool
	physicalType PhysicalStreamType

	nameTable     *LookupTable
	prefixTable   *LookupTable
	datatypeTable *LookupTable

	hasSubject, hasPredicate, hasObject, hasGraph bool
	lastSubject                                   Term
	lastPredicate                                 Term
	lastObject                                    Term
	lastGraph                                     Term

	graphOpen bool
	state     State
}

// NewDecoder returns an unconfigured decoder bound to materializer m.
func NewDecoder[Term, Triple, Quad, State any](m Materializer[Term, Triple, Quad, State], opts ...DecoderOption[Term, Triple, Quad, State]) *Decoder[Term, Triple, Quad, State] {
	d := &Decoder[Term, Triple, Quad, State]{
		materializer: m,
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns a pointer to the host-side materialization state so a
// Materializer implementation can read and mutate it (e.g. a blank-node
// interning map). The decoder never interprets this value.
func (d *Decoder[Term, Triple, Quad, State]) State() *State {
	return &d.state
}

// Configured reports whether the first Options row has been applied.
func (d *Decoder[Term, Triple, Quad, State]) Configured() bool {
	return d.configured
}

// PhysicalType returns the stream's configured physical type. Only
// meaningful once Configured() is true.
func (d *Decoder[Term, Triple, Quad, State]) PhysicalType() PhysicalStreamType {
	return d.physicalType
}

// Clone returns a deep copy of the decoder, including its lookup
// tables' rotating cursors, provided State implements Cloner[State].
// Term/Triple/Quad values in the last-term registers are copied by Go's
// normal assignment semantics (by value, or by reference for the host
// model's own reference-counted types).
func (d *Decoder[Term, Triple, Quad, State]) Clone() (*Decoder[Term, Triple, Quad, State], error) {
	cloner, ok := any(d.state).(Cloner[State])
	if !ok {
		return nil, ErrStateNotCloneable
	}
	clone := *d
	clone.state = cloner.Clone()
	if d.nameTable != nil {
		clone.nameTable = d.nameTable.Clone()
	}
	if d.prefixTable != nil {
		clone.prefixTable = d.prefixTable.Clone()
	}
	if d.datatypeTable != nil {
		clone.datatypeTable = d.datatypeTable.Clone()
	}
	return &clone, nil
}

// configure applies the stream's first Options row. Hard caps are
// enforced before any table is allocated, so a configuration that would
// exceed them never reserves memory for the oversized table.
func (d *Decoder[Term, Triple, Quad, State]) configure(opts *StreamOptions) error {
	if opts.PhysicalType == PhysicalStreamUnspecified {
		return &ConfigError{Reason: "physical_type must not be Unspecified"}
	}
	if opts.MaxNameTableSize > MaxNameTableSizeCap {
		return &ConfigError{Reason: "max_name_table_size exceeds protocol cap"}
	}
	if opts.MaxPrefixTableSize > MaxPrefixTableSizeCap {
		return &ConfigError{Reason: "max_prefix_table_size exceeds protocol cap"}
	}
	if opts.MaxDatatypeTableSize > MaxDatatypeTableSizeCap {
		return &ConfigError{Reason: "max_datatype_table_size exceeds protocol cap"}
	}
	d.nameTable = NewLookupTable(opts.MaxNameTableSize)
	d.prefixTable = NewLookupTable(opts.MaxPrefixTableSize)
	d.datatypeTable = NewLookupTable(opts.MaxDatatypeTableSize)
	d.physicalType = opts.PhysicalType
	d.configured = true
	return nil
}

// HandleFrame applies every row of frame, in order, calling handler for
// each emitting row. Processing aborts on the first error; rows already
// delivered to handler from earlier, successful rows in this frame are
// not rolled back.
func (d *Decoder[Term, Triple, Quad, State]) HandleFrame(frame *Frame, handler Handler[Triple, Quad]) error {
	for _, row := range frame.Rows {
		if err := d.handleRow(row, handler); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder[Term, Triple, Quad, State]) handleRow(row Row, handler Handler[Triple, Quad]) error {
	if row.Kind != RowKindOptions && !d.configured {
		return ErrUnconfigured
	}
	switch row.Kind {
	case RowKindOptions:
		if d.configured {
			d.logger.Printf("jelly: duplicate Options row ignored")
			return nil
		}
		return d.configure(row.Options)
	case RowKindName:
		return d.nameTable.Set(row.Name.ID, row.Name.Value)
	case RowKindPrefix:
		return d.prefixTable.Set(row.Prefix.ID, row.Prefix.Value)
	case RowKindDatatype:
		return d.datatypeTable.Set(row.Datatype.ID, row.Datatype.Value)
	case RowKindNamespace:
		return nil
	case RowKindTriple:
		return d.handleTriple(row.Triple, handler)
	case RowKindQuad:
		return d.handleQuad(row.Quad, handler)
	case RowKindGraphStart:
		return d.handleGraphStart(row.GraphStart)
	case RowKindGraphEnd:
		return d.handleGraphEnd()
	default:
		return &PhysicalStreamError{Kind: IncorrectType, Detected: d.physicalType, Incoming: row.Kind}
	}
}

func (d *Decoder[Term, Triple, Quad, State]) handleTriple(wt *WireTriple, handler Handler[Triple, Quad]) error {
	switch d.physicalType {
	case PhysicalStreamTriples:
	case PhysicalStreamGraphs:
		if !d.graphOpen {
			return &PhysicalStreamError{Kind: NotYetSet, Detected: d.physicalType, Expected: RowKindGraphStart}
		}
	default:
		return &PhysicalStreamError{Kind: IncorrectType, Detected: d.physicalType, Incoming: RowKindTriple}
	}
	if err := d.resolveSPO(wt.Subject, wt.Predicate, wt.Object); err != nil {
		return err
	}
	if err := d.requireTopLevel(); err != nil {
		return err
	}
	if d.physicalType == PhysicalStreamGraphs {
		q, err := d.materializer.Quad(d)
		if err != nil {
			return err
		}
		return handler.HandleQuad(q)
	}
	t, err := d.materializer.Triple(d)
	if err != nil {
		return err
	}
	return handler.HandleTriple(t)
}

func (d *Decoder[Term, Triple, Quad, State]) handleQuad(wq *WireQuad, handler Handler[Triple, Quad]) error {
	if d.physicalType != PhysicalStreamQuads {
		return &PhysicalStreamError{Kind: IncorrectType, Detected: d.physicalType, Incoming: RowKindQuad}
	}
	if err := d.resolveSPO(wq.Subject, wq.Predicate, wq.Object); err != nil {
		return err
	}
	if wq.Graph != nil {
		if err := d.resolveGraph(wq.Graph); err != nil {
			return err
		}
	}
	if err := d.requireTopLevel(); err != nil {
		return err
	}
	q, err := d.materializer.Quad(d)
	if err != nil {
		return err
	}
	return handler.HandleQuad(q)
}

func (d *Decoder[Term, Triple, Quad, State]) handleGraphStart(g *GraphTerm) error {
	if d.physicalType != PhysicalStreamGraphs {
		return &PhysicalStreamError{Kind: IncorrectType, Detected: d.physicalType, Incoming: RowKindGraphStart}
	}
	if err := d.resolveGraph(g); err != nil {
		return err
	}
	d.graphOpen = true
	return nil
}

func (d *Decoder[Term, Triple, Quad, State]) handleGraphEnd() error {
	if d.physicalType != PhysicalStreamGraphs {
		return &PhysicalStreamError{Kind: IncorrectType, Detected: d.physicalType, Incoming: RowKindGraphEnd}
	}
	var zero Term
	d.lastGraph = zero
	d.hasGraph = false
	d.graphOpen = false
	return nil
}

// resolveSPO updates the last-term registers for whichever of
// subject/predicate/object are present on this row; absent positions
// inherit the previous register value unchanged (the wire's
// repeat-previous-term compression).
func (d *Decoder[Term, Triple, Quad, State]) resolveSPO(subject, predicate, object *TermNode) error {
	if subject != nil {
		v, err := d.resolveTerm(subject)
		if err != nil {
			return err
		}
		d.lastSubject, d.hasSubject = v, true
	}
	if predicate != nil {
		v, err := d.resolveTerm(predicate)
		if err != nil {
			return err
		}
		d.lastPredicate, d.hasPredicate = v, true
	}
	if object != nil {
		v, err := d.resolveTerm(object)
		if err != nil {
			return err
		}
		d.lastObject, d.hasObject = v, true
	}
	return nil
}

func (d *Decoder[Term, Triple, Quad, State]) resolveGraph(g *GraphTerm) error {
	if g.Kind == GraphTermDefault {
		var zero Term
		d.lastGraph, d.hasGraph = zero, false
		return nil
	}
	v, err := d.resolveGraphTerm(g)
	if err != nil {
		return err
	}
	d.lastGraph, d.hasGraph = v, true
	return nil
}

func (d *Decoder[Term, Triple, Quad, State]) requireTopLevel() error {
	if !d.hasSubject {
		return &MissingTermError{Position: PositionSubject}
	}
	if !d.hasPredicate {
		return &MissingTermError{Position: PositionPredicate}
	}
	if !d.hasObject {
		return &MissingTermError{Position: PositionObject}
	}
	return nil
}

// resolveTerm dispatches a wire-level term descriptor to the
// materializer. The prefix-then-name lookup order for IRIs is
// load-bearing: both calls mutate their table's last_read cursor, and
// reordering them changes wire compatibility.
func (d *Decoder[Term, Triple, Quad, State]) resolveTerm(n *TermNode) (Term, error) {
	var zero Term
	switch n.Kind {
	case TermNodeIRI:
		prefix, err := d.prefixTable.GetTolerant(n.IRI.PrefixID, LookupStay)
		if err != nil {
			return zero, err
		}
		name, err := d.nameTable.Get(n.IRI.NameID, LookupIncrement)
		if err != nil {
			return zero, err
		}
		return d.materializer.IRI(prefix, name, d)
	case TermNodeBlankNode:
		return d.materializer.BNode(n.BlankNode, d)
	case TermNodeLiteral:
		return d.resolveLiteral(n.Literal)
	case TermNodeTripleTerm:
		return d.resolveTripleTerm(n.TripleTerm)
	default:
		return zero, &MissingTermError{}
	}
}

func (d *Decoder[Term, Triple, Quad, State]) resolveGraphTerm(g *GraphTerm) (Term, error) {
	var zero Term
	switch g.Kind {
	case GraphTermIRI:
		prefix, err := d.prefixTable.GetTolerant(g.IRI.PrefixID, LookupStay)
		if err != nil {
			return zero, err
		}
		name, err := d.nameTable.Get(g.IRI.NameID, LookupIncrement)
		if err != nil {
			return zero, err
		}
		return d.materializer.IRI(prefix, name, d)
	case GraphTermBlankNode:
		return d.materializer.BNode(g.BlankNode, d)
	case GraphTermLiteral:
		return d.resolveLiteral(g.Literal)
	default:
		return zero, &MissingTermError{Position: PositionGraph}
	}
}

func (d *Decoder[Term, Triple, Quad, State]) resolveLiteral(lit TermLiteral) (Term, error) {
	var zero Term
	switch lit.Kind {
	case LiteralKindLangTag:
		return d.materializer.Literal(lit.Lex, lit.LangTag, "", d)
	case LiteralKindDatatype:
		dt, err := d.datatypeTable.Get(lit.DatatypeID, LookupInvalid)
		if err != nil {
			return zero, err
		}
		return d.materializer.Literal(lit.Lex, "", dt, d)
	default:
		return d.materializer.Literal(lit.Lex, "", "", d)
	}
}

// resolveTripleTerm materializes a nested RDF-star triple. Nested
// triples never inherit from the decoder's last-term registers: every
// position must be present, or the row fails with MissingTermError.
func (d *Decoder[Term, Triple, Quad, State]) resolveTripleTerm(wt *WireTriple) (Term, error) {
	var zero Term
	if wt.Subject == nil {
		return zero, &MissingTermError{Nested: true, Position: PositionSubject}
	}
	if wt.Predicate == nil {
		return zero, &MissingTermError{Nested: true, Position: PositionPredicate}
	}
	if wt.Object == nil {
		return zero, &MissingTermError{Nested: true, Position: PositionObject}
	}
	s, err := d.resolveTerm(wt.Subject)
	if err != nil {
		return zero, err
	}
	p, err := d.resolveTerm(wt.Predicate)
	if err != nil {
		return zero, err
	}
	o, err := d.resolveTerm(wt.Object)
	if err != nil {
		return zero, err
	}
	return d.materializer.TermTriple(s, p, o, d)
}

// LastSubject, LastPredicate, LastObject, and LastGraph expose the
// decoder's current last-term registers to a Materializer's
// Triple/Quad methods. LastGraph's second return value is false when
// the stream is currently in the default graph.
func (d *Decoder[Term, Triple, Quad, State]) LastSubject() Term   { return d.lastSubject }
func (d *Decoder[Term, Triple, Quad, State]) LastPredicate() Term { return d.lastPredicate }
func (d *Decoder[Term, Triple, Quad, State]) LastObject() Term    { return d.lastObject }
func (d *Decoder[Term, Triple, Quad, State]) LastGraph() (Term, bool) {
	return d.lastGraph, d.hasGraph
}
