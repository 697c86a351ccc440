package jelly

import "fmt"

// ErrUnconfigured is returned when a row other than Options arrives
// before the decoder has been configured.
var ErrUnconfigured = &ConfigError{Reason: "decoder used before configuration"}

// ErrStateNotCloneable is returned by Decoder.Clone when the host State
// type does not implement Cloner.
var ErrStateNotCloneable = fmt.Errorf("jelly: decoder state does not support Clone")

// ConfigError reports a problem with stream configuration: an
// unspecified physical type, a table size exceeding its protocol cap,
// or use of the decoder before it has been configured.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "jelly: config: " + e.Reason
}

// PhysicalStreamErrorKind discriminates the two ways a row can be
// invalid for the decoder's declared physical stream type.
type PhysicalStreamErrorKind uint8

const (
	// IncorrectType means a row kind is not permitted in the decoder's
	// current physical stream type.
	IncorrectType PhysicalStreamErrorKind = iota
	// NotYetSet means a Triple row arrived in graphs mode before any
	// GraphStart row opened a graph.
	NotYetSet
)

// PhysicalStreamError reports a row that is not valid in the decoder's
// current state.
type PhysicalStreamError struct {
	Kind     PhysicalStreamErrorKind
	Detected PhysicalStreamType
	Incoming RowKind // set when Kind == IncorrectType
	Expected RowKind // set when Kind == NotYetSet
}

func (e *PhysicalStreamError) Error() string {
	switch e.Kind {
	case NotYetSet:
		return fmt.Sprintf("jelly: physical stream %s: expected %s before this row", e.Detected, e.Expected)
	default:
		return fmt.Sprintf("jelly: physical stream %s: row kind %s is not permitted", e.Detected, e.Incoming)
	}
}

// LookupErrorKind discriminates the ways a lookup-table access can
// fail.
type LookupErrorKind uint8

const (
	LookupEmptyTable LookupErrorKind = iota
	LookupOutOfBounds
	LookupOverflow
	LookupInvalidAction
)

// LookupError reports a failure resolving or populating a Lookup
// Table slot.
type LookupError struct {
	Kind     LookupErrorKind
	Index    uint32
	Capacity uint32
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case LookupEmptyTable:
		return "jelly: lookup: table has zero capacity"
	case LookupOutOfBounds:
		return fmt.Sprintf("jelly: lookup: index %d out of bounds (capacity %d)", e.Index, e.Capacity)
	case LookupOverflow:
		return fmt.Sprintf("jelly: lookup: index %d exceeds table capacity %d", e.Index, e.Capacity)
	case LookupInvalidAction:
		return "jelly: lookup: invalid lookup action for index 0"
	default:
		return "jelly: lookup: error"
	}
}

// TermPosition names subject/predicate/object/graph for error reporting.
type TermPosition uint8

const (
	PositionSubject TermPosition = iota
	PositionPredicate
	PositionObject
	PositionGraph
)

func (p TermPosition) String() string {
	switch p {
	case PositionSubject:
		return "subject"
	case PositionPredicate:
		return "predicate"
	case PositionObject:
		return "object"
	case PositionGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// MissingTermError reports a required term position that was never set:
// either a top-level Triple/Quad position with no current value to
// inherit, or any position of a nested (RDF-star) triple term, which
// never inherits from the decoder's last-term registers.
type MissingTermError struct {
	Nested   bool
	Position TermPosition
}

func (e *MissingTermError) Error() string {
	if e.Nested {
		return fmt.Sprintf("jelly: missing %s in nested triple term", e.Position)
	}
	return fmt.Sprintf("jelly: missing %s (not set on this row and nothing to inherit)", e.Position)
}

// NotImplementedError reports a feature the host materializer elects
// not to support, e.g. RDF-star term triples.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return "jelly: not implemented: " + e.Feature
}
