package jelly

// LookupMode governs how a get resolves the special index 0: Increment
// advances past the last slot read (used for IRI names), Stay re-reads
// at or just past it (used for IRI prefixes), and Invalid rejects index
// 0 outright (used for datatypes, where 0 never names a valid entry).
type LookupMode uint8

const (
	LookupIncrement LookupMode = iota
	LookupStay
	LookupInvalid
)

func (m LookupMode) resolve(lastRead uint32) (uint32, error) {
	switch m {
	case LookupIncrement:
		return lastRead + 1, nil
	case LookupStay:
		if lastRead == 0 {
			return 1, nil
		}
		return lastRead, nil
	default:
		return 0, &LookupError{Kind: LookupInvalidAction}
	}
}

// LookupTable is a bounded, 1-indexed dictionary with rotating-cursor
// semantics: Slot 0 is never addressed for storage; capacity C
// addresses slots 1..C.
//
// The cursors are wire-critical, not a caching nicety: next_write and
// last_read must be preserved exactly across Get/Set calls and deep
// copied on Clone, or decoding silently diverges from the encoder that
// produced the stream.
type LookupTable struct {
	slots     []string
	nextWrite uint32
	lastRead  uint32
}

// NewLookupTable allocates a table with the given capacity. Capacity 0
// is legal: the table is configured but every Get on it fails with
// LookupEmptyTable.
func NewLookupTable(capacity uint32) *LookupTable {
	return &LookupTable{
		slots:     make([]string, capacity+1),
		nextWrite: 1,
		lastRead:  0,
	}
}

// Capacity returns the table's configured slot count (0..C, excluding
// the unused slot 0).
func (t *LookupTable) Capacity() uint32 {
	if len(t.slots) == 0 {
		return 0
	}
	return uint32(len(t.slots)) - 1
}

// Set writes value at external index id, applying the rotating-write
// discipline: id == 0 writes the next free slot and advances the
// cursor; id > 0 writes that slot directly and resets the cursor to
// id+1. Returns LookupOverflow if the resolved slot exceeds capacity.
func (t *LookupTable) Set(id uint32, value string) error {
	slot := id
	if id == 0 {
		slot = t.nextWrite
	}
	t.nextWrite = slot + 1
	if slot == 0 || slot > t.Capacity() {
		return &LookupError{Kind: LookupOverflow, Index: slot, Capacity: t.Capacity()}
	}
	t.slots[slot] = value
	return nil
}

// Get resolves external index id under mode and returns the stored
// value. index 0 is resolved against lastRead per mode; after any Get,
// lastRead is updated to the resolved slot, whether or not a value was
// ever written there.
func (t *LookupTable) Get(id uint32, mode LookupMode) (string, error) {
	if t.Capacity() == 0 {
		return "", &LookupError{Kind: LookupEmptyTable}
	}
	slot := id
	if id == 0 {
		resolved, err := mode.resolve(t.lastRead)
		if err != nil {
			return "", err
		}
		slot = resolved
	}
	t.lastRead = slot
	if slot == 0 || slot > t.Capacity() {
		return "", &LookupError{Kind: LookupOutOfBounds, Index: slot, Capacity: t.Capacity()}
	}
	return t.slots[slot], nil
}

// GetTolerant behaves like Get but returns "" instead of an error when
// the table is empty or the resolved slot is out of bounds. (Both Get
// and GetTolerant return "" without error for an in-bounds slot that
// has never been written to.)
// IRI prefix lookups use this: an absent prefix just means the IRI has
// no prefix, not a malformed stream.
func (t *LookupTable) GetTolerant(id uint32, mode LookupMode) (string, error) {
	if t.Capacity() == 0 {
		return "", nil
	}
	slot := id
	if id == 0 {
		resolved, err := mode.resolve(t.lastRead)
		if err != nil {
			return "", err
		}
		slot = resolved
	}
	t.lastRead = slot
	if slot == 0 || slot > t.Capacity() {
		return "", nil
	}
	return t.slots[slot], nil
}

// Clone returns a deep copy, including both cursors: the slot array is
// copied rather than shared so mutating the clone never affects the
// original, and vice versa.
func (t *LookupTable) Clone() *LookupTable {
	slots := make([]string, len(t.slots))
	copy(slots, t.slots)
	return &LookupTable{
		slots:     slots,
		nextWrite: t.nextWrite,
		lastRead:  t.lastRead,
	}
}

// LastRead returns the slot index most recently resolved by Get.
func (t *LookupTable) LastRead() uint32 {
	return t.lastRead
}
