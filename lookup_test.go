package jelly

import "testing"

func TestLookupTableRotatingWrite(t *testing.T) {
	tbl := NewLookupTable(4)
	if err := tbl.Set(0, "a"); err != nil {
		t.Fatalf("Set(0, a): %v", err)
	}
	if err := tbl.Set(0, "b"); err != nil {
		t.Fatalf("Set(0, b): %v", err)
	}
	if err := tbl.Set(1, "z"); err != nil {
		t.Fatalf("Set(1, z): %v", err)
	}
	// direct write to slot 1 resets next_write to 2, so the following
	// index-0 write lands on slot 2, overwriting "b".
	if err := tbl.Set(0, "c"); err != nil {
		t.Fatalf("Set(0, c): %v", err)
	}

	got, err := tbl.Get(1, LookupInvalid)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if got != "z" {
		t.Fatalf("slot 1 = %q, want z", got)
	}
	got, err = tbl.Get(2, LookupInvalid)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if got != "c" {
		t.Fatalf("slot 2 = %q, want c", got)
	}
}

func TestLookupTableSetOverflow(t *testing.T) {
	tbl := NewLookupTable(1)
	if err := tbl.Set(1, "x"); err != nil {
		t.Fatalf("Set(1, x): %v", err)
	}
	err := tbl.Set(2, "y")
	lerr, ok := err.(*LookupError)
	if !ok || lerr.Kind != LookupOverflow {
		t.Fatalf("expected LookupOverflow, got %v", err)
	}
}

func TestLookupTableStayAtZero(t *testing.T) {
	tbl := NewLookupTable(4)
	if err := tbl.Set(1, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := tbl.Get(0, LookupStay)
	if err != nil {
		t.Fatalf("Get(0, Stay): %v", err)
	}
	if got != "first" {
		t.Fatalf("Stay at last_read=0 resolved to %q, want slot 1's value", got)
	}
}

func TestLookupTableIncrementAdvancesByOne(t *testing.T) {
	tbl := NewLookupTable(4)
	tbl.Set(1, "a")
	tbl.Set(2, "b")
	tbl.Set(3, "c")

	if _, err := tbl.Get(1, LookupIncrement); err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if tbl.LastRead() != 1 {
		t.Fatalf("last_read = %d, want 1", tbl.LastRead())
	}
	got, err := tbl.Get(0, LookupIncrement)
	if err != nil {
		t.Fatalf("Get(0, Increment): %v", err)
	}
	if tbl.LastRead() != 2 {
		t.Fatalf("last_read after increment = %d, want 2", tbl.LastRead())
	}
	if got != "b" {
		t.Fatalf("increment resolved to %q, want b", got)
	}
}

func TestLookupTableInvalidModeRejectsIndexZero(t *testing.T) {
	tbl := NewLookupTable(4)
	tbl.Set(1, "x")
	_, err := tbl.Get(0, LookupInvalid)
	lerr, ok := err.(*LookupError)
	if !ok || lerr.Kind != LookupInvalidAction {
		t.Fatalf("expected LookupInvalidAction, got %v", err)
	}
}

func TestLookupTableEmptyTable(t *testing.T) {
	tbl := NewLookupTable(0)
	_, err := tbl.Get(1, LookupIncrement)
	lerr, ok := err.(*LookupError)
	if !ok || lerr.Kind != LookupEmptyTable {
		t.Fatalf("expected LookupEmptyTable, got %v", err)
	}
}

func TestLookupTableGetTolerantOnEmptyTable(t *testing.T) {
	tbl := NewLookupTable(0)
	got, err := tbl.GetTolerant(1, LookupStay)
	if err != nil {
		t.Fatalf("GetTolerant on empty table returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("GetTolerant on empty table = %q, want empty string", got)
	}
}

func TestLookupTableGetOutOfBounds(t *testing.T) {
	tbl := NewLookupTable(2)
	_, err := tbl.Get(5, LookupInvalid)
	lerr, ok := err.(*LookupError)
	if !ok || lerr.Kind != LookupOutOfBounds {
		t.Fatalf("expected LookupOutOfBounds, got %v", err)
	}
}

func TestLookupTableClone(t *testing.T) {
	orig := NewLookupTable(4)
	orig.Set(1, "a")
	orig.Get(1, LookupInvalid)

	clone := orig.Clone()
	clone.Set(2, "b")

	if clone.LastRead() != orig.LastRead() {
		t.Fatalf("clone last_read = %d, want %d", clone.LastRead(), orig.LastRead())
	}
	// slot 2 is in bounds but was only written on the clone, so the
	// original reads it back as the empty string.
	if got, err := orig.Get(2, LookupInvalid); err != nil || got != "" {
		t.Fatalf("mutating clone leaked into original: slot 2 = %q, %v", got, err)
	}
}
