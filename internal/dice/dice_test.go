package dice

import "testing"

func TestRollBounds(t *testing.T) {
	roller := New(1)
	for i := 0; i < 1000; i++ {
		value, err := roller.Roll(6)
		if err != nil {
			t.Fatalf("roll: %v", err)
		}
		if value < 1 || value > 6 {
			t.Fatalf("roll out of range: %d", value)
		}
	}
}

func TestRollInvalidSides(t *testing.T) {
	if _, err := New(1).Roll(0); err != ErrInvalidSides {
		t.Fatalf("expected ErrInvalidSides, got %v", err)
	}
}

func TestRollDeterministicPerSeed(t *testing.T) {
	first := New(42)
	second := New(42)
	for i := 0; i < 100; i++ {
		if first.D6() != second.D6() {
			t.Fatal("expected identical sequences for identical seeds")
		}
	}
}

func TestBeat(t *testing.T) {
	roller := New(7)
	for i := 0; i < 100; i++ {
		a, b, total := roller.Beat()
		if a < 1 || a > 6 || b < 1 || b > 6 {
			t.Fatalf("beat dice out of range: %d %d", a, b)
		}
		if total != a+b {
			t.Fatalf("beat total mismatch: %d+%d != %d", a, b, total)
		}
	}
}

func TestPick(t *testing.T) {
	roller := New(3)
	table := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		entry, err := roller.Pick(table)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		seen[entry] = true
	}
	if len(seen) != len(table) {
		t.Fatalf("expected every entry picked eventually, saw %v", seen)
	}

	if _, err := roller.Pick(nil); err != ErrEmptyTable {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}
