package status

import (
	"strings"
	"testing"
)

func TestMetricMap_GetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("monster.count")
	b := r.Ints.Get("monster.count")
	if a != b {
		t.Fatal("expected same pointer for repeated Get")
	}

	a.Store(3)
	if b.Load() != 3 {
		t.Errorf("shared pointer value = %d, want 3", b.Load())
	}
	if !r.Ints.Has("monster.count") || r.Ints.Has("missing") {
		t.Error("Has returned unexpected result")
	}
}

func TestAtomicFloat_Add(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("Add = %v, want 1.75", got)
	}
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestRegistry_LinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("turret.shots").Store(2)
	r.Ints.Get("bomb.detonations").Store(1)
	r.Floats.Get("engine.time").Set(1.5)
	r.Bools.Get("engine.running").Store(true)
	r.Strings.Get("engine.state").Store("running")

	got := r.Lines()
	want := []string{
		"engine.running=true",
		"bomb.detonations=1",
		"turret.shots=2",
		"engine.time=1.50",
		"engine.state=running",
	}
	if len(got) != len(want) {
		t.Fatalf("Lines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
