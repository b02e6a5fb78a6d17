package signal

import "testing"

func TestRandomSignalRange(t *testing.T) {
	s := NewRandomSignal(12345, 0, 100)

	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v >= 100 {
			t.Fatalf("sample %d out of [0,100): %d", i, v)
		}
	}
}

func TestRandomSignalDeterminism(t *testing.T) {
	a := NewRandomSignal(42, 0, 100)
	b := NewRandomSignal(42, 0, 100)

	for i := 0; i < 1000; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("sample %d diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestRandomSignalTake(t *testing.T) {
	s := NewRandomSignal(7, 10, 20)

	got := s.Take(200)
	if len(got) != 200 {
		t.Fatalf("Take(200) returned %d samples", len(got))
	}
	for _, v := range got {
		if v < 10 || v >= 20 {
			t.Errorf("sample out of [10,20): %d", v)
		}
	}
}
