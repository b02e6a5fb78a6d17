package signal

import "testing"

func TestStreamFillReachesCapacity(t *testing.T) {
	src := NewRandomSignal(1, 0, 100)
	st := NewStream(200)

	st.Fill(src)
	if st.Len() != 200 {
		t.Fatalf("Len() after Fill = %d, expected 200", st.Len())
	}
}

func TestStreamPushFIFO(t *testing.T) {
	st := NewStream(3)

	st.Push(1)
	st.Push(2)
	st.Push(3)

	// Newest first
	vals := st.Values()
	if vals[0] != 3 || vals[1] != 2 || vals[2] != 1 {
		t.Fatalf("Values() = %v, expected [3 2 1]", vals)
	}

	// Pushing past capacity evicts the oldest (back) value
	st.Push(4)
	vals = st.Values()
	if st.Len() != 3 {
		t.Fatalf("Len() after overflow push = %d, expected 3", st.Len())
	}
	if vals[0] != 4 || vals[1] != 3 || vals[2] != 2 {
		t.Fatalf("Values() = %v, expected [4 3 2]", vals)
	}
}

func TestStreamLengthInvariant(t *testing.T) {
	src := NewRandomSignal(99, 0, 100)
	st := NewStream(200)
	st.Fill(src)

	for i := 0; i < 1000; i++ {
		st.Push(src.Next())
		if st.Len() != 200 {
			t.Fatalf("length changed to %d after push %d", st.Len(), i)
		}
	}
}
