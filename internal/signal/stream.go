package signal

// Stream is a fixed-capacity rolling window of sampled values.
// New samples are pushed to the front; once the window is full the oldest
// value is evicted from the back, so the length never changes after fill.
type Stream struct {
	capacity int
	values   []int
}

// NewStream creates an empty stream with the given capacity.
func NewStream(capacity int) *Stream {
	return &Stream{
		capacity: capacity,
		values:   make([]int, 0, capacity),
	}
}

// Fill replaces the window contents with samples drawn from src until
// the stream is at capacity.
func (st *Stream) Fill(src *RandomSignal) {
	st.values = st.values[:0]
	for len(st.values) < st.capacity {
		st.values = append(st.values, src.Next())
	}
}

// Push inserts v at the front of the window, evicting the oldest value
// when the stream is already at capacity.
func (st *Stream) Push(v int) {
	if len(st.values) == st.capacity {
		st.values = st.values[:len(st.values)-1]
	}
	st.values = append([]int{v}, st.values...)
}

// Len returns the current number of values in the window.
func (st *Stream) Len() int {
	return len(st.values)
}

// Capacity returns the fixed window capacity.
func (st *Stream) Capacity() int {
	return st.capacity
}

// Values returns the window contents, newest first. The returned slice
// is the stream's backing storage; callers must not mutate it.
func (st *Stream) Values() []int {
	return st.values
}
