package console

import "sync"

// Call is one recorded console call.
type Call struct {
	Method Method
	Args   []any
}

// Recorder is a Console remembering every call it receives.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Call implements Console.
func (r *Recorder) Call(m Method, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: m, Args: append([]any(nil), args...)})
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
