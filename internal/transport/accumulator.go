// Package transport contains the pieces that sit between the raw HTTP
// listener and the request handlers. Its central type is the BodyAccumulator,
// a per-request state machine that assembles a request body delivered in
// bounded chunks before the body may be parsed.
package transport

import (
	"bytes"
	"errors"
	"fmt"
)

// Accumulator errors.
var (
	// ErrBodyTooLarge is returned by Feed when the accumulated body would
	// exceed the configured limit.
	ErrBodyTooLarge = errors.New("request body exceeds limit")

	// ErrBodyConsumed is returned when an accumulator is used after its
	// buffer has been taken. The buffer is handed over exactly once.
	ErrBodyConsumed = errors.New("request body already consumed")

	// ErrBodyIncomplete is returned by Take before the terminating
	// zero-length chunk has been fed.
	ErrBodyIncomplete = errors.New("request body not yet complete")
)

// AccumulatorState identifies where a BodyAccumulator is in its lifecycle.
type AccumulatorState int

const (
	// StateAwaitingFirstChunk means no delivery callback has run yet; the
	// buffer is not allocated.
	StateAwaitingFirstChunk AccumulatorState = iota

	// StateAccumulating means the buffer is allocated and zero or more
	// chunks have been appended.
	StateAccumulating

	// StateComplete means the transport signaled end-of-body; the buffer
	// is ready to be taken.
	StateComplete

	// StateConsumed means the buffer was handed over and released. The
	// accumulator must not be touched again.
	StateConsumed
)

// String returns the state name for logging.
func (s AccumulatorState) String() string {
	switch s {
	case StateAwaitingFirstChunk:
		return "awaiting_first_chunk"
	case StateAccumulating:
		return "accumulating"
	case StateComplete:
		return "complete"
	case StateConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// BodyAccumulator assembles one request body from repeated delivery
// callbacks. Each in-flight request owns its own accumulator; instances are
// never shared between requests and are not safe for concurrent use.
//
// The contract mirrors an event-driven listener's upload callback: the first
// Feed allocates the buffer without inspecting data, each non-empty chunk is
// appended, and an empty chunk marks the body complete. After Take returns
// the assembled bytes the accumulator is spent, and any further call is an
// error rather than a silent use-after-release.
type BodyAccumulator struct {
	state AccumulatorState
	buf   *bytes.Buffer
	limit int64
}

// NewBodyAccumulator creates an accumulator in StateAwaitingFirstChunk.
// A limit of zero means unlimited.
func NewBodyAccumulator(limit int64) *BodyAccumulator {
	return &BodyAccumulator{state: StateAwaitingFirstChunk, limit: limit}
}

// State reports the current lifecycle state.
func (a *BodyAccumulator) State() AccumulatorState {
	return a.state
}

// Feed delivers one callback invocation. The very first invocation only
// allocates the buffer; its data argument is ignored because the transport
// carries none yet. On later invocations an empty (or nil) chunk signals
// end-of-body and moves the accumulator to StateComplete, while a non-empty
// chunk is appended. Feeding after completion or consumption is a contract
// violation.
func (a *BodyAccumulator) Feed(chunk []byte) error {
	switch a.state {
	case StateAwaitingFirstChunk:
		a.buf = &bytes.Buffer{}
		a.state = StateAccumulating
		return nil
	case StateAccumulating:
		// Buffer already allocated.
	case StateComplete:
		return fmt.Errorf("feed after completion: %w", ErrBodyConsumed)
	case StateConsumed:
		return ErrBodyConsumed
	}

	if len(chunk) == 0 {
		a.state = StateComplete
		return nil
	}

	if a.limit > 0 && int64(a.buf.Len())+int64(len(chunk)) > a.limit {
		return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, a.limit)
	}

	a.buf.Write(chunk)
	return nil
}

// Take hands over the assembled body and releases the buffer. It may be
// called exactly once, and only after the terminating chunk was fed.
func (a *BodyAccumulator) Take() ([]byte, error) {
	switch a.state {
	case StateConsumed:
		return nil, ErrBodyConsumed
	case StateComplete:
		body := a.buf.Bytes()
		a.buf = nil
		a.state = StateConsumed
		return body, nil
	default:
		return nil, ErrBodyIncomplete
	}
}
