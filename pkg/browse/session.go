// Package browse coalesces rapid query edits and delivers only the newest result.
package browse

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before an edited query is issued.
const DefaultDebounce = 500 * time.Millisecond

// FetchFunc runs one query.
type FetchFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

// Result is a settled query. Generation identifies the issue order.
type Result[Q, R any] struct {
	Query      Q
	Value      R
	Err        error
	Generation uint64
}

// Option configures a Session.
type Option func(*options)

type options struct {
	debounce time.Duration
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.debounce = d
		}
	}
}

// Session owns the query state of one browsing view. Edits are debounced, each issued query
// gets a higher generation, and a result is delivered only while its generation is the newest.
// Older in-flight queries are cancelled when a newer one is issued.
type Session[Q, R any] struct {
	fetch    FetchFunc[Q, R]
	debounce time.Duration

	ctx    context.Context
	stop   context.CancelFunc
	wg     sync.WaitGroup
	out    chan Result[Q, R]
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

// New starts a session bound to ctx.
func New[Q, R any](ctx context.Context, fetch FetchFunc[Q, R], opts ...Option) *Session[Q, R] {
	o := options{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}

	sctx, stop := context.WithCancel(ctx)
	return &Session[Q, R]{
		fetch:    fetch,
		debounce: o.debounce,
		ctx:      sctx,
		stop:     stop,
		out:      make(chan Result[Q, R], 1),
	}
}

// Results yields the newest settled result. It is closed by Close.
func (s *Session[Q, R]) Results() <-chan Result[Q, R] {
	return s.out
}

// Update schedules query after the debounce period, replacing any edit still waiting.
func (s *Session[Q, R]) Update(query Q) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.Submit(query) })
}

// Submit issues query immediately and returns its generation.
func (s *Session[Q, R]) Submit(query Q) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.gen
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		value, err := s.fetch(ctx, query)
		s.deliver(Result[Q, R]{Query: query, Value: value, Err: err, Generation: gen})
	}()

	return gen
}

// Generation returns the generation of the most recently issued query.
func (s *Session[Q, R]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Session[Q, R]) deliver(res Result[Q, R]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || res.Generation != s.gen {
		return
	}

	select {
	case s.out <- res:
	default:
		// the reader has not consumed the previous result yet
		select {
		case <-s.out:
		default:
		}
		s.out <- res
	}
}

// Close cancels pending work, waits for in-flight queries and closes Results.
func (s *Session[Q, R]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.stop()
	s.wg.Wait()
	close(s.out)
}
