package llm

import (
	"context"
	"sync"
	"time"
)

// MockResponse is one scripted reply of a MockProvider.
type MockResponse struct {
	Text      string
	Usage     Usage
	Truncated bool
	Err       error

	// Delay holds the reply back. A context that ends first wins.
	Delay time.Duration

	// Panic, when set, is raised instead of replying.
	Panic any
}

// MockProvider replays scripted responses in order and remembers every
// request. Once the script runs out it reports the provider unavailable.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) next(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return MockResponse{}, false
	}
	r := m.script[0]
	m.script = m.script[1:]
	return r, true
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	r, ok := m.next(req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if r.Delay > 0 {
		t := time.NewTimer(r.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, &ErrProviderUnavailable{Err: ctx.Err()}
		}
	}
	switch {
	case r.Panic != nil:
		panic(r.Panic)
	case r.Err != nil:
		return nil, r.Err
	}
	return &Response{Text: r.Text, Usage: r.Usage, Model: "mock", Truncated: r.Truncated}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	m.script = append(m.script, r)
	m.mu.Unlock()
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, if any.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.Calls); n > 0 {
		return m.Calls[n-1], true
	}
	return Request{}, false
}
