package ai

import (
	"context"
	"sync"
)

// MockProvider is a deterministic Provider for tests. Each call consumes the
// next scripted reply; once the script is exhausted the last reply repeats.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	calls   []MockCall
}

type MockReply struct {
	Text string
	Err  error
}

type MockCall struct {
	Messages []Message
	Options  Options
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// NewMockText returns a provider that always answers with text.
func NewMockText(text string) *MockProvider {
	return NewMockProvider(MockReply{Text: text})
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Complete(_ context.Context, messages []Message, opts Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Messages: append([]Message(nil), messages...), Options: opts})
	if len(m.replies) == 0 {
		return "", ErrEmptyResponse
	}
	idx := len(m.calls) - 1
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	r := m.replies[idx]
	return r.Text, r.Err
}

func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

func (m *MockProvider) LastCall() (MockCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return MockCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}
