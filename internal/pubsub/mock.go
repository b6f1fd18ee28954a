package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Mock is a mock implementation of the PubSubClient interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu        sync.Mutex
	ProjectID string

	// Call records
	SentMessages []struct {
		Topic string
		Data  any
	}

	// Optional error injection
	SendMessageErr error
}

// NewMock creates a new mock instance.
func NewMock(projectID string) *Mock {
	return &Mock{ProjectID: projectID}
}

func (m *Mock) SendMessage(topic string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, struct {
		Topic string
		Data  any
	}{topic, data})
	return m.SendMessageErr
}

func (m *Mock) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
