// internal/state/mock.go
package state

import "sync"

// Mock is an in-memory Storage for tests. Setting WriteErr makes every
// write fail with that error; ReadErr does the same for reads.
type Mock struct {
	mu       sync.Mutex
	items    map[string]string
	WriteErr error
	ReadErr  error
	Writes   int
}

// NewMock creates an empty mock storage.
func NewMock() *Mock {
	return &Mock{items: make(map[string]string)}
}

func (m *Mock) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Mock) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.items[key] = value
	m.Writes++
	return nil
}

func (m *Mock) SetItems(items map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for k, v := range items {
		m.items[k] = v
	}
	m.Writes++
	return nil
}

func (m *Mock) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(m.items, key)
	return nil
}

// Raw returns the stored value for key, bypassing ReadErr.
func (m *Mock) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}
