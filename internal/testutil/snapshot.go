package testutil

import (
	"sync"
)

// MemorySnapshotStore is an in-memory snapshot store that counts writes and
// can be told to fail.
type MemorySnapshotStore struct {
	mu       sync.Mutex
	docs     map[string]string
	writes   int
	ReadErr  error
	WriteErr error
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{docs: make(map[string]string)}
}

func (m *MemorySnapshotStore) ReadFile(name string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	content, ok := m.docs[name]
	return content, ok, nil
}

func (m *MemorySnapshotStore) WriteFile(name, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.writes++
	m.docs[name] = content
	return nil
}

// Put seeds a document without counting it as a write.
func (m *MemorySnapshotStore) Put(name, content string) {
	m.mu.Lock()
	m.docs[name] = content
	m.mu.Unlock()
}

// Writes returns the number of successful writes.
func (m *MemorySnapshotStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
