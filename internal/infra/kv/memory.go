package kv

import "sync"

// Memory is a map-backed Store for tests and ephemeral runs. The mutex keeps
// it safe if a test exercises the store from multiple goroutines.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	failOn map[string]error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failOn[key]; err != nil {
		return "", false, err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[key]; err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FailWith makes subsequent operations on key return err, simulating a full
// or broken storage device.
func (m *Memory) FailWith(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == nil {
		m.failOn = make(map[string]error)
	}
	m.failOn[key] = err
}
