package storage

import "sync"

// memoryKV is an in-process KV backed by a map. It is used in tests and
// anywhere durability is not required.
type memoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemory creates an empty in-memory KV.
func NewMemory() KV {
	return &memoryKV{values: make(map[string]string)}
}

func (kv *memoryKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	if kv.closed {
		return "", false, ErrClosed
	}
	v, ok := kv.values[key]
	return v, ok, nil
}

func (kv *memoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.closed {
		return ErrClosed
	}
	kv.values[key] = value
	return nil
}

func (kv *memoryKV) Remove(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.closed {
		return ErrClosed
	}
	delete(kv.values, key)
	return nil
}

func (kv *memoryKV) Close() error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.closed = true
	return nil
}
