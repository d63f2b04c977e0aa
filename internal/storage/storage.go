// Package storage - персистентный key-value адаптер клиента.
package storage

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("storage is closed")

// KV - минимальный интерфейс durable-хранилища ключ-значение.
// Значения - произвольные строки; кодирование в JSON лежит на вызывающем.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// MemoryKV - временное in-memory хранилище. Используется как деградация,
// когда SQLite недоступен, и в тестах.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]string),
	}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.values, key)
	return nil
}

func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
