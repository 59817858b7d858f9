package blobstore

import (
	"context"
	"estimator/pkg/serrors"
	"slices"
	"sync"
)

// Memory is an in-process Store used in tests and local development.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]map[string]Object
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{objects: map[string]map[string]Object{}}
}

func (m *Memory) Put(_ context.Context, bucket, key string, obj Object) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.objects[bucket] == nil {
		m.objects[bucket] = map[string]Object{}
	}
	obj.Data = slices.Clone(obj.Data)
	m.objects[bucket][key] = obj

	return nil
}

func (m *Memory) Get(_ context.Context, bucket, key string) (*Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[bucket][key]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "object %s/%s not found", bucket, key)
	}
	obj.Data = slices.Clone(obj.Data)

	return &obj, nil
}

func (m *Memory) Delete(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects[bucket], key)

	return nil
}

func (m *Memory) EnsureBucket(_ context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.objects[bucket] == nil {
		m.objects[bucket] = map[string]Object{}
	}

	return nil
}

// Keys returns the keys stored in bucket, sorted.
func (m *Memory) Keys(bucket string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects[bucket]))
	for k := range m.objects[bucket] {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
