package localstorage

import (
	"context"
	"maps"
	"sync"
)

type MemoryRepository struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = append([]byte{}, value...)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.items)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.items))
	for k, v := range r.items {
		out[k] = append([]byte{}, v...)
	}
	return out, nil
}

// WithinTx stages fn's writes on a copy and publishes them only if fn succeeds.
func (r *MemoryRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := &MemoryRepository{items: maps.Clone(r.items)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	r.items = staged.items
	return nil
}
