package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"dashboard-api/internal/model"
)

// MemoryStore 把文件以 JSON 形式保存在記憶體，每次讀取都回傳獨立的副本。
// 用於測試與 seed 的 dry run。
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore(d *model.Dataset) (*MemoryStore, error) {
	if d == nil {
		d = &model.Dataset{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("NewMemoryStore: %w", err)
	}
	return &MemoryStore{data: b}, nil
}

func (m *MemoryStore) ReadAll(ctx context.Context) (*model.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decode()
}

func (m *MemoryStore) WriteAll(ctx context.Context, d *model.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.encode(d)
}

func (m *MemoryStore) Update(ctx context.Context, fn func(d *model.Dataset) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.decode()
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return m.encode(d)
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) decode() (*model.Dataset, error) {
	d := &model.Dataset{}
	if err := json.Unmarshal(m.data, d); err != nil {
		return nil, fmt.Errorf("MemoryStore decode: %w", err)
	}
	return d, nil
}

func (m *MemoryStore) encode(d *model.Dataset) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("MemoryStore encode: %w", err)
	}
	m.data = b
	return nil
}
