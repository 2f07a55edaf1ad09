package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"dashboard-api/internal/model"
)

// FileStore 把整份資料存成單一 JSON 檔。
// 寫入先寫暫存檔再 rename，讀取不需要鎖；所有寫入經過 mu 序列化。
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore 開啟資料檔，不存在時建立一份空文件
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("NewFileStore: %w", err)
		}
		if err := s.write(&model.Dataset{}); err != nil {
			return nil, fmt.Errorf("NewFileStore: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("NewFileStore: %w", err)
	}
	return s, nil
}

func (s *FileStore) ReadAll(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

func (s *FileStore) WriteAll(ctx context.Context, d *model.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(d)
}

func (s *FileStore) Update(ctx context.Context, fn func(d *model.Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return s.write(d)
}

// Ping 確認資料檔仍可讀取
func (s *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("FileStore.Ping: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (*model.Dataset, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("FileStore.read: %w", err)
	}
	d := &model.Dataset{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("FileStore.read: %w", err)
	}
	return d, nil
}

func (s *FileStore) write(d *model.Dataset) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("FileStore.write: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return fmt.Errorf("FileStore.write: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("FileStore.write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("FileStore.write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("FileStore.write: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("FileStore.write: %w", err)
	}
	return nil
}
