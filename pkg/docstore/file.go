package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each document in {dir}/{key}.json.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	return s.read(key)
}

func (s *FileStore) Put(ctx context.Context, key string, body []byte) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	return s.write(key, body)
}

func (s *FileStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()

	current, err := s.read(key)
	exists := err == nil
	if err != nil && err != ErrNotFound {
		return err
	}

	next, err := fn(current, exists)
	if err != nil {
		return err
	}
	return s.write(key, next)
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *FileStore) read(key string) ([]byte, error) {
	body, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return body, nil
}

// write replaces the file via rename so readers never see a partial document.
func (s *FileStore) write(key string, body []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
