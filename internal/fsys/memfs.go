package fsys

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemFS is an in-memory FS for tests. Paths are stored slash-normalized.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func memPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[memPath(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memPath(path)
	m.markDirs(filepath.ToSlash(filepath.Dir(p)))
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[p] = stored
	return nil
}

func (m *MemFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memPath(path)
	if _, ok := m.files[p]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(m.files, p)
	return nil
}

func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memPath(path)
	if _, ok := m.files[p]; ok {
		return true
	}
	return m.dirs[p]
}

func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirs(memPath(path))
	return nil
}

func (m *MemFS) RemoveDirIfEmpty(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memPath(path)
	if !m.dirs[p] {
		return nil
	}
	prefix := p + "/"
	for f := range m.files {
		if strings.HasPrefix(f, prefix) {
			return nil
		}
	}
	for d := range m.dirs {
		if strings.HasPrefix(d, prefix) {
			return nil
		}
	}
	delete(m.dirs, p)
	return nil
}

func (m *MemFS) markDirs(dir string) {
	for dir != "." && dir != "/" && dir != "" {
		m.dirs[dir] = true
		dir = filepath.ToSlash(filepath.Dir(dir))
	}
}

// Paths returns all file paths, sorted. Useful for test assertions.
func (m *MemFS) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
