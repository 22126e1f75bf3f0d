package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories are implied by the files stored beneath them.
type MockFileSystem struct {
	// ReadErr and WriteErr, when set, fail every read or write.
	ReadErr  error
	WriteErr error

	mu          sync.RWMutex
	files       map[string][]byte
	modes       map[string]FileMode
	readErrors  map[string]error
	writeErrors map[string]error
	writes      []string
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string][]byte),
		modes:       make(map[string]FileMode),
		readErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
	}
}

// SetFile stores content at path.
func (m *MockFileSystem) SetFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.files[path] = content
	m.modes[path] = PermManifest
}

// GetFile returns the content stored at path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// SetReadError makes ReadFile fail for path.
func (m *MockFileSystem) SetReadError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrors[filepath.Clean(path)] = err
}

// SetWriteError makes WriteFile and Rename fail for path.
func (m *MockFileSystem) SetWriteError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErrors[filepath.Clean(path)] = err
}

// Writes returns the paths passed to WriteFile, in call order.
func (m *MockFileSystem) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.writes)
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if m.ReadErr != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: m.ReadErr}
	}
	if err, ok := m.readErrors[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.writes = append(m.writes, path)
	if m.WriteErr != nil {
		return &fs.PathError{Op: "open", Path: path, Err: m.WriteErr}
	}
	if err, ok := m.writeErrors[path]; ok {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	m.files[path] = slices.Clone(data)
	if _, ok := m.modes[path]; !ok {
		m.modes[path] = perm
	}
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), size: int64(len(data)), mode: m.modes[path]}, nil
	}
	if m.isDir(path) {
		return mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir | PermDir}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	dir := filepath.Clean(path)
	if !m.isDir(dir) {
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for p := range m.files {
		rel, ok := childOf(dir, p)
		if !ok {
			continue
		}
		name, rest, nested := strings.Cut(rel, string(filepath.Separator))
		if seen[name] {
			continue
		}
		seen[name] = true
		if nested && rest != "" {
			entries = append(entries, mockDirEntry{mockFileInfo{name: name, mode: fs.ModeDir | PermDir}})
		} else {
			entries = append(entries, mockDirEntry{mockFileInfo{name: name, size: int64(len(m.files[p])), mode: m.modes[p]}})
		}
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })
	return entries, nil
}

func (m *MockFileSystem) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	oldPath, newPath = filepath.Clean(oldPath), filepath.Clean(newPath)
	if err, ok := m.writeErrors[newPath]; ok {
		return &fs.PathError{Op: "rename", Path: newPath, Err: err}
	}
	data, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	m.files[newPath] = data
	if _, ok := m.modes[newPath]; !ok {
		m.modes[newPath] = m.modes[oldPath]
	}
	delete(m.files, oldPath)
	delete(m.modes, oldPath)
	return nil
}

func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	delete(m.modes, path)
	return nil
}

// isDir reports whether any stored file lives under dir. Callers hold the lock.
func (m *MockFileSystem) isDir(dir string) bool {
	for p := range m.files {
		if _, ok := childOf(dir, p); ok {
			return true
		}
	}
	return false
}

// childOf returns p relative to dir when p lies strictly beneath dir.
func childOf(dir, p string) (string, bool) {
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	return strings.TrimPrefix(p, prefix), true
}

type mockFileInfo struct {
	name string
	size int64
	mode FileMode
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	info mockFileInfo
}

func (e mockDirEntry) Name() string               { return e.info.name }
func (e mockDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e mockDirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }
