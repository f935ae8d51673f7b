package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are normalized to forward slashes regardless of platform.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates a new empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

// AddFile adds a file to the in-memory filesystem, replacing any previous
// content at the same path.
func (m *MemoryFileSystem) AddFile(p string, content []byte) {
	m.files[normalize(p)] = content
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	p = normalize(p)
	if content, ok := m.files[p]; ok {
		return &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(content)),
			mode:    0o644,
			modTime: time.Now(),
		}, nil
	}
	// A directory exists if any file lives under it.
	for file := range m.files {
		if strings.HasPrefix(file, p+"/") {
			return &memoryFileInfo{
				name:  path.Base(p),
				mode:  0o755 | fs.ModeDir,
				isDir: true,
			}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (m *MemoryFileSystem) ReadDir(p string) ([]FileInfo, error) {
	p = normalize(p)
	seen := make(map[string]bool)
	var result []FileInfo
	for file, content := range m.files {
		if !strings.HasPrefix(file, p+"/") {
			continue
		}
		rest := strings.TrimPrefix(file, p+"/")
		name, _, isNested := strings.Cut(rest, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, &memoryFileInfo{
			name:  name,
			size:  int64(len(content)),
			mode:  0o644,
			isDir: isNested,
		})
	}
	if len(result) == 0 {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
