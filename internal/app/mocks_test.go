package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"
)

type mockFS struct {
	entries   []mockEntry
	exists    map[string]bool
	renames   *[]renameCall
	renameErr error
}

type mockEntry struct {
	path    string
	isDir   bool
	modTime time.Time
}

type renameCall struct {
	from string
	to   string
}

func (m mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	var result []fs.DirEntry
	for _, entry := range m.entries {
		if filepath.Dir(entry.path) != path {
			continue
		}
		result = append(result, mockDirEntry{name: filepath.Base(entry.path), isDir: entry.isDir})
	}
	return result, nil
}

func (m mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), modTime: entry.modTime}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m mockFS) Exists(path string) (bool, error) {
	return m.exists[path], nil
}

func (m mockFS) Rename(oldPath, newPath string) error {
	if m.renameErr != nil {
		return m.renameErr
	}
	if m.renames != nil {
		*m.renames = append(*m.renames, renameCall{from: oldPath, to: newPath})
	}
	return nil
}

type mockExif struct {
	timestamps map[string]time.Time
	err        error
}

func (m mockExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if m.err != nil {
		return time.Time{}, m.err
	}
	if ts, ok := m.timestamps[path]; ok {
		return ts, nil
	}
	return time.Time{}, errors.New("missing exif")
}

type mockWriter struct {
	stamped *[]string
	err     error
}

func (m mockWriter) StampAllDates(ctx context.Context, path string, ts time.Time) error {
	if m.err != nil {
		return m.err
	}
	if m.stamped != nil {
		*m.stamped = append(*m.stamped, path)
	}
	return nil
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name    string
	modTime time.Time
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }
