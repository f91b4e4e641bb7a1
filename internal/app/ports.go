package app

import (
	"context"
	"io/fs"
	"time"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	Rename(oldPath, newPath string) error
}

type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (time.Time, error)
}

type ExifWriter interface {
	StampAllDates(ctx context.Context, path string, ts time.Time) error
}

// ProgressFunc is called while scanning or executing to report progress.
type ProgressFunc func(current, total int)
