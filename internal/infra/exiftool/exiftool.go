// Package exiftool shells out to the external exiftool binary to rewrite
// EXIF date tags.
package exiftool

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"filetidy/internal/domain"
)

const DefaultBinary = "exiftool"

// Writer stamps the Alldates group (DateTimeOriginal, CreateDate,
// ModifyDate) of a file through an exiftool subprocess.
type Writer struct {
	Binary string
	// KeepBackup leaves exiftool's FILE_original copies behind instead of
	// passing -overwrite_original.
	KeepBackup bool
}

func (w Writer) StampAllDates(ctx context.Context, path string, ts time.Time) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("exiftool stamp: empty path")
	}

	cmd := exec.CommandContext(ctx, w.binary(), w.stampArgs(path, ts)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("exiftool stamp %s: %w: %s", filepath.Base(path), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Version runs `exiftool -ver` as a preflight so a missing binary fails
// before any file is touched.
func (w Writer) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, w.binary(), "-ver")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("exiftool version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (w Writer) binary() string {
	binary := strings.TrimSpace(w.Binary)
	if binary == "" {
		binary = DefaultBinary
	}
	return binary
}

func (w Writer) stampArgs(path string, ts time.Time) []string {
	args := make([]string, 0, 4)
	if !w.KeepBackup {
		args = append(args, "-overwrite_original")
	}
	args = append(args, "-Alldates="+domain.FormatStamp(ts), "--", path)
	return args
}
