package exiftool

import (
	"testing"
	"time"
)

func TestStampArgsFormat(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	writer := Writer{}

	args := writer.stampArgs("photo.JPG", ts)
	want := []string{"-overwrite_original", "-Alldates=2023-05-01 10-00-00", "--", "photo.JPG"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %q, got %q", i, want[i], args[i])
		}
	}
}

func TestStampArgsKeepBackup(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	writer := Writer{KeepBackup: true}

	args := writer.stampArgs("photo.jpg", ts)
	for _, arg := range args {
		if arg == "-overwrite_original" {
			t.Fatalf("keep-backup run should not pass -overwrite_original")
		}
	}
}

func TestBinaryDefaults(t *testing.T) {
	if got := (Writer{}).binary(); got != "exiftool" {
		t.Fatalf("expected default binary exiftool, got %q", got)
	}
	if got := (Writer{Binary: "/opt/exiftool"}).binary(); got != "/opt/exiftool" {
		t.Fatalf("expected override to win, got %q", got)
	}
}
