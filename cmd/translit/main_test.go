package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appErrors "filetidy/internal/errors"
)

func TestRootCommandRejectsWrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"one", "two"}} {
		var out bytes.Buffer
		cmd := newRootCommand()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)

		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for args %v", args)
		}
		if !strings.Contains(out.String(), "Usage:") {
			t.Fatalf("expected usage for args %v, got %q", args, out.String())
		}
	}
}

func TestRootCommandReportsMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{missing})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	want := "Directory not found: " + missing
	if got := appErrors.UserMessage(err); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRootCommandRejectsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "фото.jpg")
	if err := os.WriteFile(file, []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{file})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for a regular file argument")
	}
	want := "Directory not found: " + file
	if got := appErrors.UserMessage(err); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("file should be untouched: %v", err)
	}
}
