package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestStampPlannerMatchesExtensionsCaseInsensitively(t *testing.T) {
	dir := "/photos"
	now := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	mock := mockFS{
		entries: []mockEntry{
			{path: filepath.Join(dir, "photo.JPG"), modTime: now},
			{path: filepath.Join(dir, "other.jpeg"), modTime: now},
			{path: filepath.Join(dir, "notes.txt"), modTime: now},
			{path: filepath.Join(dir, "clip.mov"), modTime: now},
		},
	}

	planner := StampPlanner{FS: mock, Exif: mockExif{}}
	plan, err := planner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan.Items))
	}
}

func TestStampPlannerFormatsModificationTime(t *testing.T) {
	dir := "/photos"
	modTime := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	mock := mockFS{
		entries: []mockEntry{
			{path: filepath.Join(dir, "photo.JPG"), modTime: modTime},
		},
	}

	planner := StampPlanner{FS: mock, Exif: mockExif{}}
	plan, err := planner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Items[0].Stamp != "2023-05-01 10-00-00" {
		t.Fatalf("expected stamp 2023-05-01 10-00-00, got %q", plan.Items[0].Stamp)
	}
}

func TestStampPlannerSkipsUpToDateFiles(t *testing.T) {
	dir := "/photos"
	modTime := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	path := filepath.Join(dir, "photo.jpg")
	mock := mockFS{
		entries: []mockEntry{
			{path: path, modTime: modTime},
		},
	}

	planner := StampPlanner{
		FS:   mock,
		Exif: mockExif{timestamps: map[string]time.Time{path: modTime}},
	}
	plan, err := planner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(plan.Items))
	}
	if plan.UpToDateSkip != 1 {
		t.Fatalf("expected 1 up-to-date skip, got %d", plan.UpToDateSkip)
	}
}

func TestStampPlannerWarnsWhenExifMissing(t *testing.T) {
	dir := "/photos"
	modTime := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	mock := mockFS{
		entries: []mockEntry{
			{path: filepath.Join(dir, "photo.jpg"), modTime: modTime},
		},
	}

	planner := StampPlanner{FS: mock, Exif: mockExif{}}
	plan, err := planner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(plan.Warnings))
	}
	if len(plan.Items) != 1 {
		t.Fatalf("file without EXIF should still be stamped")
	}
}

func TestStampExecutorStampsEveryItem(t *testing.T) {
	dir := "/photos"
	modTime := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	mock := mockFS{
		entries: []mockEntry{
			{path: filepath.Join(dir, "a.jpg"), modTime: modTime},
			{path: filepath.Join(dir, "b.jpg"), modTime: modTime},
		},
	}

	planner := StampPlanner{FS: mock, Exif: mockExif{}}
	plan, err := planner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stamped []string
	executor := StampExecutor{Writer: mockWriter{stamped: &stamped}}
	if err := executor.Execute(context.Background(), plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stamped) != 2 {
		t.Fatalf("expected 2 stamped files, got %d", len(stamped))
	}
}
