package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"filetidy/internal/domain"
	"filetidy/internal/logging"
)

// StampPlanner scans a directory for image files and plans an EXIF date
// rewrite from each file's modification time. Files whose embedded
// DateTimeOriginal already equals the modification time are skipped.
//
// Scanning is sequential; each file costs one stat and one EXIF read.
type StampPlanner struct {
	FS         FileSystem
	Exif       ExifReader
	Extensions []string
	Logger     logging.Logger
	OnProgress ProgressFunc
}

func (p *StampPlanner) Plan(ctx context.Context, dir string) (domain.StampPlan, error) {
	if p.FS == nil || p.Exif == nil {
		return domain.StampPlan{}, errors.New("stamp planner requires FS and Exif")
	}

	stop := p.Logger.Measure("Planning EXIF stamps")
	defer stop()

	extensions := p.Extensions
	if len(extensions) == 0 {
		extensions = domain.JpegExtensions
	}

	entries, err := p.FS.ReadDir(dir)
	if err != nil {
		return domain.StampPlan{}, err
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if domain.MatchesExtension(filepath.Ext(entry.Name()), extensions) {
			candidates = append(candidates, entry.Name())
		}
	}
	sort.Strings(candidates)
	p.Logger.Verbosef("Found %d image file(s) in %s", len(candidates), dir)

	plan := domain.StampPlan{Dir: dir}
	total := len(candidates)
	for i, name := range candidates {
		select {
		case <-ctx.Done():
			return domain.StampPlan{}, ctx.Err()
		default:
		}

		path := filepath.Join(dir, name)
		info, err := p.FS.Stat(path)
		if err != nil {
			return domain.StampPlan{}, err
		}
		modTime := info.ModTime()

		taken, exifErr := p.Exif.DateTimeOriginal(ctx, path)
		switch {
		case exifErr == nil && taken.Truncate(time.Second).Equal(modTime.Truncate(time.Second)):
			plan.UpToDateSkip++
			p.Logger.Verbosef("%s already stamped with %s", name, domain.FormatStamp(modTime))
		case exifErr != nil:
			if errors.Is(exifErr, context.Canceled) || errors.Is(exifErr, context.DeadlineExceeded) {
				return domain.StampPlan{}, exifErr
			}
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("no EXIF date in %s, stamping anyway", name))
			fallthrough
		default:
			plan.Items = append(plan.Items, domain.NewStampItem(path, name, modTime))
		}

		if p.OnProgress != nil {
			p.OnProgress(i+1, total)
		}
	}

	p.Logger.Verbosef("Planned %d stamp(s), %d up to date", len(plan.Items), plan.UpToDateSkip)
	return plan, nil
}
