package app

import (
	"context"
	"errors"

	"filetidy/internal/domain"
)

// RenameExecutor applies a rename plan one item at a time. Collisions stay
// untouched: a file is never renamed over an existing one.
type RenameExecutor struct {
	FS         FileSystem
	OnProgress ProgressFunc
}

func (e *RenameExecutor) Execute(ctx context.Context, plan domain.RenamePlan) error {
	if e.FS == nil {
		return errors.New("rename executor requires FS")
	}

	// Keyed by source: two sources can share a target and only the
	// colliding one is withheld.
	blocked := map[string]bool{}
	for _, item := range plan.CollisionItems {
		blocked[item.SourcePath] = true
	}

	total := len(plan.Items)
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if blocked[item.SourcePath] {
			continue
		}
		if err := e.FS.Rename(item.SourcePath, item.TargetPath); err != nil {
			return err
		}
		if e.OnProgress != nil {
			e.OnProgress(i+1, total)
		}
	}
	return nil
}
