package app

import (
	"context"
	"errors"
	"path/filepath"
	"sort"

	"filetidy/internal/domain"
	"filetidy/internal/logging"
	"filetidy/internal/translit"
)

// RenamePlanner builds an in-place rename plan for a single directory by
// transliterating every regular file name. Entries of subdirectories are
// left alone.
type RenamePlanner struct {
	FS      FileSystem
	Reverse bool
	Logger  logging.Logger
}

func (p *RenamePlanner) Plan(ctx context.Context, dir string) (domain.RenamePlan, error) {
	if p.FS == nil {
		return domain.RenamePlan{}, errors.New("rename planner requires FS")
	}

	stop := p.Logger.Measure("Planning renames")
	defer stop()

	select {
	case <-ctx.Done():
		return domain.RenamePlan{}, ctx.Err()
	default:
	}

	entries, err := p.FS.ReadDir(dir)
	if err != nil {
		return domain.RenamePlan{}, err
	}

	plan := domain.RenamePlan{Dir: dir}
	plannedTargets := map[string]bool{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		oldName := entry.Name()
		newName := p.transliterate(oldName)

		item := domain.RenameItem{
			SourcePath: filepath.Join(dir, oldName),
			TargetPath: filepath.Join(dir, newName),
			OldName:    oldName,
			NewName:    newName,
			Unchanged:  newName == oldName,
		}
		plan.Items = append(plan.Items, item)

		if item.Unchanged {
			plan.UnchangedCount++
			continue
		}

		exists, err := p.FS.Exists(item.TargetPath)
		if err != nil {
			return domain.RenamePlan{}, err
		}
		// Two sources mapping to the same target collide just like an
		// on-disk file does; only the first one may claim the target.
		if exists || plannedTargets[item.TargetPath] {
			plan.CollisionItems = append(plan.CollisionItems, item)
			continue
		}
		plannedTargets[item.TargetPath] = true
	}

	sort.Slice(plan.Items, func(i, j int) bool {
		return plan.Items[i].OldName < plan.Items[j].OldName
	})

	p.Logger.Verbosef("Planned %d renames in %s (%d unchanged, %d collisions)",
		len(plan.Items), dir, plan.UnchangedCount, len(plan.CollisionItems))

	return plan, nil
}

func (p *RenamePlanner) transliterate(name string) string {
	if p.Reverse {
		return translit.Cyrillic(name)
	}
	return translit.Latin(name)
}
