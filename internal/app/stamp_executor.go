package app

import (
	"context"
	"errors"

	"filetidy/internal/domain"
)

// StampExecutor rewrites EXIF dates for every planned item, one subprocess
// at a time.
type StampExecutor struct {
	Writer     ExifWriter
	OnProgress ProgressFunc
}

func (e *StampExecutor) Execute(ctx context.Context, plan domain.StampPlan) error {
	if e.Writer == nil {
		return errors.New("stamp executor requires Writer")
	}

	total := len(plan.Items)
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.Writer.StampAllDates(ctx, item.Path, item.ModTime); err != nil {
			return err
		}
		if e.OnProgress != nil {
			e.OnProgress(i+1, total)
		}
	}
	return nil
}
