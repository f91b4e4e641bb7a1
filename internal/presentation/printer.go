package presentation

import (
	"fmt"
	"io"

	"filetidy/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintRenameDryRun(plan domain.RenamePlan) {
	fmt.Fprintln(p.Writer, "Renaming:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatRenameLines(plan) {
		fmt.Fprintln(p.Writer, line)
	}

	p.printCollisions(plan)

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Would rename %d of %d file(s) (%d unchanged, %d collision(s)).\n",
		plan.RenamedCount(), len(plan.Items), plan.UnchangedCount, len(plan.CollisionItems))

	p.printWarnings(plan.Warnings)
}

func (p Printer) PrintRenameExecution(plan domain.RenamePlan) {
	fmt.Fprintln(p.Writer, "Renaming:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatRenameLines(plan) {
		fmt.Fprintln(p.Writer, line)
	}

	p.printCollisions(plan)

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Renamed %d of %d file(s) (%d unchanged, %d collision(s) skipped).\n",
		plan.RenamedCount(), len(plan.Items), plan.UnchangedCount, len(plan.CollisionItems))

	p.printWarnings(plan.Warnings)
}

func (p Printer) PrintStampDryRun(plan domain.StampPlan) {
	fmt.Fprintln(p.Writer, "Stamping EXIF dates:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatStampLines(plan.Items) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Would stamp %d file(s), %d already up to date.\n",
		len(plan.Items), plan.UpToDateSkip)

	p.printWarnings(plan.Warnings)
}

func (p Printer) PrintStampExecution(plan domain.StampPlan) {
	fmt.Fprintln(p.Writer, "Stamping EXIF dates:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatStampLines(plan.Items) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Stamped %d file(s), %d already up to date.\n",
		len(plan.Items), plan.UpToDateSkip)

	p.printWarnings(plan.Warnings)
}

func (p Printer) printCollisions(plan domain.RenamePlan) {
	if len(plan.CollisionItems) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Skipped, target exists:")
	for _, item := range plan.CollisionItems {
		fmt.Fprintf(p.Writer, "%s -> %s\n", item.OldName, item.NewName)
	}
}

func (p Printer) printWarnings(warnings []string) {
	if !p.Verbose || len(warnings) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Warnings:")
	for _, warning := range warnings {
		fmt.Fprintln(p.Writer, "- "+warning)
	}
}

// formatRenameLines lists the renames that will actually happen, keeping
// long listings readable: first two, ellipsis, last two. Unchanged and
// colliding items are reported elsewhere.
func formatRenameLines(plan domain.RenamePlan) []string {
	var lines []string
	for _, item := range plan.Items {
		if item.Unchanged || plan.Blocked(item) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s -> %s", item.OldName, item.NewName))
	}
	return truncateLines(lines)
}

func formatStampLines(items []domain.StampItem) []string {
	var lines []string
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s  %s", item.Name, item.Stamp))
	}
	return truncateLines(lines)
}

func truncateLines(lines []string) []string {
	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}
