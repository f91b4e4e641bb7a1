// Command translit renames the files of a directory by transliterating
// Cyrillic names to Latin script.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filetidy/internal/app"
	appErrors "filetidy/internal/errors"
	"filetidy/internal/infra/fs"
	"filetidy/internal/logging"
	"filetidy/internal/presentation"
)

type options struct {
	dryRun  bool
	verbose bool
	reverse bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "translit [flags] DIR",
		Short:         "Rename files by transliterating Cyrillic names to Latin",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage stays reserved for malformed invocations.
			cmd.SilenceUsage = true
			return run(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Print the plan without renaming")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Apply the reversed table (Latin to Cyrillic)")

	return cmd
}

func run(ctx context.Context, dir string, opts options) error {
	filesystem := fs.OSFS{}
	logger := logging.New(os.Stderr, opts.verbose)

	info, err := filesystem.Stat(dir)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", dir, err)
	}
	if !info.IsDir() {
		return appErrors.Wrap(appErrors.NotFound, "stat", dir, errors.New("not a directory"))
	}

	planner := app.RenamePlanner{
		FS:      filesystem,
		Reverse: opts.reverse,
		Logger:  logger,
	}

	plan, err := planner.Plan(ctx, dir)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "plan", dir, err)
	}

	printer := presentation.Printer{
		Writer:  os.Stdout,
		Verbose: opts.verbose,
	}

	if opts.dryRun {
		printer.PrintRenameDryRun(plan)
		return nil
	}

	if len(plan.CollisionItems) > 0 {
		logger.Warnf("%d file(s) keep their name because the target already exists", len(plan.CollisionItems))
	}

	executor := app.RenameExecutor{FS: filesystem}
	if err := executor.Execute(ctx, plan); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "rename", dir, err)
	}

	printer.PrintRenameExecution(plan)
	return nil
}
