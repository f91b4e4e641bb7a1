// Command exifdate rewrites the EXIF date tags of the JPEG files in the
// current directory to match their filesystem modification times.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"filetidy/internal/app"
	"filetidy/internal/config"
	"filetidy/internal/domain"
	appErrors "filetidy/internal/errors"
	"filetidy/internal/infra/exif"
	"filetidy/internal/infra/exiftool"
	"filetidy/internal/infra/fs"
	"filetidy/internal/logging"
	"filetidy/internal/presentation"
	"filetidy/internal/tui"
)

type options struct {
	dryRun      bool
	verbose     bool
	interactive bool
	binary      string
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
		Use:           "exifdate [flags]",
		Short:         "Stamp EXIF dates of JPEG files from their modification times",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Print planned stamps without running exiftool")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Interactive terminal UI")
	cmd.Flags().StringVar(&opts.binary, "exiftool", "", "Path to the exiftool binary")

	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}
	if opts.binary != "" {
		cfg.ExiftoolBinary = opts.binary
	}
	verbose := opts.verbose || cfg.Verbose

	dir, err := os.Getwd()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "getwd", "", err)
	}

	writer := exiftool.Writer{
		Binary:     cfg.ExiftoolBinary,
		KeepBackup: cfg.KeepBackup,
	}
	logger := logging.New(os.Stderr, verbose)

	if !opts.dryRun {
		version, err := writer.Version(ctx)
		if err != nil {
			return appErrors.Wrap(appErrors.ToolFailure, "preflight", cfg.ExiftoolBinary, err)
		}
		logger.Verbosef("exiftool %s", version)
	}

	if opts.interactive {
		return runInteractive(ctx, dir, opts, cfg, writer, verbose)
	}

	planner := app.StampPlanner{
		FS:         fs.OSFS{},
		Exif:       exif.Reader{},
		Extensions: cfg.Extensions,
		Logger:     logger,
	}

	plan, err := planner.Plan(ctx, dir)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "plan", dir, err)
	}

	printer := presentation.Printer{
		Writer:  os.Stdout,
		Verbose: verbose,
	}

	if opts.dryRun {
		printer.PrintStampDryRun(plan)
		return nil
	}

	executor := app.StampExecutor{Writer: writer}
	if err := executor.Execute(ctx, plan); err != nil {
		return appErrors.Wrap(appErrors.ToolFailure, "stamp", dir, err)
	}

	printer.PrintStampExecution(plan)
	return nil
}

func runInteractive(ctx context.Context, dir string, opts options, cfg config.Config, writer exiftool.Writer, verbose bool) error {
	var program *tea.Program

	model := tui.NewModel(tui.Config{
		Dir:     dir,
		DryRun:  opts.dryRun,
		Verbose: verbose,
		ExecuteStamp: func(plan domain.StampPlan) tea.Cmd {
			return func() tea.Msg {
				executor := app.StampExecutor{
					Writer: writer,
					OnProgress: func(current, total int) {
						file := ""
						if current-1 < len(plan.Items) {
							file = plan.Items[current-1].Name
						}
						program.Send(tui.StampProgressMsg{Current: current, Total: total, File: file})
					},
				}
				if err := executor.Execute(ctx, plan); err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.StampDoneMsg{}
			}
		},
	})

	program = tea.NewProgram(model)

	go func() {
		planner := app.StampPlanner{
			FS:         fs.OSFS{},
			Exif:       exif.Reader{},
			Extensions: cfg.Extensions,
			OnProgress: func(current, total int) {
				program.Send(tui.ScanProgressMsg{Current: current, Total: total})
			},
		}
		plan, err := planner.Plan(ctx, dir)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.PlanReadyMsg{Plan: plan})
	}()

	if _, err := program.Run(); err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	return nil
}
