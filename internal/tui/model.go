package tui

import (
	"fmt"
	"strings"
	"time"

	"filetidy/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConfirm
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	PlanReadyMsg struct {
		Plan domain.StampPlan
	}
	ScanProgressMsg struct {
		Current int
		Total   int
	}
	StampProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	StampDoneMsg struct{}
	ErrorMsg     struct {
		Err error
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ExecuteStampFunc starts the stamp run in the background and feeds
// progress/done messages back into the program.
type ExecuteStampFunc func(plan domain.StampPlan) tea.Cmd

// Config for the TUI
type Config struct {
	Dir          string
	DryRun       bool
	Verbose      bool
	ExecuteStamp ExecuteStampFunc
}

// Model drives the scan, confirm, execute and done phases of an
// interactive exifdate run.
type Model struct {
	config       Config
	Phase        Phase
	Plan         domain.StampPlan
	spinner      spinner.Model
	progress     progress.Model
	scanCurrent  int
	scanTotal    int
	stampCurrent int
	stampTotal   int
	currentFile  string
	confirmYes   bool
	Declined     bool
	Err          error
	Quitting     bool
	width        int
	height       int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:     cfg,
		Phase:      PhaseScanning,
		spinner:    s,
		progress:   p,
		confirmYes: false,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h", "y", "Y":
			if m.Phase == PhaseConfirm {
				m.confirmYes = true
			}
		case "right", "l", "n", "N":
			if m.Phase == PhaseConfirm {
				m.confirmYes = false
			}
		case "enter":
			if m.Phase == PhaseConfirm {
				return m, func() tea.Msg {
					return ConfirmMsg{Confirmed: m.confirmYes}
				}
			}
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.scanCurrent = msg.Current
		m.scanTotal = msg.Total
		return m, nil

	case PlanReadyMsg:
		m.Plan = msg.Plan
		switch {
		case m.config.DryRun, len(m.Plan.Items) == 0:
			m.Phase = PhaseDone
		default:
			m.Phase = PhaseConfirm
		}
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			m.Declined = true
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseExecuting
		if m.config.ExecuteStamp != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteStamp(m.Plan))
		}
		return m, nil

	case StampProgressMsg:
		m.stampCurrent = msg.Current
		m.stampTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case StampDoneMsg:
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.stampTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.stampCurrent)/float64(m.stampTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhaseConfirm:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseExecuting:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderExecution())
	case PhaseDone:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🕐 exifdate")
	subtitle := subtitleStyle.Render("Stamp EXIF dates from file modification times")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Directory: %s", iconFolder, m.config.Dir)),
	)
}

func (m Model) renderScanning() string {
	if m.scanTotal > 0 {
		percent := float64(m.scanCurrent) / float64(m.scanTotal)
		progressBar := m.progress.ViewAs(percent)

		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

		return fmt.Sprintf("%s Reading EXIF dates...\n\n  %s\n  %s %s",
			m.spinner.View(),
			progressBar,
			countStyle.Render(fmt.Sprintf("%d/%d", m.scanCurrent, m.scanTotal)),
			percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
		)
	}
	return fmt.Sprintf("%s Scanning images...", m.spinner.View())
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Files to Stamp"))
	b.WriteString("\n\n")

	if len(m.Plan.Items) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  Nothing to stamp"))
		b.WriteString("\n")
	} else {
		for i, item := range m.Plan.Items {
			if i >= 6 {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Plan.Items)-6))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				iconArrow,
				fileNameStyle.Render(item.Name),
				dateStyle.Render(item.Stamp),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	if m.config.Verbose && len(m.Plan.Warnings) > 0 {
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range m.Plan.Warnings {
			b.WriteString(fmt.Sprintf("  %s %s\n", iconWarning, w))
		}
	}

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statLabelStyle.Render("To stamp:"),
		statValueStyle.Render(fmt.Sprintf("%d", len(m.Plan.Items)))))
	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statLabelStyle.Render("Up to date:"),
		dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Plan.UpToDateSkip))))

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were touched"))
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	prompt := confirmPromptStyle.Render(fmt.Sprintf("Rewrite EXIF dates of %d files?", len(m.Plan.Items)))

	var yesBtn, noBtn string
	if m.confirmYes {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Stamping Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.stampTotal > 0 {
		percent = float64(m.stampCurrent) / float64(m.stampTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Running exiftool...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.stampCurrent, m.stampTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.currentFile),
		))
	}

	return b.String()
}

func (m Model) renderCompletion() string {
	if m.config.DryRun {
		return ""
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Done"))
	b.WriteString("\n\n")

	if m.Declined {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			warningStyle.Render(iconWarning),
			warningStyle.Render("Aborted, no files were touched.")))
		return b.String()
	}

	icon := successStyle.Render(iconSuccess)
	msg := successStyle.Render(fmt.Sprintf("Stamped %d files.", len(m.Plan.Items)))
	b.WriteString(fmt.Sprintf("  %s %s\n", icon, msg))

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseExecuting:
		help = "Stamping files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}
