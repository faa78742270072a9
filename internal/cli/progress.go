package cli

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/raphaelgruber/namesmith/internal/service"
)

const pollInterval = 200 * time.Millisecond

// errBatchCanceled is returned when the user quits the progress display.
var errBatchCanceled = errors.New("batch canceled")

// tickMsg triggers polling the job status
type tickMsg time.Time

// jobUpdateMsg carries a snapshot of the job
type jobUpdateMsg struct {
	job *service.Job
}

// progressModel is the bubbletea model for batch progress.
type progressModel struct {
	live     *service.Job
	job      *service.Job
	progress progress.Model
	theme    Theme
	done     bool
	quitting bool
	err      error
}

// newProgressModel creates a new progress model.
func newProgressModel(job *service.Job) progressModel {
	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)

	snap := job.Snapshot()
	return progressModel{
		live:     job,
		job:      &snap,
		progress: prog,
		theme:    defaultTheme,
	}
}

// Init returns the initial command (start polling).
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.progress.Init(),
	)
}

// Update handles messages and returns the updated model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		return m, m.fetchJob()

	case jobUpdateMsg:
		m.job = msg.job

		switch m.job.Status {
		case service.JobStatusCompleted:
			m.done = true
			return m, tea.Quit
		case service.JobStatusFailed:
			m.done = true
			if m.job.Error != "" {
				m.err = errors.New(m.job.Error)
			} else {
				m.err = errors.New("job failed with unknown error")
			}
			return m, tea.Quit
		}

		return m, tickCmd()

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m progressModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent builds the display string.
func (m progressModel) renderContent() string {
	if m.done || m.quitting {
		return m.finalView()
	}

	var pct float64
	if m.job.Total > 0 {
		pct = float64(m.job.Progress) / float64(m.job.Total)
	}

	status := m.theme.statusStyle().Render(fmt.Sprintf("[%s]", m.job.Status))
	progressBar := m.progress.ViewAs(pct)
	counts := fmt.Sprintf("%d/%d keywords", m.job.Progress, m.job.Total)
	hint := m.theme.hintStyle().Render("Press q or Ctrl+C to cancel")

	return fmt.Sprintf("%s %s %s\n%s\n", status, progressBar, counts, hint)
}

// finalView renders the completion message.
func (m progressModel) finalView() string {
	if m.quitting {
		return m.theme.hintStyle().Render(fmt.Sprintf("\nBatch %s canceled.\n", m.job.ID))
	}
	if m.err != nil {
		return m.theme.errorStyle().Render(fmt.Sprintf("\n✗ Batch failed: %s\n", m.err))
	}
	return m.theme.completedStyle().Render("✓ Completed") + "\n"
}

// fetchJob reads the current job state.
func (m progressModel) fetchJob() tea.Cmd {
	return func() tea.Msg {
		snap := m.live.Snapshot()
		return jobUpdateMsg{job: &snap}
	}
}

// tickCmd returns a command that sends a tick after the poll interval.
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// runJobProgress shows the interactive progress UI until the job finishes.
// It returns the job error on failure and errBatchCanceled when the user
// quits.
func runJobProgress(job *service.Job) error {
	p := tea.NewProgram(newProgressModel(job))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("progress UI error: %w", err)
	}

	if m, ok := finalModel.(progressModel); ok {
		if m.quitting {
			return errBatchCanceled
		}
		if m.err != nil {
			return m.err
		}
	}
	return nil
}
