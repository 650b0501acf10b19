package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const indexSpinnerLabel = "Loading Bundesliga clubs..."

type indexLoadedMsg struct {
	index domain.CityClubIndex
	err   error
}

// indexLoader builds the city index, showing a spinner on output while the
// knowledge source answers unless quiet is set.
type indexLoader struct {
	build  func(context.Context) (domain.CityClubIndex, error)
	output io.Writer
	quiet  bool
	now    func() time.Time
}

type indexLoaderModel struct {
	spinner spinner.Model
	load    tea.Cmd
	started time.Time
	now     func() time.Time
	index   domain.CityClubIndex
	err     error
	done    bool
}

func newIndexLoaderModel(load tea.Cmd, now func() time.Time) indexLoaderModel {
	return indexLoaderModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		load:    load,
		started: now(),
		now:     now,
	}
}

func (m indexLoaderModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m indexLoaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case indexLoadedMsg:
		m.index, m.err, m.done = msg.index, msg.err, true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m indexLoaderModel) View() string {
	if m.done {
		return ""
	}

	elapsed := m.now().Sub(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s %s", m.spinner.View(), indexSpinnerLabel, elapsed)
}

func (l indexLoader) Load(ctx context.Context) (domain.CityClubIndex, error) {
	if l.quiet {
		return l.build(ctx)
	}

	now := l.now
	if now == nil {
		now = time.Now
	}

	load := func() tea.Msg {
		index, err := l.build(ctx)
		return indexLoadedMsg{index: index, err: err}
	}

	finalModel, err := tea.NewProgram(
		newIndexLoaderModel(load, now),
		tea.WithInput(nil),
		tea.WithOutput(l.output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(indexLoaderModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.index, result.err
}

// loadIndex builds the city index for a command. Machine-readable output
// and --no-spinner skip the spinner.
func loadIndex(cmd *cobra.Command, app *app, machineOutput bool) (domain.CityClubIndex, error) {
	loader := indexLoader{
		build:  app.service.BuildIndex,
		output: cmd.ErrOrStderr(),
		quiet:  machineOutput || app.noSpinner,
	}

	return loader.Load(cmd.Context())
}
