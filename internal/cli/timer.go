package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/projetonickjumper-byte/fitapp/internal/workout"
	"github.com/spf13/cobra"
)

const timerTick = 10 * time.Millisecond

var (
	timerLabelStyle  = lipgloss.NewStyle().Bold(true)
	timerDigitsStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	timerHelpStyle   = lipgloss.NewStyle().Faint(true)
)

var errNoTerminal = errors.New("the timer needs an interactive terminal")

var timerCmd = GroupCommand{
	Use:   "timer",
	Short: "Workout countdown and stopwatch",
	Subcommands: []*cobra.Command{
		timerCountdownCmd,
		timerStopwatchCmd,
	},
}.Build()

var timerCountdownCmd = LeafCommand{
	Use:   "countdown <duration>",
	Short: "Count down a rest interval (e.g. 90s, 1m30s, 45)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseCountdown(args[0])
		if err != nil {
			return err
		}
		return runTimer(cmd, workout.NewCountdown(d), "Countdown")
	},
}.Build()

var timerStopwatchCmd = LeafCommand{
	Use:   "stopwatch",
	Short: "Time a set or a run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, workout.NewStopwatch(), "Stopwatch")
	},
}.Build()

// parseCountdown accepts a Go duration or a bare number of seconds.
func parseCountdown(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("countdown must be positive")
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (expected e.g. 90s, 1m30s or 45)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("countdown must be positive")
	}
	return d, nil
}

func runTimer(cmd *cobra.Command, clock *workout.Clock, label string) error {
	if !isTerminal() {
		return errNoTerminal
	}

	m := newTimerModel(clock, label, time.Now)
	m.clock.Start(m.now())

	p := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return err
	}

	fm := final.(timerModel)
	if fm.finished {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Info("time's up!"))
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Silent(label+":"), Primary(fm.clock.Display(fm.now())))
	}
	return nil
}

type timerTickMsg time.Time

type timerModel struct {
	clock    *workout.Clock
	label    string
	now      func() time.Time
	finished bool
}

func newTimerModel(clock *workout.Clock, label string, now func() time.Time) timerModel {
	return timerModel{clock: clock, label: label, now: now}
}

func timerTickCmd() tea.Cmd {
	return tea.Tick(timerTick, func(t time.Time) tea.Msg { return timerTickMsg(t) })
}

func (m timerModel) Init() tea.Cmd {
	return timerTickCmd()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.clock.Done(m.now()) {
			m.finished = true
			return m, tea.Quit
		}
		return m, timerTickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.clock.Toggle(m.now())
		case "r":
			m.clock.Reset()
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	now := m.now()
	state := "paused"
	if m.clock.Running() {
		state = "running"
	}
	if m.clock.Done(now) {
		state = "done"
	}

	var b strings.Builder
	b.WriteString(timerLabelStyle.Render(m.label))
	b.WriteString("\n\n")
	b.WriteString(timerDigitsStyle.Render(m.clock.Display(now)))
	b.WriteString("  ")
	b.WriteString(Silent(state))
	b.WriteString("\n\n")
	b.WriteString(timerHelpStyle.Render("space pause/resume · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}
