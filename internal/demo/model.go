// Package demo implements the interactive program behind await-demo.
//
// It composes two await components side by side: a greeting fetch built with
// the value/placeholder convenience form, and a report fetch built with the
// full phase renderer so failures are visible. Both fetches are simulated
// delays driven by configuration.
package demo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glimmerkit/await"
	"github.com/glimmerkit/await/internal/config"
	"github.com/glimmerkit/await/internal/logging"
)

// Model is the root Bubble Tea model for the demo.
type Model struct {
	cfg *config.Config
	log *logging.Logger

	spin     spinner.Model
	greeting await.Model[string]
	report   await.Model[string]

	width    int
	quitting bool
}

// New creates the demo model from configuration.
func New(cfg *config.Config, log *logging.Logger) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = spinnerStyle

	greeting := await.NewView(
		fetchGreeting(cfg),
		func(v string) string { return valueStyle.Render(v) },
		func() string { return mutedStyle.Render("waiting for greeting...") },
		await.WithGrouping[string]("fade"),
	)

	report := await.New(
		fetchReport(cfg),
		renderReportPhase,
		await.WithGrouping[string]("slide"),
	)

	return Model{
		cfg:      cfg,
		log:      log.WithComponent("demo"),
		spin:     sp,
		greeting: greeting,
		report:   report,
	}
}

// fetchGreeting simulates a slow upstream call that always succeeds.
func fetchGreeting(cfg *config.Config) func() (string, error) {
	delay := time.Duration(cfg.Demo.GreetingDelayMs) * time.Millisecond
	value := cfg.Demo.Greeting
	return func() (string, error) {
		time.Sleep(delay)
		return value, nil
	}
}

// fetchReport simulates a slower call that can be configured to fail.
func fetchReport(cfg *config.Config) func() (string, error) {
	delay := time.Duration(cfg.Demo.ReportDelayMs) * time.Millisecond
	fail := cfg.Demo.FailReport
	return func() (string, error) {
		time.Sleep(delay)
		if fail {
			return "", errors.New("bad response from report service")
		}
		return "report ready", nil
	}
}

func renderReportPhase(p await.Phase[string]) string {
	return await.Match(p,
		func() string { return mutedStyle.Render("compiling report...") },
		func(v string) string { return successStyle.Render(v) },
		func(err error) string { return errorStyle.Render("report failed: " + err.Error()) },
	)
}

// Init activates both fetches and starts the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.greeting.Init(), m.report.Init(), m.spin.Tick)
}

// Update routes messages to the spinner and both await components.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// Tear the components down so any fetch still in flight is
			// discarded instead of applied.
			m.greeting = m.greeting.Deactivate()
			m.report = m.report.Deactivate()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.greeting.Phase().Terminal() && m.report.Phase().Terminal() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case await.ResultMsg[string]:
		m.log.Info("phase transition",
			"phase", msg.Phase.String(),
			"grouping", msg.Grouping,
		)
		var gCmd, rCmd tea.Cmd
		m.greeting, gCmd = m.greeting.Update(msg)
		m.report, rCmd = m.report.Update(msg)
		return m, tea.Batch(gCmd, rCmd)
	}

	return m, nil
}

// View renders both fetches with a shared spinner for pending lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("await demo"))
	b.WriteString("\n\n")
	b.WriteString(m.line("greeting", m.greeting))
	b.WriteString("\n")
	b.WriteString(m.line("report", m.report))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("press q to quit"))
	return b.String()
}

// line prefixes a pending component's view with the shared spinner.
func (m Model) line(label string, c await.Model[string]) string {
	prefix := "  "
	if c.Phase().IsEmpty() {
		prefix = m.spin.View() + " "
	}
	return fmt.Sprintf("%s%s %s", prefix, labelStyle.Render(label+":"), c.View())
}
