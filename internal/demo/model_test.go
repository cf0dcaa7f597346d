package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glimmerkit/await"
	"github.com/glimmerkit/await/internal/config"
	"github.com/glimmerkit/await/internal/logging"
)

func testConfig() *config.Config {
	return &config.Config{
		Demo: config.DemoConfig{
			Greeting:        "hello there",
			GreetingDelayMs: 0,
			ReportDelayMs:   0,
		},
		Logging: config.LoggingConfig{Level: logging.LevelError},
	}
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.NewLogger("", logging.LevelError)
	if err != nil {
		t.Fatalf("creating test logger: %v", err)
	}
	return logger
}

func TestModel_InitialView(t *testing.T) {
	m := New(testConfig(), testLogger(t))

	view := m.View()
	for _, want := range []string{
		"await demo",
		"greeting:",
		"waiting for greeting...",
		"report:",
		"compiling report...",
		"press q to quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view missing %q\nview:\n%s", want, view)
		}
	}
}

func TestModel_GreetingSuccess(t *testing.T) {
	m := New(testConfig(), testLogger(t))

	msg := m.greeting.Init()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "hello there") {
		t.Errorf("view missing greeting value\nview:\n%s", view)
	}
	// The report fetch is still pending and must be unaffected.
	if !strings.Contains(view, "compiling report...") {
		t.Errorf("report placeholder disappeared\nview:\n%s", view)
	}
}

func TestModel_ReportFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Demo.FailReport = true
	m := New(cfg, testLogger(t))

	msg := m.report.Init()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "report failed: bad response from report service") {
		t.Errorf("view missing failure line\nview:\n%s", view)
	}
}

func TestModel_ResultRouting(t *testing.T) {
	m := New(testConfig(), testLogger(t))

	// Delivering the report's result must not complete the greeting.
	msg := m.report.Init()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	if !m.greeting.Phase().IsEmpty() {
		t.Error("greeting phase changed when the report result arrived")
	}
	if !m.report.Phase().IsSuccess() {
		t.Errorf("report phase = %v, want success", m.report.Phase())
	}

	res, ok := msg.(await.ResultMsg[string])
	if !ok {
		t.Fatalf("report command produced %T, want ResultMsg[string]", msg)
	}
	if res.Grouping != "slide" {
		t.Errorf("report grouping = %v, want %q", res.Grouping, "slide")
	}
}

func TestModel_QuitDeactivates(t *testing.T) {
	m := New(testConfig(), testLogger(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("quit key did not produce a command")
	}
	if !m.quitting {
		t.Error("quitting flag not set")
	}
	if m.greeting.Active() || m.report.Active() {
		t.Error("components still active after quit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := New(testConfig(), testLogger(t))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.width != 120 {
		t.Errorf("width = %d, want 120", m.width)
	}
}
