package await

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdateGrouping describes how the host program should batch or animate the
// terminal phase change. The component forwards it on ResultMsg exactly as
// supplied and never interprets it.
type UpdateGrouping any

// lastID issues component ids so concurrent instances in one program can tell
// each other's result messages apart.
var lastID atomic.Int64

// ResultMsg delivers the terminal phase for one component activation. It is
// produced by the command returned from Init and must be routed through the
// component's Update, which applies it on the program's event loop. Host
// programs may also inspect it, e.g. to read Grouping before forwarding.
type ResultMsg[V any] struct {
	// Phase is the terminal phase, always Success or Failure.
	Phase Phase[V]

	// Grouping is the descriptor supplied via WithGrouping, forwarded untouched.
	Grouping UpdateGrouping

	id int64
}

// Model wraps an asynchronous operation and renders a view for its current
// phase. It follows the bubbles component convention: embed it in a parent
// model, return Init's command on activation, route messages through Update,
// and render with View.
//
// The operation is started exactly once per activation and never retried. Its
// result is applied on the program's event loop at most once; completions that
// arrive after Deactivate are discarded without a phase change or render.
type Model[V any] struct {
	id       int64
	op       func() (V, error)
	render   func(Phase[V]) string
	grouping UpdateGrouping

	phase Phase[V]

	// started and done are shared across copies of the model so that start-once
	// and teardown survive Bubble Tea's value-semantics update cycle.
	started *atomic.Bool
	done    *atomic.Bool
}

// Option configures a Model.
type Option[V any] func(*Model[V])

// WithGrouping sets the opaque update-grouping descriptor forwarded on the
// terminal ResultMsg.
func WithGrouping[V any](g UpdateGrouping) Option[V] {
	return func(m *Model[V]) { m.grouping = g }
}

// New creates a component that runs op once on activation and renders every
// phase through render. render must be a pure mapping from phase to view text;
// it is called with Empty before the operation's result is observable and with
// the terminal phase after completion. The error returned by op is surfaced
// verbatim through the Failure phase, never raised to the caller.
func New[V any](op func() (V, error), render func(Phase[V]) string, opts ...Option[V]) Model[V] {
	m := Model[V]{
		id:      lastID.Add(1),
		op:      op,
		render:  render,
		phase:   Empty[V](),
		started: &atomic.Bool{},
		done:    &atomic.Bool{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewView creates a component from a success renderer and a placeholder
// renderer. The placeholder is shown while the operation is pending and also
// when it fails: in this form a failed operation is indistinguishable from a
// pending one. Callers that need to display errors should use New with a
// phase renderer instead.
func NewView[V any](op func() (V, error), renderValue func(V) string, renderPlaceholder func() string, opts ...Option[V]) Model[V] {
	return New(op, func(p Phase[V]) string {
		if v, ok := p.Value(); ok {
			return renderValue(v)
		}
		return renderPlaceholder()
	}, opts...)
}

// Init starts the operation asynchronously and returns the command that will
// deliver its ResultMsg. Calling Init again for the same activation returns
// nil: the operation runs at most once.
func (m Model[V]) Init() tea.Cmd {
	if m.op == nil || m.started == nil || !m.started.CompareAndSwap(false, true) {
		return nil
	}
	op, id, grouping := m.op, m.id, m.grouping
	return func() tea.Msg {
		v, err := op()
		if err != nil {
			return ResultMsg[V]{Phase: Failure[V](err), Grouping: grouping, id: id}
		}
		return ResultMsg[V]{Phase: Success(v), Grouping: grouping, id: id}
	}
}

// Update applies the terminal phase transition. Result messages addressed to
// other component instances are ignored, a terminal phase is applied at most
// once, and completions that arrive after Deactivate are discarded. Those
// checks run here, on the program's event loop, so teardown cannot race
// completion delivery.
func (m Model[V]) Update(msg tea.Msg) (Model[V], tea.Cmd) {
	res, ok := msg.(ResultMsg[V])
	if !ok || res.id != m.id {
		return m, nil
	}
	if m.done == nil || m.done.Load() || !m.phase.IsEmpty() {
		return m, nil
	}
	m.phase = res.Phase
	return m, nil
}

// View renders the current phase.
func (m Model[V]) View() string {
	if m.render == nil {
		return ""
	}
	return m.render(m.phase)
}

// Phase returns the current phase.
func (m Model[V]) Phase() Phase[V] { return m.phase }

// Deactivate tears the component down. An operation still in flight keeps
// running, but its eventual completion becomes a no-op: no phase change, no
// render, no error.
func (m Model[V]) Deactivate() Model[V] {
	if m.done != nil {
		m.done.Store(true)
	}
	return m
}

// Active reports whether the component can still apply a phase transition.
func (m Model[V]) Active() bool {
	return m.done != nil && !m.done.Load()
}
