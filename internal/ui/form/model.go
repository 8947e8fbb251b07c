package form

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/codec"
	"github.com/cliform-tools/cli/internal/controls"
	"github.com/cliform-tools/cli/internal/runner"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
	focusOutput
)

// Output collects run output from the executor goroutine so the view can
// show it between refresh ticks. Callers build their command tree around
// one Output and hand the same instance to the form.
type Output struct {
	mu sync.Mutex
	b  strings.Builder
}

// NewOutput returns an empty output sink.
func NewOutput() *Output {
	return &Output{}
}

func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.Write(p)
}

func (o *Output) WriteString(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.b.WriteString(s)
}

// Lines returns the collected output split into display lines.
func (o *Output) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.b.Len() == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(o.b.String(), "\n"), "\n")
}

type keyMap struct {
	Quit    key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Edit    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Remove  key.Binding
	RunCmd  key.Binding
	StopCmd key.Binding
	Export  key.Binding
	Import  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "on/off")),
		Add:     key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add entry")),
		Remove:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "drop entry")),
		RunCmd:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run")),
		StopCmd: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	}
}

type model struct {
	opts Options
	keys keyMap

	paths   []string
	pathIdx int

	rows   []row
	cursor int

	focus focusArea

	editing   bool
	editInput textinput.Model

	importing   bool
	importInput textinput.Model

	// Dialog-backed confirmations answered before a run starts.
	confirmQueue []*controls.ConfirmDialogControl
	confirmYes   bool
	pendingRun   bool

	output       *Output
	outputScroll int

	resolver *runner.Resolver
	exec     *runner.Executor

	runFailed  *atomic.Bool
	stopAsked  bool
	runPath    []string
	runCmdline string

	status string

	width  int
	height int
}

type runDoneMsg struct{}

type tickMsg time.Time

func newModel(opts Options) model {
	out := opts.Output
	if out == nil {
		out = NewOutput()
	}

	editInput := textinput.New()
	editInput.Prompt = "> "
	editInput.CharLimit = 512

	importInput := textinput.New()
	importInput.Prompt = "import> "
	importInput.Placeholder = "paste a command line"
	importInput.CharLimit = 1024

	m := model{
		opts:        opts,
		keys:        defaultKeyMap(),
		paths:       opts.Registry.Paths(),
		focus:       focusSidebar,
		editInput:   editInput,
		importInput: importInput,
		output:      out,
		resolver: &runner.Resolver{
			Registry: opts.Registry,
			Root:     opts.Root,
			Identity: opts.Identity,
			Diag:     out,
			Out:      out,
		},
		exec:      &runner.Executor{Diag: out},
		runFailed: &atomic.Bool{},
	}
	m.rows = flattenRows(opts.Registry, m.selectedKey())
	return m
}

func (m model) selectedKey() string {
	if len(m.paths) == 0 {
		return ""
	}
	return m.paths[m.pathIdx]
}

func (m model) selectedHierarchy() []string {
	return strings.Split(m.selectedKey(), binding.PathSep)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case runDoneMsg:
		return m.finishRun(), nil

	case tickMsg:
		if m.exec.Running() {
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.editing:
			return m.updateEditing(msg)
		case m.importing:
			return m.updateImporting(msg)
		case len(m.confirmQueue) > 0:
			return m.updateConfirm(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exec.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.RunCmd):
		return m.startRun()

	case key.Matches(msg, m.keys.StopCmd):
		if m.exec.Running() {
			m.stopAsked = true
			m.exec.Stop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		line := codec.Export(m.opts.Registry, m.opts.Root, m.selectedHierarchy(), m.opts.Identity)
		m.output.WriteString("$ " + line + "\n")
		m.outputScroll = 0
		return m, nil

	case key.Matches(msg, m.keys.Import):
		m.importing = true
		m.importInput.SetValue("")
		m.importInput.Focus()
		return m, textinput.Blink
	}

	switch m.focus {
	case focusSidebar:
		return m.updateSidebar(msg), nil
	case focusContent:
		return m.updateContent(msg)
	case focusOutput:
		return m.updateOutput(msg), nil
	}
	return m, nil
}

func (m model) updateSidebar(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pathIdx > 0 {
			m.pathIdx--
		} else {
			m.pathIdx = len(m.paths) - 1
		}
	case key.Matches(msg, m.keys.Down):
		if m.pathIdx < len(m.paths)-1 {
			m.pathIdx++
		} else {
			m.pathIdx = 0
		}
	case key.Matches(msg, m.keys.Edit):
		m.focus = focusContent
		return m
	default:
		return m
	}
	m.rows = flattenRows(m.opts.Registry, m.selectedKey())
	m.cursor = 0
	return m
}

func (m model) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	r := m.rows[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.rows) - 1
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Toggle):
		if r.parent == nil && r.ctl.CanToggle() {
			r.ctl.SetEnabled(!r.ctl.IsEnabled())
		}

	case key.Matches(msg, m.keys.Left):
		stepRow(r, -1)

	case key.Matches(msg, m.keys.Right):
		stepRow(r, +1)

	case key.Matches(msg, m.keys.Add):
		if rep, ok := r.ctl.(*controls.RepeatControl); ok {
			if _, err := rep.AddChild(nil); err != nil {
				m.status = err.Error()
			}
			m.rows = flattenRows(m.opts.Registry, m.selectedKey())
		}

	case key.Matches(msg, m.keys.Remove):
		if rep, ok := r.parent.(*controls.RepeatControl); ok {
			rep.RemoveChild(r.index)
			m.rows = flattenRows(m.opts.Registry, m.selectedKey())
			if m.cursor >= len(m.rows) {
				m.cursor = len(m.rows) - 1
			}
		}

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit(r)
	}

	return m, nil
}

func (m model) updateOutput(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.outputScroll++
	case key.Matches(msg, m.keys.Down):
		if m.outputScroll > 0 {
			m.outputScroll--
		}
	}
	return m
}

// beginEdit dispatches enter on a row: instant toggles for discrete
// controls, an inline text entry for everything the keyboard types into.
func (m model) beginEdit(r row) (tea.Model, tea.Cmd) {
	switch ctl := r.ctl.(type) {

	case *controls.CheckboxControl:
		ctl.Toggle()
		return m, nil

	case *controls.ConfirmDialogControl:
		yes, _ := ctl.WidgetValue().(bool)
		_ = ctl.SetValue(!yes)
		return m, nil

	case *controls.SelectControl:
		cycleChoice(ctl, +1)
		return m, nil

	case *controls.FeatureSwitchControl:
		cycleSwitch(ctl, +1)
		return m, nil

	case *controls.MultiSelectControl:
		// Choices toggle with left/right + enter; nothing to type.
		return m, nil

	case *controls.TupleControl, *controls.FixedListControl, *controls.RepeatControl, *controls.ConfirmPairControl:
		// Composites edit through their member rows.
		return m, nil
	}

	if !editable(r.ctl) {
		return m, nil
	}
	m.editing = true
	m.editInput.SetValue(editSeed(r.ctl))
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return m, textinput.Blink
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.editInput.Blur()
		return m, nil
	case tea.KeyEnter:
		r := m.rows[m.cursor]
		if err := commitEdit(r.ctl, m.editInput.Value()); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.editing = false
		m.editInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m model) updateImporting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.importing = false
		m.importInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.importing = false
		m.importInput.Blur()
		hierarchy, cerr := codec.Import(m.opts.Registry, m.opts.Root, m.importInput.Value(), m.opts.Identity)
		if cerr.IsError() {
			if msg := cerr.Message(); msg != "" {
				m.output.WriteString(msg + "\n")
			}
			return m, nil
		}
		target := binding.PathKey(hierarchy)
		for i, p := range m.paths {
			if p == target {
				m.pathIdx = i
				break
			}
		}
		m.rows = flattenRows(m.opts.Registry, m.selectedKey())
		m.cursor = 0
		m.focus = focusContent
		return m, nil
	}
	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.confirmQueue = nil
		m.pendingRun = false
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		m.confirmYes = !m.confirmYes
		return m, nil
	case tea.KeyEnter:
		return m.answerConfirm(m.confirmYes)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "y", "Y":
			return m.answerConfirm(true)
		case "n", "N":
			return m.answerConfirm(false)
		}
	}
	return m, nil
}

func (m model) answerConfirm(yes bool) (tea.Model, tea.Cmd) {
	_ = m.confirmQueue[0].SetValue(yes)
	m.confirmQueue = m.confirmQueue[1:]
	m.confirmYes = true
	if len(m.confirmQueue) > 0 {
		return m, nil
	}
	if m.pendingRun {
		m.pendingRun = false
		return m.resolveAndRun()
	}
	return m, nil
}

// startRun answers pending yes/no dialogs first, then resolves and runs
// the selected hierarchy.
func (m model) startRun() (tea.Model, tea.Cmd) {
	if m.exec.Running() {
		m.status = "a run is already in progress"
		return m, nil
	}

	hierarchy := m.selectedHierarchy()
	for i := range hierarchy {
		prefix := binding.PathKey(hierarchy[:i+1])
		for _, ctl := range m.opts.Registry.Controls(prefix) {
			if dlg, ok := ctl.(*controls.ConfirmDialogControl); ok && dlg.IsEnabled() {
				m.confirmQueue = append(m.confirmQueue, dlg)
			}
		}
	}
	if len(m.confirmQueue) > 0 {
		m.confirmYes = true
		m.pendingRun = true
		return m, nil
	}
	return m.resolveAndRun()
}

func (m model) resolveAndRun() (tea.Model, tea.Cmd) {
	hierarchy := m.selectedHierarchy()

	tasks, ok := m.resolver.Resolve(hierarchy)
	if !ok {
		m.outputScroll = 0
		return m, nil
	}
	if len(tasks) == 0 {
		m.status = "nothing to run here"
		return m, nil
	}

	m.runFailed.Store(false)
	m.stopAsked = false
	m.runPath = hierarchy
	m.runCmdline = codec.Export(m.opts.Registry, m.opts.Root, hierarchy, m.opts.Identity)

	failed := m.runFailed
	for i := range tasks {
		run := tasks[i].Run
		tasks[i].Run = func() error {
			err := run()
			if err != nil {
				failed.Store(true)
			}
			return err
		}
	}

	done := make(chan struct{})
	if err := m.exec.Start(tasks, func() { close(done) }); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.outputScroll = 0

	wait := func() tea.Msg {
		<-done
		return runDoneMsg{}
	}
	return m, tea.Batch(wait, tickCmd())
}

func (m model) finishRun() model {
	failed := m.runFailed.Load()
	stopped := m.stopAsked
	if m.opts.Record != nil && len(m.runPath) > 0 {
		m.opts.Record(m.runPath, m.runCmdline, failed, stopped)
	}
	m.runPath = nil
	m.stopAsked = false
	return m
}

func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// cycleChoice moves a select control to the previous or next choice.
func cycleChoice(ctl *controls.SelectControl, delta int) {
	choices := ctl.Choices()
	if len(choices) == 0 {
		return
	}
	current, _ := ctl.WidgetValue().(string)
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(choices)) % len(choices)
	_ = ctl.SetValue(choices[idx])
}

func cycleSwitch(ctl *controls.FeatureSwitchControl, delta int) {
	choices := ctl.Choices()
	if len(choices) == 0 {
		return
	}
	current, _ := ctl.WidgetValue().(string)
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(choices)) % len(choices)
	_ = ctl.SetValue(choices[idx])
}

// stepRow handles left/right on a row: spinners step, selects cycle,
// multi-selects toggle the choice nearest to the direction pressed.
func stepRow(r row, delta int) {
	switch ctl := r.ctl.(type) {
	case *controls.IntControl:
		ctl.Step(int64(delta))
	case *controls.FloatControl:
		_ = ctl.SetValue(fmt.Sprintf("%v", ctl.WidgetValue().(float64)+0.1*float64(delta)))
	case *controls.SelectControl:
		cycleChoice(ctl, delta)
	case *controls.FeatureSwitchControl:
		cycleSwitch(ctl, delta)
	case *controls.MultiSelectControl:
		toggleNextChoice(ctl, delta)
	}
}

// toggleNextChoice flips the first unselected choice (right) or the last
// selected one (left). Crude, but workable without a nested cursor.
func toggleNextChoice(ctl *controls.MultiSelectControl, delta int) {
	choices := ctl.Choices()
	selected := map[string]bool{}
	if seq, ok := ctl.WidgetValue().([]string); ok {
		for _, s := range seq {
			selected[s] = true
		}
	}
	if delta > 0 {
		for _, c := range choices {
			if !selected[c] {
				ctl.ToggleChoice(c)
				return
			}
		}
		return
	}
	for i := len(choices) - 1; i >= 0; i-- {
		if selected[choices[i]] {
			ctl.ToggleChoice(choices[i])
			return
		}
	}
}
