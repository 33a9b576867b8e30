package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/level"
	"github.com/vovakirdan/jmpnrn/internal/registry"
	"github.com/vovakirdan/jmpnrn/internal/render"
	"github.com/vovakirdan/jmpnrn/internal/storage"
)

// ViewerConfig bundles everything a viewer needs besides the scenario ID.
type ViewerConfig struct {
	Env     registry.Env
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Preset  string

	// LevelFile is loaded instead of the built-in level when set,
	// and reloaded on change when Watch is also set.
	LevelFile string
	Watch     bool
}

// levelChangedMsg reports that the watched level file was written.
type levelChangedMsg struct{ path string }

// levelErrorMsg reports a watcher failure.
type levelErrorMsg struct{ err error }

// Model is the Bubble Tea model that runs one scenario.
type Model struct {
	id       string
	cfg      ViewerConfig
	scenario registry.Scenario
	screen   *render.Screen
	input    *heldInput
	keys     *KeyMapper
	watcher  *level.Watcher
	state    core.SimState
	status   string
	nested   bool // inside a session: Back returns to the menu instead of quitting
	quitting bool
	back     bool
	saved    bool // whether the current run has been recorded
}

// NewModel creates the scenario and resets it.
func NewModel(id string, cfg ViewerConfig) (Model, error) {
	if cfg.LevelFile != "" && cfg.Env.Level == nil {
		lvl, err := level.LoadFile(cfg.LevelFile)
		if err != nil {
			return Model{}, err
		}
		cfg.Env.Level = lvl
	}

	m := Model{
		id:     id,
		cfg:    cfg,
		screen: render.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		input:  newHeldInput(),
		keys:   NewKeyMapper(),
	}
	if err := m.start(); err != nil {
		return Model{}, err
	}

	if cfg.Watch && cfg.LevelFile != "" {
		w, err := level.NewWatcher(cfg.LevelFile)
		if err != nil {
			return Model{}, err
		}
		m.watcher = w
	}

	return m, nil
}

// start creates a fresh scenario instance from the current env.
func (m *Model) start() error {
	sc, err := registry.Create(m.id, m.cfg.Env)
	if err != nil {
		return err
	}
	if err := sc.Reset(m.cfg.Runtime); err != nil {
		return err
	}
	m.scenario = sc
	m.state = sc.State()
	m.saved = false
	m.input.Reset()
	return nil
}

// Init starts the tick loop and, if enabled, the level watch.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return tea.Batch(tickCmd(m.cfg.Runtime.TickRate), watchLevel(m.watcher))
	}
	return tickCmd(m.cfg.Runtime.TickRate)
}

// watchLevel waits for the next watcher event.
func watchLevel(w *level.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			return levelChangedMsg{path: name}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return levelErrorMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.Runtime.ScreenW = msg.Width
		m.cfg.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.quitting || m.back {
			return m, nil
		}
		return m.handleTick()

	case levelChangedMsg:
		return m.handleReload(msg.path)

	case levelErrorMsg:
		m.status = "watch error: " + msg.err.Error()
		m.logger().Warn("level watch failed", "error", msg.err)
		return m, watchLevel(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.finish()
		m.back = true
		if m.nested {
			return m, nil
		}
		return m, tea.Quit
	}

	m.input.Press(action)
	return m, nil
}

// handleTick advances the scenario by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()

	if frame.Has(core.ActionRestart) {
		m.saveRun()
		if err := m.start(); err != nil {
			m.status = err.Error()
		}
		return m, tickCmd(m.cfg.Runtime.TickRate)
	}

	result := m.scenario.Step(frame)
	m.state = result.State

	if m.state.Finished && !m.saved {
		m.saveRun()
	}

	return m, tickCmd(m.cfg.Runtime.TickRate)
}

// handleReload swaps in the edited level and restarts the scenario.
func (m Model) handleReload(path string) (tea.Model, tea.Cmd) {
	lvl, err := level.LoadFile(path)
	if err != nil {
		m.status = "reload failed: " + err.Error()
		m.logger().Warn("level reload failed", "path", path, "error", err)
		return m, watchLevel(m.watcher)
	}

	m.saveRun()
	prev := m.cfg.Env.Level
	m.cfg.Env.Level = lvl
	if err := m.start(); err != nil {
		m.cfg.Env.Level = prev
		m.status = "reload failed: " + err.Error()
		return m, watchLevel(m.watcher)
	}

	m.status = fmt.Sprintf("reloaded %s", filepath.Base(path))
	m.logger().Info("level reloaded", "path", path, "actors", m.state.Actors)
	return m, watchLevel(m.watcher)
}

// saveRun records the current run once.
func (m *Model) saveRun() {
	if m.saved || m.cfg.Store == nil || m.state.Tick == 0 {
		return
	}
	m.saved = true

	run := storage.NewRun(m.id, m.scenario.Level().Name, m.scenario.World().Mode().String(), m.state)
	run.Preset = m.cfg.Preset
	run.Seed = m.cfg.Runtime.Seed
	if _, err := m.cfg.Store.SaveRun(run); err != nil {
		m.logger().Warn("could not save run", "error", err)
	}
}

// finish records the run and stops watching.
func (m *Model) finish() {
	m.saveRun()
	if m.watcher != nil {
		//nolint:errcheck // Best-effort cleanup on exit
		m.watcher.Close()
	}
}

func (m *Model) logger() *log.Logger {
	return m.scenario.World().Logger()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scenario.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jmpnrn", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_t%d.txt", m.id, timestamp, m.state.Tick)

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err == nil {
		m.status = "saved " + filename
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.scenario.Render(m.screen)
	if m.status != "" {
		m.screen.DrawText(1, m.screen.Height()-1, m.status)
	}
	return RenderScreen(m.screen)
}

// State returns the scenario state as of the last tick.
func (m Model) State() core.SimState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a single scenario.
// It reports whether the user asked to go back rather than quit.
func Run(id string, cfg ViewerConfig) (back bool, err error) {
	model, err := NewModel(id, cfg)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
