package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/registry"
	"github.com/vovakirdan/jmpnrn/internal/render"
	_ "github.com/vovakirdan/jmpnrn/internal/scenarios"
	"github.com/vovakirdan/jmpnrn/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", runeKey(' '), core.ActionJump, false},
		{"f", runeKey('f'), core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"n", runeKey('n'), core.ActionStep, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRuns},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHeldInput(t *testing.T) {
	h := newHeldInput()

	h.Press(core.ActionRight)
	h.Press(core.ActionPause)

	first := h.Frame()
	if !first.Has(core.ActionRight) || !first.Has(core.ActionPause) {
		t.Fatalf("first frame = %v, expected Right and Pause", first.Actions)
	}

	second := h.Frame()
	if !second.Has(core.ActionRight) {
		t.Error("Right should still be held on the second frame")
	}
	if second.Has(core.ActionPause) {
		t.Error("Pause must only last one frame")
	}

	for i := 2; i < holdTicks; i++ {
		h.Frame()
	}
	if h.Frame().Has(core.ActionRight) {
		t.Errorf("Right still held after %d frames", holdTicks)
	}

	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)
	if f := h.Frame(); f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected Right to cancel Left", f.Actions)
	}

	h.Press(core.ActionJump)
	h.Reset()
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after Reset = %v, expected empty", f.Actions)
	}
}

func TestRenderScreen(t *testing.T) {
	s := render.NewScreen(4, 2)
	s.SetColored(0, 0, '#', render.ColorWalker)
	s.DrawText(1, 1, "ok")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "#") || !strings.Contains(out, "ok") {
		t.Errorf("RenderScreen() = %q, missing content", out)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := render.ColorDefault; c <= render.ColorUnknown; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles has no entry for color %d", c)
		}
	}
	if len(colorStyles) != int(render.ColorUnknown)+1 {
		t.Errorf("colorStyles has %d entries, expected %d", len(colorStyles), int(render.ColorUnknown)+1)
	}
}

func testViewerConfig(t *testing.T) ViewerConfig {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return ViewerConfig{
		Env:     registry.DefaultEnv(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Store:   store,
		Preset:  "default",
	}
}

func TestModelTicksAndSavesRun(t *testing.T) {
	cfg := testViewerConfig(t)

	m, err := NewModel("sandbox", cfg)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	var model tea.Model = m
	model, _ = model.Update(runeKey('d'))
	for i := 0; i < 10; i++ {
		model, _ = model.Update(TickMsg{})
	}

	vm := model.(Model)
	if vm.State().Tick != 10 {
		t.Errorf("State().Tick = %d, expected 10", vm.State().Tick)
	}
	if !strings.Contains(vm.View(), "Sandbox") {
		t.Error("View() should show the scenario HUD")
	}

	model, cmd := model.Update(runeKey('q'))
	if cmd == nil || !model.(Model).IsQuitting() {
		t.Fatal("q should quit the viewer")
	}

	runs, err := cfg.Store.RecentRuns("sandbox", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if r := runs[0]; r.Ticks != 10 || r.Preset != "default" || r.Seed != 3 || r.Mode != "single" {
		t.Errorf("run = %+v, expected 10 ticks with preset, seed and mode", r)
	}
}

func TestModelRestart(t *testing.T) {
	m, err := NewModel("stack", testViewerConfig(t))
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.Update(TickMsg{})
	}
	model, _ = model.Update(runeKey('r'))
	model, _ = model.Update(TickMsg{})

	if tick := model.(Model).State().Tick; tick != 0 {
		t.Errorf("State().Tick after restart = %d, expected 0", tick)
	}
}

func TestNewModelUnknownScenario(t *testing.T) {
	if _, err := NewModel("nope", testViewerConfig(t)); err == nil {
		t.Error("NewModel(nope) expected error")
	}
}

func TestSessionFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(testViewerConfig(t))

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := model.(SessionModel)
	if sm.screen != screenViewer {
		t.Fatalf("screen = %v after Enter, expected the viewer", sm.screen)
	}

	model, _ = model.Update(TickMsg{})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = model.(SessionModel)
	if sm.screen != screenMenu || sm.quitting {
		t.Fatalf("screen = %v quitting = %v after Esc, expected the menu", sm.screen, sm.quitting)
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("going back must not end the session")
		}
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.(SessionModel).screen != screenRuns {
		t.Fatal("Tab should open the run history")
	}
	if !strings.Contains(model.View(), "RUN HISTORY") {
		t.Error("run history view missing title")
	}

	model, _ = model.Update(runeKey('q'))
	if !model.(SessionModel).quitting {
		t.Error("q should end the session")
	}
}
