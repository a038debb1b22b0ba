package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// stubGame starts on confirm and toggles pause like the maze does.
type stubGame struct {
	running bool
	paused  bool
	steps   int
	clocks  int
	seen    []core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { *g = stubGame{} }
func (g *stubGame) SetPaused(p bool) { g.paused = p }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub screen") }

func (g *stubGame) Clock() core.StepResult {
	g.clocks++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Level: 1, Paused: g.paused, Running: g.running && !g.paused}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.seen = append(g.seen, in.Clone())
	if in.Has(core.ActionConfirm) {
		g.running = true
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func newTestModel(g *stubGame, allowBack bool) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, cfg, Options{AllowBack: allowBack})
}

func startedModel(t *testing.T, g *stubGame) Model {
	t.Helper()
	m := newTestModel(g, true)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ticking {
		t.Fatal("setup: model is not ticking after start")
	}
	return m
}

func TestModelIdleUntilStarted(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, false)

	if m.Init() != nil {
		t.Error("Init() should not start ticks for an idle game")
	}
	if m.ticking {
		t.Error("idle game should not tick")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if g.steps != 1 {
		t.Errorf("confirm on an idle game should step at once, steps=%d", g.steps)
	}
	if !m.ticking || m.gen != 1 || cmd == nil {
		t.Errorf("after start: ticking=%v gen=%d cmd=%v", m.ticking, m.gen, cmd != nil)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)
	steps := g.steps

	m, cmd := update(t, m, SampleTickMsg{Gen: m.gen - 1})
	if g.steps != steps || cmd != nil {
		t.Errorf("stale sample tick was processed: steps=%d cmd=%v", g.steps, cmd != nil)
	}

	m, cmd = update(t, m, SampleTickMsg{Gen: m.gen})
	if g.steps != steps+1 {
		t.Errorf("current sample tick was dropped")
	}
	if cmd == nil {
		t.Error("sample tick was not re-armed")
	}

	_, cmd = update(t, m, ClockTickMsg{Gen: m.gen})
	if g.clocks != 1 || cmd == nil {
		t.Errorf("clock tick: clocks=%d rearmed=%v", g.clocks, cmd != nil)
	}
}

func TestModelBuffersInputWhileTicking(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)
	steps := g.steps

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, keyRune('w'))
	if g.steps != steps {
		t.Fatal("input stepped the game outside a sample tick")
	}

	m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
	last := g.seen[len(g.seen)-1]
	if !last.Has(core.ActionTiltLeft) || !last.Has(core.ActionTiltUp) {
		t.Errorf("buffered actions missing from sample frame: %+v", last.Actions)
	}

	update(t, m, SampleTickMsg{Gen: m.gen})
	if !g.seen[len(g.seen)-1].Empty() {
		t.Error("frame was not cleared after the sample")
	}
}

func TestModelPauseStopsChains(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)
	gen := m.gen

	m, _ = update(t, m, keyRune('p'))
	m, cmd := update(t, m, SampleTickMsg{Gen: gen})
	if m.ticking || cmd != nil {
		t.Fatalf("pause should stop ticking: ticking=%v cmd=%v", m.ticking, cmd != nil)
	}
	if m.gen == gen {
		t.Error("stopping should bump the generation")
	}

	// The clock tick already in flight belongs to the stopped chain.
	m, _ = update(t, m, ClockTickMsg{Gen: gen})
	if g.clocks != 0 {
		t.Error("clock tick from a stopped chain was processed")
	}

	// Unpausing steps at once and starts a fresh chain.
	m, cmd = update(t, m, keyRune('p'))
	if !m.ticking || cmd == nil || m.gen != gen+2 {
		t.Errorf("resume: ticking=%v gen=%d (want %d) cmd=%v", m.ticking, m.gen, gen+2, cmd != nil)
	}
}

// fakeClock is a settable time source for the model.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestModelPauseKeepsPartialSecond(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := &stubGame{}
	m := newTestModel(g, true)
	m.now = clock.now
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	clock.t = clock.t.Add(300 * time.Millisecond)
	m, _ = update(t, m, keyRune('p'))
	m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
	if m.ticking {
		t.Fatal("pause did not stop the chains")
	}

	clock.t = clock.t.Add(5 * time.Second) // paused time does not count
	m, _ = update(t, m, keyRune('p'))
	if !m.ticking || m.clockFor != 700*time.Millisecond {
		t.Errorf("resume: ticking=%v clockFor=%v, expected 700ms", m.ticking, m.clockFor)
	}

	// A clock tick that was already due when the chain stopped is owed.
	clock.t = clock.t.Add(time.Second)
	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, tea.FocusMsg{})
	if m.clockFor != time.Millisecond {
		t.Errorf("overdue tick: clockFor=%v, expected 1ms", m.clockFor)
	}
}

func TestModelPauseSpamStillCountsDown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	v, _ := tiltmaze.LookupVariant("maze")
	g := tiltmaze.New(v).WithParams(maze.DefaultParams())

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, Options{})
	m.now = clock.now
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	start := g.Snapshot().TimeRemaining

	// Pause and resume three times a second for 12 seconds of play. Each
	// cycle also delivers the clock tick of the chain the pause stopped.
	for i := 0; i < 40; i++ {
		clock.t = clock.t.Add(300 * time.Millisecond)
		if !clock.t.Before(m.clockAt.Add(m.clockFor)) {
			m, _ = update(t, m, ClockTickMsg{Gen: m.gen})
		}

		m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
		m, _ = update(t, m, keyRune('p'))
		m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
		stale := m.gen
		m, _ = update(t, m, keyRune('p'))
		m, _ = update(t, m, ClockTickMsg{Gen: stale})

		if g.Phase() != tiltmaze.PhasePlaying || !m.ticking {
			t.Fatalf("cycle %d: phase=%v ticking=%v", i, g.Phase(), m.ticking)
		}
	}

	left := g.Snapshot().TimeRemaining
	if start-left < 8 {
		t.Errorf("TimeRemaining went %d -> %d over 12s of play, expected at least 8s spent", start, left)
	}
}

func TestModelFocusLifecycle(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)

	m, _ = update(t, m, tea.BlurMsg{})
	if !g.paused || m.ticking {
		t.Fatalf("blur: paused=%v ticking=%v", g.paused, m.ticking)
	}

	m, cmd := update(t, m, tea.FocusMsg{})
	if g.paused || !m.ticking || cmd == nil {
		t.Errorf("focus: paused=%v ticking=%v cmd=%v", g.paused, m.ticking, cmd != nil)
	}
}

func TestModelFocusKeepsManualPause(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)

	m, _ = update(t, m, keyRune('p'))
	m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, tea.FocusMsg{})

	if !g.paused || m.ticking {
		t.Errorf("focus resumed a game the player paused: paused=%v ticking=%v", g.paused, m.ticking)
	}
}

func TestModelBack(t *testing.T) {
	g := &stubGame{}
	m := startedModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the game runs")
	}

	g.SetPaused(true)
	m, _ = update(t, m, SampleTickMsg{Gen: m.gen})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	// Without a menu the back key does nothing.
	solo := newTestModel(&stubGame{}, false)
	solo, _ = update(t, solo, tea.KeyMsg{Type: tea.KeyEsc})
	if solo.BackToMenu() {
		t.Error("back without a menu should be ignored")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, false)
	m, cmd := update(t, m, keyRune('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(&stubGame{}, cfg, Options{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot dir: %v entries, err %v", len(entries), err)
	}
	data, err := os.ReadFile(strings.TrimPrefix(m.status, "saved "))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "stub screen") {
		t.Errorf("screenshot content = %q", firstLine(string(data)))
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{}, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	out := m.View()
	if !strings.Contains(out, "stub screen") {
		t.Errorf("View() missing game output:\n%s", out)
	}
	if !strings.Contains(out, "tilt") {
		t.Errorf("View() missing help footer:\n%s", out)
	}
	if m.screen.Height() != 9 {
		t.Errorf("screen height = %d, expected 9 above a one-line footer", m.screen.Height())
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionTiltUp},
		{keyRune('s'), core.ActionTiltDown},
		{keyRune('a'), core.ActionTiltLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionTiltRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLevel},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{keyRune('p'), core.ActionPause},
		{keyRune('r'), core.ActionRestart},
		{keyRune('q'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}
	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
