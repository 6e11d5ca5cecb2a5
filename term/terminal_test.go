package term

import (
	"context"
	"sync"
	"testing"
	"time"

	"snake-engine/game"
	"snake-engine/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

var grid = types.Grid{Width: 10, Height: 10}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDraw(t *testing.T) {
	screen := newTestScreen(t)
	term := New(screen, grid, nil, zerolog.Nop())
	frame := game.FrameState{
		Tick:  4,
		Snake: []types.Cell{{X: 3, Y: 3}, {X: 3, Y: 2}},
		Food:  []types.Cell{{X: 0, Y: 0}},
	}

	term.Draw(frame, 7)

	tests := []struct {
		name string
		cell types.Cell
		want rune
	}{
		{"head", types.Cell{X: 3, Y: 3}, '@'},
		{"body", types.Cell{X: 3, Y: 2}, 'o'},
		{"food", types.Cell{X: 0, Y: 0}, '*'},
	}
	for _, tt := range tests {
		x, y := term.Screen(tt.cell)
		for _, col := range []int{x, x + 1} {
			if r, _, _, _ := screen.GetContent(col, y); r != tt.want {
				t.Errorf("%s at (%d,%d) = %q, want %q", tt.name, col, y, r, tt.want)
			}
		}
	}

	if r, _, _, _ := screen.GetContent(0, 0); r != '#' {
		t.Errorf("corner = %q, want border", r)
	}
	if r, _, _, _ := screen.GetContent(21, 11); r != '#' {
		t.Errorf("opposite corner = %q, want border", r)
	}
	if r, _, _, _ := screen.GetContent(0, 12); r != 'l' {
		t.Errorf("status line starts with %q, want 'l'", r)
	}
}

func TestScreenFlipsRows(t *testing.T) {
	term := New(nil, grid, nil, zerolog.Nop())

	if x, y := term.Screen(types.Cell{X: 0, Y: 0}); x != 1 || y != 10 {
		t.Errorf("Screen(0,0) = (%d,%d), want (1,10)", x, y)
	}
	if x, y := term.Screen(types.Cell{X: 9, Y: 9}); x != 19 || y != 1 {
		t.Errorf("Screen(9,9) = (%d,%d), want (19,1)", x, y)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newTestScreen(t)
	settings := game.DefaultSettings()
	settings.Seed = 1
	g := game.NewGame(settings)
	term := New(screen, grid, nil, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		done <- term.Run(context.Background(), g, term.Keys(), 10*time.Millisecond)
	}()

	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after q")
	}
	if g.State().Tick == 0 {
		t.Error("no ticks ran")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t)
	g := game.NewGame(game.DefaultSettings())
	term := New(screen, grid, nil, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := term.Run(ctx, g, term.Keys(), time.Second); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

type scripted struct {
	mu     sync.Mutex
	frames int
}

func (s *scripted) Sample() types.Direction { return types.Right }

func (s *scripted) Observe(game.FrameState) error {
	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
	return nil
}

func TestRunFeedsObservingSource(t *testing.T) {
	screen := newTestScreen(t)
	settings := game.DefaultSettings()
	settings.FoodCap = 0
	g := game.NewGame(settings)
	term := New(screen, grid, nil, zerolog.Nop())
	src := &scripted{}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if err := term.Run(ctx, g, src, 20*time.Millisecond); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	ticks := int(g.State().Tick)
	if ticks == 0 {
		t.Fatal("no ticks ran")
	}
	// One frame before the first tick, then one per tick.
	if src.frames != ticks+1 {
		t.Errorf("source observed %d frames over %d ticks", src.frames, ticks)
	}
}
