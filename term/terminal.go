// Package term runs the game in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"snake-engine/game"
	"snake-engine/game/types"
	"snake-engine/input"
	"snake-engine/sound"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const frameInterval = 16 * time.Millisecond

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault
)

// Terminal draws frames onto a tcell screen. Each cell is two columns wide
// so the arena looks square.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	sound  sound.Player
	log    zerolog.Logger
	keys   latch
}

func New(screen tcell.Screen, grid types.Grid, player sound.Player, log zerolog.Logger) *Terminal {
	if player == nil {
		player = sound.Mute{}
	}
	return &Terminal{
		screen: screen,
		grid:   grid,
		sound:  player,
		log:    log,
	}
}

// Keys is the source fed by key presses on the screen
func (t *Terminal) Keys() input.Source {
	return &t.keys
}

// Run drives the game from src until ctx is cancelled or the player quits.
// The quit keys work whatever src is. The caller owns the screen and must
// Fini it; that also stops the event goroutine.
func (t *Terminal) Run(ctx context.Context, g *game.Game, src input.Source, tickInterval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go t.pollEvents(cancel)

	clock := game.NewClock(tickInterval, time.Now())
	frame := g.State()
	stats := g.GetStats()
	if err := input.Feed(src, frame); err != nil {
		t.log.Warn().Err(err).Msg("input source rejected frame")
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.log.Info().Int("games", stats.GamesPlayed).Int("best", stats.BestLength).Msg("terminal session ended")
			return nil
		case now := <-ticker.C:
			clock.Sample(src.Sample())
			if clock.Due(now) {
				frame = g.Tick(clock.Take())
				if err := input.Feed(src, frame); err != nil {
					t.log.Warn().Err(err).Msg("input source rejected frame")
				}
				t.sound.Play(frame)
				if frame.JustReset {
					stats = g.GetStats()
				}
			}
			t.Draw(frame, stats.BestLength)
		}
	}
}

func (t *Terminal) pollEvents(cancel context.CancelFunc) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuit(ev.Key(), ev.Rune()) {
				cancel()
				return
			}
			t.keys.Set(Direction(ev.Key(), ev.Rune()))
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Draw renders one frame with the arena border in the top-left corner
func (t *Terminal) Draw(frame game.FrameState, best int) {
	t.screen.Clear()

	width := t.grid.Width*2 + 2
	height := t.grid.Height + 2
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, 0, '#', nil, borderStyle)
		t.screen.SetContent(x, height-1, '#', nil, borderStyle)
	}
	for y := 0; y < height; y++ {
		t.screen.SetContent(0, y, '#', nil, borderStyle)
		t.screen.SetContent(width-1, y, '#', nil, borderStyle)
	}

	for _, s := range frame.Sprites() {
		r, style := glyph(s.Kind)
		x, y := t.Screen(s.Cell)
		t.screen.SetContent(x, y, r, nil, style)
		t.screen.SetContent(x+1, y, r, nil, style)
	}

	drawText(t.screen, 0, height, textStyle, fmt.Sprintf("length %d  best %d  tick %d", len(frame.Snake), best, frame.Tick))
	t.screen.Show()
}

// Screen returns the left column and row of c, flipping Y
func (t *Terminal) Screen(c types.Cell) (int, int) {
	return 1 + c.X*2, 1 + (t.grid.Height - 1 - c.Y)
}

func glyph(kind game.SpriteKind) (rune, tcell.Style) {
	switch kind {
	case game.HeadSprite:
		return '@', headStyle
	case game.BodySprite:
		return 'o', bodyStyle
	default:
		return '*', foodStyle
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
