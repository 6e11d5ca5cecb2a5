package game

import (
	"time"

	"snake-engine/game/entity"
	"snake-engine/game/manager"
	"snake-engine/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Settings holds the tuning a Game is built from
type Settings struct {
	Grid           types.Grid
	Spawn          types.Cell
	FoodCap        int
	FoodEveryTicks int
	Seed           uint64 // 0 seeds from the clock
}

// DefaultSettings is a 10x10 arena with up to ten food items
func DefaultSettings() Settings {
	return Settings{
		Grid:           types.Grid{Width: 10, Height: 10},
		Spawn:          types.Cell{X: 3, Y: 3},
		FoodCap:        types.DefaultFoodCap,
		FoodEveryTicks: 1,
	}
}

type Option func(*Game)

// WithLogger attaches a logger; the session id is added as a field
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithUUID overrides the generated session id
func WithUUID(id string) Option {
	return func(g *Game) {
		g.UUID = id
	}
}

// Game is the authoritative simulation state. It is owned by a single loop
// and is not safe for concurrent use; renderers read FrameState copies.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	settings Settings
	tick     uint64
	log      zerolog.Logger

	collisionMgr *manager.CollisionManager
	movementMgr  *manager.MovementManager
	foodMgr      *manager.FoodManager
	growthMgr    *manager.GrowthManager
	popManager   *manager.PopulationManager
	stateManager *manager.StateManager
	snake        *entity.Snake
}

func NewGame(settings Settings, opts ...Option) *Game {
	if settings.FoodEveryTicks < 1 {
		settings.FoodEveryTicks = 1
	}
	if settings.FoodCap < 0 {
		settings.FoodCap = 0
	}
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		UUID:      uuid.New().String(),
		Grid:      settings.Grid,
		StartTime: time.Now(),
		settings:  settings,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("session", g.UUID).Logger()

	g.collisionMgr = manager.NewCollisionManager(settings.Grid)
	g.movementMgr = manager.NewMovementManager(g.collisionMgr)
	g.foodMgr = manager.NewFoodManager(settings.Grid, settings.FoodCap, rand.New(rand.NewSource(seed)), g.collisionMgr)
	g.growthMgr = manager.NewGrowthManager()
	g.popManager = manager.NewPopulationManager(settings.Grid, settings.Spawn)
	g.stateManager = manager.NewStateManager()
	g.snake = g.popManager.InitializePopulation()

	g.log.Info().
		Int("width", settings.Grid.Width).
		Int("height", settings.Grid.Height).
		Int("food_cap", settings.FoodCap).
		Uint64("seed", seed).
		Msg("game created")

	return g
}

// Tick advances the simulation by one step. dir is the latest sampled input,
// None when no direction key was held. Phases run in a fixed order: input,
// movement and collision, game-over reset, eating, growth, food spawn.
// Eating schedules a growth that is applied at the cell the tail just left.
func (g *Game) Tick(dir types.Direction) FrameState {
	g.tick++
	frame := FrameState{Tick: g.tick}

	g.snake.RequestDirection(dir)

	outcome, collision := g.movementMgr.Advance(g.snake)
	if outcome == types.Collided {
		g.gameOver(collision)
		frame.JustReset = true
		frame.Collision = collision
	} else {
		if g.foodMgr.Eat(g.snake.Head()) {
			g.growthMgr.Schedule()
			frame.Ate = true
			g.log.Debug().Int("x", g.snake.Head().X).Int("y", g.snake.Head().Y).Msg("food eaten")
		}
		if lastTail, ok := g.movementMgr.LastTail(); ok {
			g.growthMgr.Apply(g.snake, lastTail)
		}
	}

	// A reset tick leaves the board empty.
	if !frame.JustReset && g.tick%uint64(g.settings.FoodEveryTicks) == 0 {
		if food, ok := g.foodMgr.SpawnTick(g.snake.Cells()); ok {
			g.log.Debug().Int("x", food.X).Int("y", food.Y).Msg("food spawned")
		}
	}

	frame.Heading = g.snake.Heading
	frame.Snake = g.snake.Cells()
	frame.Food = g.foodMgr.Foods()
	return frame
}

// gameOver clears the board and rebuilds the snake at the spawn cell within
// the same tick.
func (g *Game) gameOver(cause types.CollisionType) {
	record := g.stateManager.EnterGameOver(g.snake.Len(), g.tick, cause)

	g.foodMgr.Clear()
	g.growthMgr.Clear()
	g.movementMgr.Forget()
	g.popManager.Reset()

	g.stateManager.Resume(g.tick)

	g.log.Info().
		Stringer("cause", cause).
		Int("length", record.Length).
		Uint64("ticks", record.Ticks).
		Int("best", g.stateManager.GetHighScore()).
		Float64("average", g.stateManager.GetAverageScore()).
		Msg("game over")
}

// State returns the current frame without advancing
func (g *Game) State() FrameState {
	return FrameState{
		Tick:    g.tick,
		Heading: g.snake.Heading,
		Snake:   g.snake.Cells(),
		Food:    g.foodMgr.Foods(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFoodManager() *manager.FoodManager {
	return g.foodMgr
}

func (g *Game) GetStats() manager.GameStats {
	return g.stateManager.Stats()
}

// ElapsedTime returns the session duration in seconds
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}
