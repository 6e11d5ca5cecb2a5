package ai

import (
	"fmt"
	"math"

	"snake-engine/game"
	"snake-engine/game/types"

	"golang.org/x/exp/rand"
)

// Brain kinds accepted by NewBrain
const (
	BrainTable = "table"
	BrainDQN   = "dqn"
)

// State is what the autopilot sees of the board
type State struct {
	RelativeFoodDir [2]int  // Sign of the offset from head to nearest food (x, y)
	FoodDistance    int     // Manhattan distance to nearest food
	DangerDirs      [4]bool // Danger one step away, indexed like Actions
}

// Actions are the absolute headings the agent may pick
var Actions = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

// Brain estimates action values and learns from transitions. Indexes follow
// Actions. done marks a transition that ended the game.
type Brain interface {
	Values(s State) ([4]float64, error)
	Learn(s State, action int, reward float64, next State, done bool) error
}

// NewBrain builds a brain by kind. Everything it learns stays in memory.
func NewBrain(kind string, grid types.Grid, seed uint64) (Brain, error) {
	switch kind {
	case BrainTable, "":
		return NewTableBrain(), nil
	case BrainDQN:
		return NewDQNBrain(grid, seed)
	default:
		return nil, fmt.Errorf("unknown autopilot brain %q", kind)
	}
}

type QTable map[State][4]float64

// TableBrain is tabular Q-learning
type TableBrain struct {
	Table        QTable
	LearningRate float64
	Discount     float64
}

func NewTableBrain() *TableBrain {
	return &TableBrain{
		Table:        make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
	}
}

func (b *TableBrain) Values(s State) ([4]float64, error) {
	return b.Table[s], nil
}

func (b *TableBrain) Learn(s State, action int, reward float64, next State, done bool) error {
	target := reward
	if !done {
		target += b.Discount * maxValue(b.Table[next])
	}
	values := b.Table[s]
	values[action] += b.LearningRate * (target - values[action])
	b.Table[s] = values
	return nil
}

// Autopilot is a Q-learning player that plays through the same input
// contract as a keyboard. Feed it every frame with Observe, read its choice
// with Sample.
type Autopilot struct {
	Brain       Brain
	Epsilon     float64
	TotalReward float64
	GamesPlayed int

	grid      types.Grid
	rng       *rand.Rand
	lastState State
	lastIndex int
	hasLast   bool
	heading   types.Direction
	next      types.Direction
}

// NewAutopilot wraps brain; a nil brain gets a fresh TableBrain
func NewAutopilot(grid types.Grid, brain Brain, seed uint64) *Autopilot {
	if brain == nil {
		brain = NewTableBrain()
	}
	return &Autopilot{
		Brain:   brain,
		Epsilon: 0.1,
		grid:    grid,
		rng:     rand.New(rand.NewSource(seed)),
		heading: types.Up,
	}
}

// Observe learns from the transition that produced frame and picks the next
// move. A brain error still leaves a safe move queued.
func (a *Autopilot) Observe(frame game.FrameState) error {
	a.heading = frame.Heading
	state := a.GetState(frame)

	var err error
	if a.hasLast {
		reward := a.reward(a.lastState, state, frame)
		a.TotalReward += reward
		if lerr := a.Brain.Learn(a.lastState, a.lastIndex, reward, state, frame.JustReset); lerr != nil {
			err = fmt.Errorf("autopilot learn: %w", lerr)
		}
	}
	if frame.JustReset {
		a.GamesPlayed++
	}

	idx, cerr := a.chooseAction(state)
	if cerr != nil && err == nil {
		err = fmt.Errorf("autopilot choose: %w", cerr)
	}
	a.lastState = state
	a.lastIndex = idx
	a.hasLast = true
	a.next = Actions[idx]
	return err
}

// Sample returns the move picked by the last Observe
func (a *Autopilot) Sample() types.Direction {
	return a.next
}

// GetState extracts the learning state from a frame
func (a *Autopilot) GetState(frame game.FrameState) State {
	head, ok := frame.Head()
	if !ok {
		return State{}
	}

	var s State
	if food, found := nearest(head, frame.Food); found {
		s.RelativeFoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
		s.FoodDistance = abs(food.X-head.X) + abs(food.Y-head.Y)
	}
	for i, dir := range Actions {
		s.DangerDirs[i] = a.IsDanger(head.Add(dir.Vector()), frame.Snake)
	}
	return s
}

// IsDanger applies the engine's collision rule: walls, and every body cell
// including the tail.
func (a *Autopilot) IsDanger(p types.Cell, body []types.Cell) bool {
	if a.grid.Outside(p) {
		return true
	}
	for _, sp := range body {
		if p == sp {
			return true
		}
	}
	return false
}

func (a *Autopilot) reward(prev, next State, frame game.FrameState) float64 {
	switch {
	case frame.JustReset:
		return -1.0
	case frame.Ate:
		return 1.0
	case prev.FoodDistance == 0 || next.FoodDistance == 0:
		return 0
	case next.FoodDistance < prev.FoodDistance:
		return 0.5
	case next.FoodDistance > prev.FoodDistance:
		return -0.3
	}
	return 0
}

// chooseAction is epsilon-greedy over the actions that do not reverse the
// snake. When the brain fails it explores instead.
func (a *Autopilot) chooseAction(state State) (int, error) {
	allowed := make([]int, 0, len(Actions))
	for i, dir := range Actions {
		if dir != a.heading.Opposite() {
			allowed = append(allowed, i)
		}
	}

	// Exploration: random action
	if a.rng.Float64() < a.Epsilon {
		return allowed[a.rng.Intn(len(allowed))], nil
	}

	values, err := a.Brain.Values(state)
	if err != nil {
		return allowed[a.rng.Intn(len(allowed))], err
	}

	// Exploitation: best known action
	best := allowed[0]
	bestValue := math.Inf(-1)
	for _, i := range allowed {
		if values[i] > bestValue {
			bestValue = values[i]
			best = i
		}
	}
	return best, nil
}

func maxValue(values [4]float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func nearest(from types.Cell, cells []types.Cell) (types.Cell, bool) {
	best := types.Cell{}
	bestDist := -1
	for _, c := range cells {
		d := abs(c.X-from.X) + abs(c.Y-from.Y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
