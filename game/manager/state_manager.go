package manager

import (
	"sort"
	"time"

	"snake-engine/game/types"
)

// Phase is the game-over controller state. GameOver never outlives the tick
// that entered it.
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "running"
}

// GameRecord describes one finished game
type GameRecord struct {
	Length    int
	Ticks     uint64
	Cause     types.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// GameStats is a read-only copy of the session statistics
type GameStats struct {
	GamesPlayed  int
	BestLength   int
	AverageScore float64
	MedianScore  float64
	History      []int
	Last         GameRecord
}

// StateManager tracks the phase and keeps session statistics in memory
type StateManager struct {
	phase        Phase
	gamesPlayed  int
	bestLength   int
	scoreHistory []int
	last         GameRecord
	startTick    uint64
	startTime    time.Time
	now          func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		phase:        Running,
		scoreHistory: make([]int, 0, types.HistorySize),
		now:          time.Now,
	}
	sm.startTime = sm.now()
	return sm
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

// EnterGameOver records the finished game and switches to GameOver
func (sm *StateManager) EnterGameOver(length int, tick uint64, cause types.CollisionType) GameRecord {
	sm.phase = GameOver
	sm.gamesPlayed++

	if length > sm.bestLength {
		sm.bestLength = length
	}
	if len(sm.scoreHistory) >= types.HistorySize {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, length)

	sm.last = GameRecord{
		Length:    length,
		Ticks:     tick - sm.startTick,
		Cause:     cause,
		StartTime: sm.startTime,
		EndTime:   sm.now(),
	}
	return sm.last
}

// Resume returns to Running once the reset has been carried out
func (sm *StateManager) Resume(tick uint64) {
	sm.phase = Running
	sm.startTick = tick
	sm.startTime = sm.now()
}

func (sm *StateManager) GetHighScore() int {
	return sm.bestLength
}

// GetAverageScore averages the final lengths kept in the history
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, score := range sm.scoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// GetMedianScore returns the median final length over the history
func (sm *StateManager) GetMedianScore() float64 {
	n := len(sm.scoreHistory)
	if n == 0 {
		return 0
	}
	sorted := make([]int, n)
	copy(sorted, sm.scoreHistory)
	sort.Ints(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

func (sm *StateManager) Stats() GameStats {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return GameStats{
		GamesPlayed:  sm.gamesPlayed,
		BestLength:   sm.bestLength,
		AverageScore: sm.GetAverageScore(),
		MedianScore:  sm.GetMedianScore(),
		History:      history,
		Last:         sm.last,
	}
}
