package entity

import (
	"snake-engine/game/types"
)

// Segment is one body unit of the snake, the head included
type Segment struct {
	Cell types.Cell
}

// Snake keeps its segments head first, tail last
type Snake struct {
	Segments []Segment
	Heading  types.Direction
}

// NewSnake places the head at spawn with one segment directly behind it, heading up
func NewSnake(spawn types.Cell) *Snake {
	s := &Snake{}
	s.Respawn(spawn)
	return s
}

// Respawn reinitializes the snake in place to its starting configuration
func (s *Snake) Respawn(spawn types.Cell) {
	behind := spawn.Add(types.Up.Opposite().Vector())
	s.Segments = append(s.Segments[:0], Segment{Cell: spawn}, Segment{Cell: behind})
	s.Heading = types.Up
}

// RequestDirection applies a heading change unless it would reverse the snake.
// None leaves the heading untouched. Reports whether the heading changed.
func (s *Snake) RequestDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Heading.Opposite() || dir == s.Heading {
		return false
	}
	s.Heading = dir
	return true
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

func (s *Snake) Head() types.Cell {
	return s.Segments[0].Cell
}

func (s *Snake) Tail() types.Cell {
	return s.Segments[len(s.Segments)-1].Cell
}

func (s *Snake) SetCell(i int, c types.Cell) {
	s.Segments[i].Cell = c
}

// Cells returns a copy of the body cells, head first
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, len(s.Segments))
	for i, seg := range s.Segments {
		cells[i] = seg.Cell
	}
	return cells
}

// Append adds a new tail segment at c
func (s *Snake) Append(c types.Cell) {
	s.Segments = append(s.Segments, Segment{Cell: c})
}

// Clear drops every segment
func (s *Snake) Clear() {
	s.Segments = s.Segments[:0]
}
