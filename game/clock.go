package game

import (
	"time"

	"snake-engine/game/types"
)

// Clock gates the fixed simulation cadence inside a faster render loop.
// Input is sampled every frame; a press is held until a tick consumes it and
// a later press in the same interval replaces it.
type Clock struct {
	interval   time.Duration
	lastUpdate time.Time
	latest     types.Direction
}

func NewClock(interval time.Duration, now time.Time) *Clock {
	return &Clock{
		interval:   interval,
		lastUpdate: now,
	}
}

// Sample records the direction read this frame. None does not clear a press
// that is still waiting for its tick.
func (c *Clock) Sample(dir types.Direction) {
	if dir != types.None {
		c.latest = dir
	}
}

// Due reports whether a tick should run at now and starts the next interval if so
func (c *Clock) Due(now time.Time) bool {
	if now.Sub(c.lastUpdate) < c.interval {
		return false
	}
	c.lastUpdate = now
	return true
}

// Take hands the latest sampled direction to the tick and clears it
func (c *Clock) Take() types.Direction {
	dir := c.latest
	c.latest = types.None
	return dir
}
