package tetris

import "time"

// SpeedConfig holds the two tick intervals: Base until the first row is
// cleared, Floor from then on.
type SpeedConfig struct {
	Base  time.Duration
	Floor time.Duration
}

// DefaultSpeed returns the normal-difficulty intervals.
func DefaultSpeed() SpeedConfig {
	return SpeedConfig{
		Base:  600 * time.Millisecond,
		Floor: 300 * time.Millisecond,
	}
}

// normalized fills in missing values. Floor never exceeds Base.
func (c SpeedConfig) normalized() SpeedConfig {
	if c.Base <= 0 {
		c.Base = DefaultSpeed().Base
	}
	if c.Floor <= 0 || c.Floor > c.Base {
		c.Floor = c.Base
	}
	return c
}

// IntervalFor returns the tick interval for the given number of rows
// cleared in the current game.
func (c SpeedConfig) IntervalFor(rowsCleared int) time.Duration {
	c = c.normalized()
	if rowsCleared > 0 {
		return c.Floor
	}
	return c.Base
}

// SpeedController tracks the interval the tick source currently runs at.
type SpeedController struct {
	cfg     SpeedConfig
	current time.Duration
}

// NewSpeedController starts at the base interval.
func NewSpeedController(cfg SpeedConfig) *SpeedController {
	cfg = cfg.normalized()
	return &SpeedController{cfg: cfg, current: cfg.Base}
}

// Interval returns the current tick interval.
func (c *SpeedController) Interval() time.Duration {
	return c.current
}

// Config returns the normalized intervals.
func (c *SpeedController) Config() SpeedConfig {
	return c.cfg
}

// Observe recomputes the interval from the rows cleared so far and reports
// whether it changed.
func (c *SpeedController) Observe(rowsCleared int) (time.Duration, bool) {
	want := c.cfg.IntervalFor(rowsCleared)
	if want == c.current {
		return c.current, false
	}
	c.current = want
	return want, true
}

// Reset returns to the base interval.
func (c *SpeedController) Reset() time.Duration {
	c.current = c.cfg.Base
	return c.current
}
