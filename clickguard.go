package main

import (
	"time"
)

const (
	clickGuardDuration = 100 * time.Millisecond
	clickMoveThreshold = 4
)

// clickGuard tells clicks that toggle the animation from the end of a drag.
type clickGuard struct {
	deadline time.Time
	x0, y0   int
	pressed  bool
	moved    bool
}

func (c *clickGuard) Press(x, y int) {
	c.pressed = true
	c.moved = false
	c.x0, c.y0 = x, y
}

func (c *clickGuard) Move(x, y int) {
	if !c.pressed {
		return
	}
	if abs(x-c.x0) > clickMoveThreshold || abs(y-c.y0) > clickMoveThreshold {
		c.moved = true
	}
}

func (c *clickGuard) Release() {
	c.pressed = false
	c.deadline = time.Now().Add(clickGuardDuration)
}

func (c *clickGuard) Click() bool {
	return c.deadline.IsZero() || !c.moved || c.deadline.Before(time.Now())
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
