package main

import (
	"testing"
	"time"
)

func TestClickGuard(t *testing.T) {
	cg := &clickGuard{}

	if !cg.Click() {
		t.Error("First click event must be treated as click")
	}

	cg.Press(10, 10)
	cg.Release()
	if !cg.Click() {
		t.Error("Click right after release without move must be treated as click")
	}

	cg.Press(10, 10)
	cg.Move(12, 8)
	cg.Release()
	if !cg.Click() {
		t.Error("Move within threshold must be treated as click")
	}

	cg.Move(100, 100)
	if !cg.Click() {
		t.Error("Move without pressed button must not cancel click")
	}

	cg.Press(10, 10)
	cg.Move(10, 10+clickMoveThreshold+1)
	if cg.Click() {
		t.Error("Click during drag must not be treated as click")
	}
	cg.Release()
	if cg.Click() {
		t.Error("Click right after dragging must not be treated as click")
	}

	time.Sleep(clickGuardDuration + time.Millisecond)
	if !cg.Click() {
		t.Error("Click after guard duration must be treated as click")
	}
}
