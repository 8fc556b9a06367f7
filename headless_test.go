package main

import (
	"errors"
	"testing"

	"github.com/seqsense/glrotate/mat"
)

func TestSimulate(t *testing.T) {
	cfg := defaultConfig()
	cfg.AnimationStep = 90

	var last mat.Mat4
	n, err := simulate(cfg, 1000, func(i int, m mat.Mat4) error {
		last = m
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// 4 quarter turns, plus the frame that finds nothing to advance.
	if n != 5 {
		t.Errorf("Expected 5 frames, got %d", n)
	}
	// A full turn on every axis is back to the identity.
	id := mat.Identity()
	for i := range last {
		if d := last[i] - id[i]; d > 1e-4 || d < -1e-4 {
			t.Errorf("Expected identity after a full turn, got %v", last)
			break
		}
	}
}

func TestSimulate_MaxFrames(t *testing.T) {
	n, err := simulate(defaultConfig(), 10, func(int, mat.Mat4) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("Expected 10 frames, got %d", n)
	}
}

func TestSimulate_Error(t *testing.T) {
	errStop := errors.New("stop")
	n, err := simulate(defaultConfig(), 10, func(i int, m mat.Mat4) error {
		if i == 3 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Errorf("Expected %v, got %v", errStop, err)
	}
	if n != 3 {
		t.Errorf("Expected 3 frames, got %d", n)
	}
}

func TestProjectTriangle(t *testing.T) {
	out := projectTriangle(mat.Identity(), 640, 320)
	expected := []mat.Vec3{
		{-0.5, -1, 0},
		{0, 1, 0},
		{0.5, -1, 0},
	}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("[%d] Expected %v, got %v", i, expected[i], out[i])
		}
	}
}
