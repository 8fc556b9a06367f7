package main

import (
	"errors"
	"testing"
)

func TestConsole(t *testing.T) {
	testCases := map[string]struct {
		lines    []string
		expected string
		err      error
	}{
		"Empty": {
			lines:    []string{""},
			expected: "",
		},
		"Angles": {
			lines:    []string{"angles"},
			expected: "0.000 0.000 0.000",
		},
		"SetAngles": {
			lines:    []string{"angles 90 -45 180"},
			expected: "90.000 -45.000 180.000",
		},
		"Step": {
			lines:    []string{"step 2.5", "step"},
			expected: "2.500",
		},
		"Animate": {
			lines:    []string{"animate"},
			expected: "1.000",
		},
		"AnimateTwice": {
			lines:    []string{"animate", "animate"},
			expected: "0.000",
		},
		"Reset": {
			lines:    []string{"angles 10 20 30", "reset", "angles"},
			expected: "0.000 0.000 0.000",
		},
		"Model": {
			lines: []string{"model"},
			expected: "1.000 0.000 0.000 0.000\n" +
				"0.000 1.000 0.000 0.000\n" +
				"0.000 0.000 1.000 0.000\n" +
				"0.000 0.000 0.000 1.000",
		},
		"ModelRotated": {
			lines: []string{"angles 0 0 90", "model"},
			expected: "0.000 -1.000 0.000 0.000\n" +
				"1.000 0.000 0.000 0.000\n" +
				"0.000 0.000 1.000 0.000\n" +
				"0.000 0.000 0.000 1.000",
		},
		"InvalidCommand": {
			lines: []string{"rotate 1"},
			err:   errInvalidCommand,
		},
		"InvalidArgumentNumber": {
			lines: []string{"angles 1 2"},
			err:   errArgumentNumber,
		},
		"InvalidArgumentNumberReset": {
			lines: []string{"reset 1"},
			err:   errArgumentNumber,
		},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			c := &console{rot: newRotation(1)}
			var res string
			var err error
			for _, l := range tt.lines {
				res, err = c.Run(l)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if res != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, res)
			}
		})
	}
}

func TestConsole_InvalidStep(t *testing.T) {
	c := &console{rot: newRotation(1)}
	if _, err := c.Run("step -1"); err == nil {
		t.Error("Negative step must be rejected")
	}
	if _, err := c.Run("step x"); err == nil {
		t.Error("Non-numeric argument must be rejected")
	}
	if res, _ := c.Run("step"); res != "1.000" {
		t.Errorf("Step must be unchanged, expected 1.000, got %s", res)
	}
}

func TestFormatFloat(t *testing.T) {
	testCases := map[float32]string{
		0:          "0.000",
		-4.37e-8:   "0.000",
		-0.0004:    "0.000",
		-0.0006:    "-0.001",
		1.5:        "1.500",
		-123.45678: "-123.457",
	}
	for in, expected := range testCases {
		if s := formatFloat(in); s != expected {
			t.Errorf("formatFloat(%g): expected %s, got %s", in, expected, s)
		}
	}
}
