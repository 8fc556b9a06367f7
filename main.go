//go:build !js
// +build !js

package main

import (
	"flag"
	"os"

	"github.com/seqsense/glrotate/mat"
)

func main() {
	var (
		configFile = flag.String("config", "", "config file (.yaml or .toml)")
		frames     = flag.Int("frames", 1000, "maximum number of frames")
		width      = flag.Int("width", 640, "canvas width")
		height     = flag.Int("height", 480, "canvas height")
		every      = flag.Int("every", 90, "log the triangle every n frames")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configFile != "" {
		b, err := os.ReadFile(*configFile)
		if err != nil {
			logError("%v", err)
			os.Exit(1)
		}
		if cfg, err = loadConfig(*configFile, b); err != nil {
			logError("%v", err)
			os.Exit(1)
		}
	}
	if err := setLogLevel(cfg.LogLevel); err != nil {
		logWarn("log level: %v", err)
	}

	n, err := simulate(cfg, *frames, func(i int, m mat.Mat4) error {
		logDebug("frame %d: model %v", i, m)
		if *every > 0 && i%*every == 0 {
			logInfo("frame %d: triangle %v", i, projectTriangle(m, *width, *height))
		}
		return nil
	})
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	logInfo("rendered %d frames", n)
}
