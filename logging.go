package main

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

func getLogger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "glrotate",
		})
	})
	return logger
}

func setLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func setLogLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	getLogger().SetLevel(l)
	return nil
}

func logDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func logInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func logWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func logError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}
