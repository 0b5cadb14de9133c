package app

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/readshelf/internal/config"
	"github.com/blackwell-systems/readshelf/internal/util"
)

// setupLogger builds the package logger. The interactive view owns the
// terminal, so in that mode log lines go to a file instead of stderr.
func setupLogger(lc config.LogConfig, interactive bool) error {
	log = logrus.New()
	log.SetOutput(errOut)

	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "15:04:05.999"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if !interactive && level > logrus.WarnLevel {
		// keep CLI output readable; -v turns it back on
		level = logrus.WarnLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if !interactive && lc.File == "" {
		return nil
	}

	path := lc.File
	if path == "" {
		path = filepath.Join(config.StateDir(), "readshelf.log")
	}
	f, err := util.OpenAppend(path)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return nil
}
