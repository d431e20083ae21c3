// Package logging builds the structured loggers used by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects where and how much to log.
type Config struct {
	Level  string // debug, info, warn or error; empty means info
	File   string // rotating log file, "~" expands to the home directory
	Quiet  bool   // drop terminal output; used while a full-screen UI runs
	Prefix string
}

// New creates a logger. Output goes to the file when one is set, otherwise
// to stderr unless Quiet. The returned closer releases the file.
func New(cfg Config) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.File != "":
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		out, closer = file, file
	case cfg.Quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
