package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/services/hetero"
	"dwbuilder/internal/services/wall"
	"dwbuilder/internal/vasp"
)

// Wire bundles the reader, writer, services and run logger for the CLI.
type Wire struct {
	Reader domain.StructureReader
	Writer domain.StructureWriter
	Walls  domain.WallBuilder
	Hetero domain.HeteroBuilder
	Log    zerolog.Logger

	logFile *os.File
}

// NewWire constructs the dependency graph from cfg. The run log file is
// created inside cfg.OutDir; Close flushes and releases it.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.LogName == "" {
		cfg.LogName = "LOGFILE.txt"
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, err
	}
	logFile, err := os.Create(filepath.Join(cfg.OutDir, cfg.LogName))
	if err != nil {
		return nil, fmt.Errorf("create run log: %w", err)
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: logFile, NoColor: true}}
	if !cfg.Quiet {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	return &Wire{
		Reader:  vasp.NewReader(),
		Writer:  vasp.NewWriter(),
		Walls:   wall.New(log),
		Hetero:  hetero.New(log),
		Log:     log,
		logFile: logFile,
	}, nil
}

// Close releases the run log file.
func (w *Wire) Close() error {
	if w.logFile == nil {
		return nil
	}
	return w.logFile.Close()
}

// UniqueDir returns dir if it does not exist yet, otherwise dir_1, dir_2,
// and so on. Existing outputs are never overwritten.
func UniqueDir(dir string) string {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return dir
	}
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s_%d", dir, i)
		if _, err := os.Stat(cand); os.IsNotExist(err) {
			return cand
		}
	}
}
