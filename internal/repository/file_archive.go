package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	applogger "DartWatch/pkg/logger"
	"DartWatch/pkg/util"
)

// FileArchive writes each run's events to a timestamped JSON file in the
// output directory. A run with no events produces no file.
type FileArchive struct {
	dir string
	l   *applogger.Logger
	now func() time.Time
}

// NewFileArchive creates the output directory if needed.
func NewFileArchive(dir string, l *applogger.Logger) (drepo.EventArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileArchive{dir: dir, l: l, now: time.Now}, nil
}

func (a *FileArchive) Save(_ context.Context, events []models.MonitoringEvent) error {
	if len(events) == 0 {
		return nil
	}

	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}

	// Stamped with the save time, not the detection time, so every run
	// writes its own file.
	ts := a.now().In(util.Seoul()).Format("20060102_150405")
	path := filepath.Join(a.dir, fmt.Sprintf("executive_purchases_%s.json", ts))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write events: %w", err)
	}

	if a.l != nil {
		a.l.Info("events archived", applogger.String("path", path), applogger.Int("events", len(events)))
	}
	return nil
}

func (a *FileArchive) Close() error { return nil }
