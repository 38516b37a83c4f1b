package frontend

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GeReV/yagbe/yagbe"
)

// Headless runs a fixed number of frames without any display, with
// optional text-art snapshots for later inspection. Conformance ROM
// runs and benchmarks use this shell.
type Headless struct {
	Frames        int
	SnapshotEvery int    // 0 disables snapshots
	SnapshotDir   string // required when SnapshotEvery > 0
}

func (h *Headless) Run(m *yagbe.Machine) error {
	for i := 1; i <= h.Frames; i++ {
		if err := m.RunFrame(); err != nil {
			return err
		}

		if h.SnapshotEvery > 0 && i%h.SnapshotEvery == 0 {
			if err := h.snapshot(m, i); err != nil {
				return err
			}
		}
	}

	slog.Info("headless run complete",
		"frames", h.Frames,
		"cycles", m.CPU().Cycles(),
	)
	return nil
}

func (h *Headless) snapshot(m *yagbe.Machine, frame int) error {
	path := filepath.Join(h.SnapshotDir, fmt.Sprintf("frame-%05d.txt", frame))
	if err := os.WriteFile(path, []byte(m.Frame().Text()), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	slog.Debug("snapshot written", "path", path, "frame", frame)
	return nil
}
