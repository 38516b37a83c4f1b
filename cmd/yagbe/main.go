package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/GeReV/yagbe/yagbe"
	"github.com/GeReV/yagbe/yagbe/frontend"
)

func main() {
	app := cli.NewApp()
	app.Name = "yagbe"
	app.Description = "Yet another Game Boy emulator"
	app.Usage = "yagbe [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "frontend",
			Usage: "Display shell to use: terminal or sdl",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the sdl frontend",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display for a fixed number of frames",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save a text snapshot every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory for frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "no-save",
			Usage: "Skip loading and writing battery save files",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("emulator exited with error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	m, err := yagbe.New(rom)
	if err != nil {
		return err
	}

	savePath := strings.TrimSuffix(romPath, ".gb") + ".sav"
	if !c.Bool("no-save") {
		loadSave(m, savePath)
	}

	shell, err := pickFrontend(c)
	if err != nil {
		return err
	}

	runErr := shell.Run(m)

	if !c.Bool("no-save") {
		writeSave(m, savePath)
	}
	return runErr
}

func pickFrontend(c *cli.Context) (frontend.Frontend, error) {
	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames with a positive value")
		}

		snapshotDir := c.String("snapshot-dir")
		if c.Int("snapshot-interval") > 0 && snapshotDir == "" {
			dir, err := os.MkdirTemp("", "yagbe-snapshots-*")
			if err != nil {
				return nil, fmt.Errorf("creating snapshot directory: %w", err)
			}
			snapshotDir = dir
			slog.Info("snapshots directory", "path", dir)
		}

		return &frontend.Headless{
			Frames:        frames,
			SnapshotEvery: c.Int("snapshot-interval"),
			SnapshotDir:   snapshotDir,
		}, nil
	}

	switch c.String("frontend") {
	case "terminal":
		return &frontend.Terminal{}, nil
	case "sdl":
		return &frontend.SDL{Scale: c.Int("scale")}, nil
	}
	return nil, fmt.Errorf("unknown frontend %q", c.String("frontend"))
}

func loadSave(m *yagbe.Machine, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	m.RestoreRAM(data)
	slog.Info("battery save loaded", "path", path)
}

func writeSave(m *yagbe.Machine, path string) {
	data := m.DumpRAM()
	if len(data) == 0 {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Warn("could not write battery save", "path", path, "error", err)
		return
	}
	slog.Info("battery save written", "path", path)
}
