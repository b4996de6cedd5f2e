package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/paceline/internal/history"
	"github.com/claude/paceline/internal/ingest"
	"github.com/claude/paceline/internal/ingest/csvfeed"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// demoPackages is the built-in sample used when no export file is given.
var demoPackages = []models.SensorPackage{
	{Type: training.CodeRunning, Data: []float64{15000, 1, 75}},
	{Type: training.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	{Type: training.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
}

func main() {
	filePath := flag.String("file", "", "path to a packages export (.json or .csv); omit to use the built-in demo set")
	historyDir := flag.String("history-dir", "", "history database directory (default ~/.paceline)")
	noHistory := flag.Bool("no-history", false, "do not record computed sessions in the history database")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("paceline-report", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	packages, err := loadPackages(*filePath)
	if err != nil {
		log.Error("failed to load packages", "error", err)
		os.Exit(1)
	}

	var hist *history.Log
	if !*noHistory {
		dir := *historyDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Error("failed to get home directory", "error", err)
				os.Exit(1)
			}
			dir = filepath.Join(home, ".paceline")
		}
		hist, err = history.Open(dir)
		if err != nil {
			log.Error("failed to open history database", "error", err)
			os.Exit(1)
		}
		defer hist.Close()
	}

	computed, rejected := 0, 0
	for _, pkg := range packages {
		session, err := training.ReadPackage(pkg.Type, pkg.Data)
		if err != nil {
			log.Warn("rejecting package", "type", pkg.Type, "error", err)
			rejected++
			continue
		}

		summary := training.Summary(session)
		fmt.Println(summary)
		computed++

		if hist != nil {
			hash := ingest.HashPackage(pkg)
			seen, err := hist.Seen(hash)
			if err != nil {
				log.Warn("history lookup failed", "error", err)
				continue
			}
			if seen {
				continue
			}
			if err := hist.Record(hash, session.Type(), summary, session.Calories()); err != nil {
				log.Warn("history record failed", "error", err)
			}
		}
	}

	log.Info("report complete", "computed", computed, "rejected", rejected)
	if computed == 0 && rejected > 0 {
		os.Exit(1)
	}
}

// loadPackages reads an export file, choosing the parser by extension,
// or returns the built-in demo set when no file is given.
func loadPackages(path string) ([]models.SensorPackage, error) {
	if path == "" {
		return demoPackages, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var payload models.SensorPayload
		if err := json.NewDecoder(f).Decode(&payload); err != nil {
			return nil, fmt.Errorf("parsing JSON export: %w", err)
		}
		return payload.Packages, nil
	case ".csv", ".txt":
		return csvfeed.Parse(f)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want .json or .csv)", filepath.Ext(path))
	}
}
