package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmarchant/vslice/internal/config"
	"github.com/tmarchant/vslice/internal/database"
	"github.com/tmarchant/vslice/internal/database/repository"
	"github.com/tmarchant/vslice/internal/host"
	"github.com/tmarchant/vslice/internal/slicer"
	"github.com/tmarchant/vslice/internal/tui"
)

func main() {
	ctx := context.Background()

	datasetFlag := flag.String("dataset", "", "dataset to slice (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDemo(ctx, db); err != nil {
		log.Fatalf("seed demo data: %v", err)
	}

	datasetName := cfg.Dataset.Name
	if *datasetFlag != "" {
		datasetName = *datasetFlag
	}
	if datasetName == "" {
		datasetName = database.DemoDataset
	}

	dsRepo := repository.NewDatasetRepo(db)
	dataset, err := host.ResolveDataset(ctx, dsRepo, datasetName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	objects := host.NewObjectStore(repository.NewObjectRepo(db))
	seedProps := map[string]string{
		"textSize":              strconv.FormatFloat(cfg.Slicer.TextSize, 'f', -1, 64),
		"defaultSelectionValue": cfg.Slicer.DefaultSelection,
	}
	if err := objects.Seed(ctx, slicer.ObjectGeneral, seedProps); err != nil {
		log.Fatalf("seed properties: %v", err)
	}

	svc := host.NewService(dataset, repository.NewMeasureRepo(db), objects)

	program := tea.NewProgram(tui.New(ctx, svc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
