package main

import (
	"fmt"
	"os"

	"github.com/nurpe/fleetguardian/internal/cli"
	"github.com/nurpe/fleetguardian/internal/config"
	"github.com/nurpe/fleetguardian/internal/excel"
	"github.com/nurpe/fleetguardian/internal/fleet"
	"github.com/nurpe/fleetguardian/internal/logger"
	"github.com/nurpe/fleetguardian/internal/pdf"
	"github.com/nurpe/fleetguardian/internal/report"
	"github.com/nurpe/fleetguardian/internal/service"
	"github.com/nurpe/fleetguardian/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	store := fleet.NewStore()
	files := storage.NewFileStore(cfg.Files.Data, log)
	svc := service.NewFleetService(
		store,
		files,
		report.NewCSVRenderer(),
		excel.NewGenerator(),
		pdf.NewGenerator(),
		log,
	)

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, cfg)
	menu.Run()
}
