package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/rostercost/internal/cli"
	"github.com/alexanderramin/rostercost/internal/config"
	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/alexanderramin/rostercost/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening database: %v\n", err)
		return 1
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	staffRepo := repository.NewSQLiteStaffRepo(database)
	shiftTypeRepo := repository.NewSQLiteShiftTypeRepo(database)
	rosterRepo := repository.NewSQLiteRosterRepo(database)
	sharingRepo := repository.NewSQLiteCostSharingRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	engine := costing.NewEngine(
		repository.NewSQLiteCostStore(database),
		costing.WithCyclePolicy(cfg.CyclePolicy()),
		costing.WithWorkers(cfg.Report.Workers),
		costing.WithFallbackWorkCodes(cfg.Cost.FallbackWorkCodes),
	)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Projects:   service.NewProjectService(projectRepo),
		Staff:      service.NewStaffService(staffRepo, projectRepo),
		ShiftTypes: service.NewShiftTypeService(shiftTypeRepo, uow),
		Rosters:    service.NewRosterService(rosterRepo, uow, observer),
		Sharing:    service.NewCostSharingService(sharingRepo, engine, uow, observer),
		Cost:       service.NewCostService(engine, observer),
		Now:        time.Now,
	}

	// Prompts need a terminal on stdin; tables need one on stdout.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	logger.Debug("rostercost starting",
		"db", cfg.DB.Path,
		"cycle_check", cfg.Cost.CycleCheck,
		"workers", cfg.Report.Workers,
	)

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err != nil {
		cli.ReportError(cmd, app, err)
		return 1
	}
	return 0
}
