package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"tally/internal/chart"
	appcli "tally/internal/cli"
	"tally/internal/services"
	"tally/internal/shell"
)

func run(ctx context.Context, cmd *cli.Command) error {
	logger := appcli.SetupLogger(slog.LevelInfo)
	cfg := appcli.LoadAndValidateConfig(logger)
	if lvl, err := cfg.SlogLevel(); err == nil {
		logger = appcli.SetupLogger(lvl)
	}

	if dbPath := cmd.String("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	repo := appcli.InitStore(logger, cfg.DBPath)
	defer repo.Close()

	svc := services.NewLedgerService(repo, chart.NewRenderer())
	sh := shell.New(svc, os.Stdin, os.Stdout, shell.Paths{
		Export:   cfg.ExportPath,
		PieChart: cfg.PieChartPath,
		Trend:    cfg.TrendChartPath,
	})

	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "tally",
		Usage:  "Personal expense ledger with filtered search, analytics charts, and CSV export",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the SQLite ledger file",
				Sources: cli.EnvVars("TALLY_DB_PATH"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
