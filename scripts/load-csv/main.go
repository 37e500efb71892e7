package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"retail-insights/config"
	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/internal/ingest"
	"retail-insights/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		csvPath   string
		dbPath    string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "load-csv",
		Short: "Load the retail transactions CSV into SQLite",
		Long: `Drops and recreates the transactions table, then inserts every row of the CSV.
Defaults for --csv and --db come from config.yaml, RETAIL_CSV_PATH and RETAIL_DB_PATH.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if csvPath == "" {
				csvPath = cfg.Database.CSVPath
			}
			if dbPath == "" {
				dbPath = cfg.Database.Path
			}

			logger := log.Init(log.ZapConfig{
				Level:        cfg.Logger.Level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, logger, csvPath, dbPath, batchSize)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the transactions CSV")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database to create")
	cmd.Flags().IntVar(&batchSize, "batch-size", ingest.DefaultBatchSize, "rows per insert transaction")

	return cmd
}

func run(ctx context.Context, logger log.Logger, csvPath, dbPath string, batchSize int) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("csv file not found at %s: %w", csvPath, err)
	}
	defer f.Close()

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Infof(ctx, "Using CSV: %s", csvPath)
	logger.Infof(ctx, "Creating SQLite DB at: %s", dbPath)

	loader := ingest.New(sqlite.New(db, logger), logger).WithBatchSize(batchSize)
	n, err := loader.Load(ctx, f)
	if err != nil {
		logger.Errorf(ctx, "Load failed after %d rows: %v", n, err)
		return err
	}

	fmt.Printf("Loaded %d transactions into %s\n", n, dbPath)
	return nil
}
