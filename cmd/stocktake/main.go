package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/stocktake/internal/cli"
	"github.com/JonMunkholm/stocktake/internal/config"
	"github.com/JonMunkholm/stocktake/internal/logging"
	"github.com/JonMunkholm/stocktake/internal/store"
)

var filePath string

var rootCmd = &cobra.Command{
	Use:   "stocktake",
	Short: "Interactive inventory tracker for a small retail shop",
	Long: `stocktake tracks stock levels, prices and waste for a small retail
inventory persisted in a flat CSV file.

Run without arguments to start the interactive menu: view stock, record
daily counts, place replenishment orders with GST, and log wasted units.
All changes stay in memory until Save and Exit writes them back to the
inventory file.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the inventory file and report low stock without entering the menu",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "",
		"path to the inventory CSV (overrides STOCKTAKE_FILE)")
	rootCmd.AddCommand(checkCmd)
}

// setup loads .env, configuration and logging, in that order. The --file
// flag wins over the environment.
func setup() (*config.Config, error) {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if filePath != "" {
		cfg.Store.File = filePath
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	table, report, err := store.Load(cfg.Store.File)
	if err != nil {
		return err
	}
	printLoadReport(cmd.OutOrStdout(), cfg.Store.File, report)

	log := logging.WithSession(uuid.NewString())
	log.Info("session started", "file", cfg.Store.File, "items", table.Len())

	ctrl := cli.New(table, cfg.Store.File, decimal.NewFromFloat(cfg.Tax.GSTRate),
		log, cmd.InOrStdin(), cmd.OutOrStdout())
	return ctrl.Run()
}

// runCheck loads the file, prints the load report and the low-stock scan,
// and fails when any row had to be skipped. Useful before a shift without
// touching anything.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	table, report, err := store.Load(cfg.Store.File)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printLoadReport(out, cfg.Store.File, report)
	fmt.Fprintf(out, "%d items loaded from %s\n", report.Loaded, cfg.Store.File)

	low := table.LowStock()
	if len(low) == 0 {
		fmt.Fprintln(out, "All products are sufficiently stocked.")
	}
	for _, it := range low {
		fmt.Fprintf(out, "- %s: Only %d boxes left (Critical: %d)\n",
			it.DisplayName(), it.Quantity, it.CriticalLevel)
	}

	if len(report.Skipped) > 0 {
		return fmt.Errorf("%d malformed rows were skipped", len(report.Skipped))
	}
	return nil
}

// printLoadReport surfaces load problems to the operator before the menu
// appears, so a truncated or hand-edited file is noticed immediately.
func printLoadReport(out io.Writer, path string, report *store.LoadReport) {
	if report.FileMissing {
		fmt.Fprintf(out, "%s not found.\n", path)
		return
	}
	for _, rowErr := range report.Skipped {
		fmt.Fprintf(out, "Skipped row: %v\n", rowErr)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
