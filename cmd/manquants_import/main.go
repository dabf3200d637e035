package main

import (
	"log/slog"
	"os"

	"github.com/fuelsquad/manquants_app/internal/core/services"
	"github.com/fuelsquad/manquants_app/internal/importer"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
	"github.com/fuelsquad/manquants_app/internal/repositories/database/pgsql"
	"github.com/fuelsquad/manquants_app/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "manquants_import <workbook.xlsx>",
		Short: "Import reference tables (sites, carriers, drivers, ...) from an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			for _, sheet := range result.Missing {
				logger.Warn("Sheet not found in workbook", slog.String("sheet", sheet))
			}
			data := result.Data
			logger.Info("Workbook parsed",
				slog.Int("commercials", len(data.Commercials)),
				slog.Int("carriers", len(data.Carriers)),
				slog.Int("depots", len(data.Depots)),
				slog.Int("sites", len(data.Sites)),
				slog.Int("drivers", len(data.Drivers)),
				slog.Int("products", len(data.Products)),
				slog.Int("tractors", len(data.Tractors)),
				slog.Int("tanks", len(data.Tanks)))
			if dryRun {
				return nil
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			products, err := config.LoadProducts(cfg.ProductsFile)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			defer dbPool.Close()

			repos := pgsql.NewRepositoryProvider(dbPool, nil)
			summary, err := services.NewReferenceService(repos.ReferenceRepo, products).ImportReferenceData(ctx, data)
			if err != nil {
				logger.Error("Import failed", slog.String("error", err.Error()))
				return err
			}
			logger.Info("Reference data imported",
				slog.Int("sites", summary.Sites),
				slog.Int("carriers", summary.Carriers),
				slog.Int("drivers", summary.Drivers),
				slog.Int("tractors", summary.Tractors),
				slog.Int("tanks", summary.Tanks))
			return nil
		},
	}
	cmd.SilenceUsage = true
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the workbook without writing to the database")
	cmd.Flags().String("database-url", "", "PostgreSQL URL (overrides PGSQL_URL)")
	cmd.Flags().String("products-file", "", "product catalog YAML (overrides PRODUCTS_FILE)")
	_ = viper.BindPFlag("PGSQL_URL", cmd.Flags().Lookup("database-url"))
	_ = viper.BindPFlag("PRODUCTS_FILE", cmd.Flags().Lookup("products-file"))
	return cmd
}
