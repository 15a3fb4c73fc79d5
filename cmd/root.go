package cmd

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/tedsearch/tedsearch/internal/config"
	"github.com/tedsearch/tedsearch/internal/service"
	"github.com/tedsearch/tedsearch/internal/store"
	"github.com/tedsearch/tedsearch/internal/ted"
)

var rootCmd = &cobra.Command{
	Use:   "tedsearch",
	Short: "TED pharmaceutical tender ingestion service",
	Long: `tedsearch ingests Tenders Electronic Daily export packages, filters
pharmaceutical supply tenders, and serves the resulting contract notices,
award notices and lots over a JSON API.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB loads configuration and connects to Postgres. Fatal on failure;
// every subcommand needs both.
func openDB() (*config.Config, *sqlx.DB) {
	cfg := config.Load()
	db, err := store.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return cfg, db
}

// buildImporter wires the full ingestion pipeline over a database handle.
func buildImporter(cfg *config.Config, db *sqlx.DB) (*service.Importer, error) {
	refs := store.NewReferenceStore(db)
	notices := store.NewNoticeStore(db)
	awards := store.NewAwardStore(db)
	lots := store.NewLotStore(db)
	statuses := store.NewStatusStore(db)

	validator := ted.NewValidator(ted.Rules{
		SupportedSchemas:         cfg.TED.SupportedSchemas,
		TargetCPVCode:            cfg.TED.TargetCPVCode,
		TargetContractNatureCode: cfg.TED.TargetContractNatureCode,
	}, notices, awards)

	builder, err := service.NewBuilder(cfg, refs, notices, awards, lots)
	if err != nil {
		return nil, err
	}

	return service.NewImporter(cfg, service.NewTEDClient(cfg), validator, builder, statuses), nil
}
