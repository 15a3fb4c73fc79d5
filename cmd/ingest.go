package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tedsearch/tedsearch/internal/service"
)

var ingestDate string
var ingestFile string
var ingestTimeout time.Duration

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a TED daily package",
	Long: `Ingest downloads and processes a Tenders Electronic Daily bulk package.

The command locates the daily package for the given publication date on the
TED FTP server, downloads and extracts it, and runs every contained XML
document through validation. Accepted pharmaceutical supply tenders are
stored as contract notices, award notices and lots.

Examples:
  # Ingest today's daily package
  ./tedsearch ingest

  # Ingest the package for a specific publication date
  ./tedsearch ingest --date 2026-08-28

  # Ingest a specific package by file name
  ./tedsearch ingest --file 20260828_163.tar.gz`,
	Run: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	today := time.Now().Format("2006-01-02")
	ingestCmd.Flags().StringVarP(&ingestDate, "date", "d", today, "Publication date to ingest (YYYY-MM-DD)")
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Package file name to ingest, overrides --date")
	ingestCmd.Flags().DurationVar(&ingestTimeout, "timeout", time.Hour, "Abort the run after this long")
}

func runIngest(cmd *cobra.Command, args []string) {
	cfg, db := openDB()
	defer db.Close()

	importer, err := buildImporter(cfg, db)
	if err != nil {
		log.Fatalf("Failed to build ingestion pipeline: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	stats, runErr := runPackage(ctx, importer)
	if runErr != nil {
		if errors.Is(runErr, context.DeadlineExceeded) {
			log.Printf("Ingestion timed out after %s", ingestTimeout)
		} else if ctx.Err() != nil {
			log.Println("Ingestion cancelled")
		} else {
			log.Printf("Ingestion failed: %v", runErr)
		}
		if stats != nil {
			importer.PrintSummary(stats)
		}
		os.Exit(1)
	}

	importer.PrintSummary(stats)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func runPackage(ctx context.Context, importer *service.Importer) (*service.ImportStats, error) {
	if ingestFile != "" {
		log.Printf("Starting ingestion of package %s", ingestFile)
		return importer.Run(ctx, ingestFile)
	}

	date, err := time.Parse("2006-01-02", ingestDate)
	if err != nil {
		log.Fatalf("Invalid date format: %v", err)
	}
	log.Printf("Starting ingestion for publication date %s", ingestDate)
	return importer.RunForDate(ctx, date)
}
