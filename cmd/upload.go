package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.xml>",
	Short: "Ingest a single TED XML document",
	Long: `Upload runs one local TED export document through validation and, when
accepted, stores it. Violations are printed one per line.`,
	Args: cobra.ExactArgs(1),
	Run:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) {
	cfg, db := openDB()
	defer db.Close()

	importer, err := buildImporter(cfg, db)
	if err != nil {
		log.Fatalf("Failed to build ingestion pipeline: %v", err)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	accepted, violations, err := importer.IngestFile(context.Background(), filepath.Base(path), f)
	if err != nil {
		log.Fatalf("Failed to process %s: %v", path, err)
	}

	if !accepted {
		log.Printf("Rejected %s:", path)
		for _, v := range violations {
			log.Printf("  %s", v)
		}
		os.Exit(1)
	}
	log.Printf("Ingested %s", path)
}
