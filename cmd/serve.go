package cmd

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
	"github.com/tedsearch/tedsearch/internal/handlers"
	"github.com/tedsearch/tedsearch/internal/store"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tender search API server",
	Long:  `Start the JSON API server for browsing ingested tenders and uploading documents.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Use PORT env var if set, otherwise use flag value
		if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
			port = envPort
		}

		cfg, db := openDB()
		defer db.Close()

		referenceStore := store.NewReferenceStore(db)
		noticeStore := store.NewNoticeStore(db)
		awardStore := store.NewAwardStore(db)
		lotStore := store.NewLotStore(db)
		statusStore := store.NewStatusStore(db)

		importer, err := buildImporter(cfg, db)
		if err != nil {
			log.Fatalf("Failed to build ingestion pipeline: %v", err)
		}

		app := fiber.New(fiber.Config{
			AppName: "TED Search",
		})

		app.Use(logger.New())

		// Routes
		app.Get("/notices", handlers.NoticesHandler(noticeStore))
		app.Get("/notices/:id/lots", handlers.NoticeLotsHandler(lotStore))
		app.Patch("/notices/:id/docs", handlers.NoticeDocsHandler(noticeStore))
		app.Get("/awards", handlers.AwardsHandler(awardStore))
		app.Get("/countries", handlers.CountriesHandler(referenceStore))
		app.Get("/statuses", handlers.StatusesHandler(statusStore))
		app.Post("/upload", handlers.UploadHandler(importer))
		app.Patch("/lots/:id/units", handlers.LotUnitsHandler(lotStore))

		log.Printf("Starting server on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
