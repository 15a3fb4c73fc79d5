package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tedsearch/tedsearch/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply all pending schema migrations, including the reference data seed.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, db := openDB()
		defer db.Close()

		if err := store.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
