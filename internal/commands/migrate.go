package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fincontrol/backend/internal/config"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotenv(); err != nil {
				return err
			}
			setupLogging(os.Getenv("LOG_FORMAT"))

			if dbPath == "" {
				dbPath = config.Load().DBPath
			}

			return runMigrate(dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (default: DB_PATH)")

	return cmd
}

func runMigrate(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Connect migrates the schema
	db, err := models.Connect(dbPath)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	log.Info().Str("path", dbPath).Msg("Database migrated")
	return nil
}
