package main

import (
	"context"
	"fmt"

	"hermesoftware/byklab-api/internal/config"
	"hermesoftware/byklab-api/internal/logging"
	"hermesoftware/byklab-api/internal/repository/mongo"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd runs the API server when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "byklab-api",
	Short: "BYK LAB fitness platform backend",
	Long: `BYK LAB fitness platform backend. Usage:

	byklab-api          start the HTTP API (same as "serve")
	byklab-api seed     replace the exercise and blog catalogs with the starter set
`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding config.yaml and .env")
}

// bootstrap loads configuration, builds the logger and opens the store.
func bootstrap(ctx context.Context) (config.Config, *logrus.Logger, *mongo.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logging.New(cfg.Log)

	store, err := mongo.Open(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		return cfg, log, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	log.WithField("database", cfg.Database.Name).Info("database connection established")

	return cfg, log, store, nil
}

func closeStore(store *mongo.Store, log logrus.FieldLogger) {
	log.Info("disconnecting MongoDB")
	if err := store.Close(context.Background()); err != nil {
		log.WithError(err).Error("failed to disconnect MongoDB")
	}
}
