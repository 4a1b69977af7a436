package main

import (
	"hermesoftware/byklab-api/internal/repository/mongo"
	"hermesoftware/byklab-api/internal/service"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the exercise and blog catalogs with the starter set",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		_, log, store, err := bootstrap(ctx)
		if err != nil {
			if log != nil {
				log.WithError(err).Error("startup failed")
			}
			return err
		}
		defer closeStore(store, log)

		seeder := service.NewSeedService(
			mongo.NewMongoExerciseRepository(store.Database()),
			mongo.NewMongoBlogPostRepository(store.Database()),
			log,
		)
		result, err := seeder.Seed(ctx)
		if err != nil {
			log.WithError(err).Error("seed failed")
			return err
		}
		cmd.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
