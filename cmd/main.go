package main

import (
	"context"
	"fmt"
	"os"

	"health-tracker/cmd/bootstrap"
	"health-tracker/config"
	"health-tracker/internal/infrastructure/database"
	"health-tracker/internal/repository"
	"health-tracker/internal/service"
	"health-tracker/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "health-tracker",
		Short:         "Personal health tracking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	load := func() (*config.Config, *logrus.Logger, error) {
		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, bootstrap.NewLogger(cfg.App.LogLevel), nil
	}

	root.AddCommand(newServeCmd(load), newMigrateCmd(load), newSeedCmd(load))
	return root
}

type loader func() (*config.Config, *logrus.Logger, error)

func newServeCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			app.Run()
			return nil
		},
	}
}

func newMigrateCmd(load loader) *cobra.Command {
	var steps int

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	migrateCmd.PersistentFlags().IntVar(&steps, "steps", 0, "number of migrations, 0 means all")

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, log, err := load()
				if err != nil {
					return err
				}
				return database.MigrateUp(cfg.DB, steps, log)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, log, err := load()
				if err != nil {
					return err
				}
				return database.MigrateDown(cfg.DB, steps, log)
			},
		},
	)
	return migrateCmd
}

// newSeedCmd installs the default exercise catalog
func newSeedCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default exercise types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			db, err := database.NewPostgresConnection(cfg.DB, log)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()

			auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
			exerciseUsecase := usecase.NewExerciseUsecase(db, log, repository.NewExerciseTypeRepository(), repository.NewExerciseRecordRepository(), auditService)

			result, err := exerciseUsecase.SeedTypes(context.Background())
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"created": result.Created, "total": result.Total}).Info("Seed complete")
			return nil
		},
	}
}
