package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonearm/tonearm/adminservice"
	"github.com/tonearm/tonearm/internal/config"
	"github.com/tonearm/tonearm/internal/factory"
	"github.com/tonearm/tonearm/internal/logger"
	"github.com/tonearm/tonearm/internal/store/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tonearm-admin",
		Short: "Headless admin backend for the tonearm music platform",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return adminservice.Run()
		},
	}
	rootCmd.AddCommand(serveCmd)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			// The memory driver has nothing to persist across runs.
			if cfg.StoreDriver == config.DriverMemory {
				return fmt.Errorf("seed requires a persistent store driver, got %s", cfg.StoreDriver)
			}
			log := logger.New("tonearm-admin", cfg.LogLevel)
			cfg.SeedDemoData = false
			st, err := factory.NewStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if err := seed.Apply(cmd.Context(), st); err != nil {
				return err
			}
			log.Info().Str("store_driver", cfg.StoreDriver).Msg("demo catalog seeded")
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
