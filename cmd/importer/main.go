package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"address-catalog/internal/config"
	"address-catalog/internal/logging"
	"address-catalog/internal/repository"
	"address-catalog/internal/service"
	"address-catalog/internal/viacep"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "importer",
		Short:         "Bulk import addresses from a CSV file into the address catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				log.Error().Err(err).Msg("cannot load config")
				return err
			}
			if err := logging.Setup(cfg.LogLevel); err != nil {
				log.Error().Err(err).Msg("cannot parse log level")
				return err
			}

			if err := run(cmd.Context(), cfg, file); err != nil {
				log.Error().Err(err).Msg("import failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the CSV file to import")
	cmd.Flags().StringVarP(&configPath, "config", "c", "./configs", "Directory containing app.env")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(ctx context.Context, cfg config.Config, file string) error {
	log.Info().Str("file", file).Msg("starting import")

	records, err := parseCSV(file)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Msg("parsed records")

	slot, closeSlot, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSlot()

	store := service.NewAddressStore(slot, cfg.StorageKey)
	store.Load(ctx)

	lookup := viacep.NewClient(cfg.ViaCEPBaseURL, cfg.LookupTimeout,
		viacep.WithCache(cfg.LookupCacheSize, cfg.LookupCacheTTL))
	defer lookup.Close()

	summary := importRecords(ctx, service.NewCatalog(lookup, store), records)

	if err := store.Save(ctx); err != nil {
		return err
	}

	log.Info().
		Int("imported", summary.Imported).
		Int("failed", summary.Failed).
		Int("total", store.Len()).
		Msg("import finished")
	return nil
}
