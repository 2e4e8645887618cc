package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	"github.com/zatekoja/benchmap/pkg/config"
	"github.com/zatekoja/benchmap/pkg/secrets"
)

func main() {
	list := flag.Bool("list", false, "print the embedded migrations and exit")
	flag.Parse()

	if *list {
		migrations, err := postgres.Migrations()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, m := range migrations {
			fmt.Println(m.Version)
		}
		return
	}

	vaultResult, err := secrets.Apply(context.Background(), secrets.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load secrets from Vault: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("benchmap-migrate", cfg.App.Env, cfg.App.LogLevel)
	if len(vaultResult.Loaded) > 0 {
		log.Info().Strs("keys", vaultResult.Loaded).Int("skipped", len(vaultResult.Skipped)).Msg("Loaded secrets from Vault")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer client.Close()

	applied, err := client.Migrate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	if len(applied) == 0 {
		log.Info().Msg("Schema is up to date")
		return
	}
	log.Info().Strs("versions", applied).Msg("Migrations applied")
}
