package main

import (
	"context"
	"fmt"
	"os"

	"github.com/epicevents/crm-system/internal/cli"
	"github.com/epicevents/crm-system/internal/core/service"
	"github.com/epicevents/crm-system/internal/infrastructure/config"
	"github.com/epicevents/crm-system/internal/infrastructure/db/postgres"
	"github.com/epicevents/crm-system/internal/infrastructure/token"
	"github.com/epicevents/crm-system/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFatal
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokenPath := cfg.TokenFile
	if tokenPath == "" {
		tokenPath, err = token.DefaultPath()
		if err != nil {
			log.Error().Err(err).Msg("cannot resolve token path")
			cli.Render(os.Stderr, err)
			return cli.ExitFatal
		}
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		cli.Render(os.Stderr, err)
		return cli.ExitFatal
	}
	defer postgres.Close(db)

	if err := postgres.Migrate(db); err != nil {
		log.Error().Err(err).Msg("schema migration failed")
		cli.Render(os.Stderr, err)
		return cli.ExitFatal
	}

	users := postgres.NewUserRepository(db)
	clients := postgres.NewClientRepository(db)
	contracts := postgres.NewContractRepository(db)
	events := postgres.NewEventRepository(db)

	hasher := service.NewPasswordHasher()
	codec := service.NewTokenCodec(cfg.SecretKey, cfg.TokenTTL)
	store := token.NewStore(tokenPath)
	auth := service.NewAuthService(users, codec, store, hasher, log)

	app := &cli.App{
		Guard:     cli.NewGuard(auth),
		Auth:      auth,
		Users:     service.NewUserService(users, hasher, log),
		Clients:   service.NewClientService(clients, users, log),
		Contracts: service.NewContractService(contracts, clients, log),
		Events:    service.NewEventService(events, contracts, users, log),
	}

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		cli.Render(os.Stderr, err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
