package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/journey/internal/blob"
	"github.com/alexanderramin/journey/internal/cli"
	"github.com/alexanderramin/journey/internal/config"
	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/filestore"
	"github.com/alexanderramin/journey/internal/logger"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/mattn/go-isatty"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("JOURNEY_ENV_FILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog, err := logger.Init(os.Stderr, logger.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		AddSource:   cfg.LogSource,
		File:        cfg.LogFile,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Env,
		Release:     version,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closeLog()

	// Wire persistence
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	goals, err := repository.OpenGoalRepository(ctx, store)
	if err != nil {
		return err
	}

	blobs, err := openBlobs(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Debug("journey starting", "store", cfg.Store, "blobs", cfg.BlobBackend, "goals", goals.Len())

	// Wire services
	observer := service.NewLogUseCaseObserver(slog.Default())
	app := &cli.App{
		Goals:       service.NewGoalService(goals, store, observer),
		Profiles:    service.NewProfileService(store, observer),
		Insights:    service.NewInsightService(goals, store),
		Attachments: service.NewAttachmentService(blobs, observer),
		Tick:        cfg.Tick,
	}

	// Forms and the live countdown need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func openStore(cfg config.Config) (repository.PersistencePort, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return repository.NewMemoryStore(), noop, nil
	case config.StoreYAML, config.StoreJSON:
		codec, err := filestore.CodecFor(cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		fs, err := filestore.New(cfg.DataDir, codec)
		if err != nil {
			return nil, nil, fmt.Errorf("opening file store: %w", err)
		}
		return fs, noop, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteStore(database), database.Close, nil
	}
}

func openBlobs(ctx context.Context, cfg config.Config) (blob.Store, error) {
	if cfg.BlobBackend != config.BlobS3 {
		return blob.NewMemory(), nil
	}
	s3, err := blob.NewS3(ctx, blob.S3Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
		Prefix:    cfg.S3Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to attachment bucket: %w", err)
	}
	return s3, nil
}
