package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/auth"
	"github.com/carlos0768/lexisync/internal/client/cli"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/iocli"
	"github.com/carlos0768/lexisync/internal/client/repository"
	"github.com/carlos0768/lexisync/internal/client/storage/boltdb"
	"github.com/carlos0768/lexisync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "lexisync-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage: проекты, слова, очередь, сессия
	// и sync-метаданные живут в одном файле
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// TokenProvider и API клиент ссылаются друг на друга,
	// поэтому refresher подключается после конструирования клиента
	tokens := auth.NewTokenProvider(boltStorage)
	apiClient := clientapi.NewClient(*serverURL, tokens)
	tokens.SetRefresher(apiClient)

	online := connectivity.NewHealthChecker(apiClient)

	local := repository.NewLocalRepository(boltStorage, boltStorage)
	hybrid := repository.NewHybridRepository(boltStorage, boltStorage, boltStorage, apiClient, online, logger)

	processor := sync.NewQueueProcessor(boltStorage, apiClient, logger)
	reconciler := sync.NewReconciler(boltStorage, boltStorage, boltStorage, boltStorage, apiClient, online, logger)

	authService := auth.NewService(apiClient, boltStorage, boltStorage)

	// Scan-бэкенд в CLI-сборке не сконфигурирован: extractor nil,
	// команда scan сообщает об этом пользователю
	app := cli.New(
		iocli.NewStdio(),
		authService,
		apiClient,
		online,
		hybrid,
		local,
		nil,
		boltStorage,
		boltStorage,
		processor,
		reconciler,
	)

	app.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("LexiSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
