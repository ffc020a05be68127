package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/BBongSu/AdvanceKeep/internal/client/api"
	"github.com/BBongSu/AdvanceKeep/internal/client/auth"
	"github.com/BBongSu/AdvanceKeep/internal/client/cli"
	"github.com/BBongSu/AdvanceKeep/internal/client/iocli"
	"github.com/BBongSu/AdvanceKeep/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "keep-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(*serverURL, logger)
	authService := auth.NewService(apiClient, boltStorage, logger)

	c := cli.New(stdio, authService, apiClient, apiClient, apiClient, boltStorage, logger)

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("AdvanceKeep Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
