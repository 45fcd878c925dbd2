package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/adapters/database/firebase"
	"github.com/SscSPs/expense_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/expense_tracker/internal/adapters/database/offline"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/platform/credentials"
	"github.com/SscSPs/expense_tracker/pkg/database"
)

// newDocumentStore picks the store for the configured driver. Missing
// Firebase credentials are fatal only when REQUIRE_CREDENTIALS is set;
// otherwise the server runs with an offline store.
func newDocumentStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentStore, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	}

	bundle, err := credentials.Resolve(ctx,
		credentials.NewEnvProvider(cfg.ServiceAccount),
		credentials.NewFileProvider(cfg.CredentialsFile),
	)
	if err != nil {
		if errors.Is(err, credentials.ErrNoCredentials) && !cfg.RequireCredentials {
			logger.Error("No database credentials; API calls will fail until restarted with credentials",
				slog.String("error", err.Error()))
			return offline.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}

	client, err := database.NewRealtimeDatabaseClient(ctx, cfg.DatabaseURL, bundle, logger)
	if err != nil {
		return nil, err
	}
	return firebase.NewStore(client), nil
}
