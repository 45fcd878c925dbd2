package database

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/SscSPs/expense_tracker/internal/platform/credentials"
)

// NewRealtimeDatabaseClient initializes a Firebase app with the given
// service-account bundle and returns its Realtime Database client.
func NewRealtimeDatabaseClient(ctx context.Context, databaseURL string, bundle *credentials.Bundle, logger *slog.Logger) (*db.Client, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	if bundle == nil {
		return nil, fmt.Errorf("credentials cannot be nil")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: databaseURL,
		ProjectID:   bundle.ProjectID,
	}, option.WithCredentialsJSON(bundle.JSON))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	logger.Info("Firebase Realtime Database client initialized",
		slog.String("database_url", databaseURL),
		slog.String("project_id", bundle.ProjectID),
		slog.String("credentials_source", bundle.Source),
	)
	return client, nil
}
