// Package eventconnect wires the client stack together: local state storage,
// the session store, the REST client and the flows on top of them.
package eventconnect

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"eventconnect/config"
	"eventconnect/internal/client"
	"eventconnect/internal/domain"
	"eventconnect/internal/services"
	"eventconnect/internal/session"
	"eventconnect/internal/storage"
	"eventconnect/internal/storage/sqlite"
)

// App bundles the constructed components of the EventConnect client.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Sessions  *session.Store
	API       *client.Client
	Auth      *services.Auth
	Favorites *services.Favorites

	store domain.KeyStore
}

// New builds the full client stack and rehydrates the session from local
// storage. A nil cfg is loaded from the environment; a nil logger gets the
// environment-configured default.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if logger == nil {
		logger = config.NewLogger()
	}

	keystore, err := sqlite.Open(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}
	var store domain.KeyStore = keystore
	if cfg.StateSecret != "" {
		cipher, err := storage.NewCipher(cfg.StateSecret)
		if err != nil {
			keystore.Close()
			return nil, fmt.Errorf("failed to set up state encryption: %w", err)
		}
		store = storage.NewEncryptedKeyStore(keystore, cipher)
	}

	sessions := session.NewStore(store, logger)
	sessions.Initialize(ctx)

	api := client.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, sessions, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Sessions:  sessions,
		API:       api,
		Auth:      services.NewAuth(api, sessions, logger),
		Favorites: services.NewFavorites(api, logger),
		store:     store,
	}, nil
}

// Close releases the local state store.
func (a *App) Close() error {
	return a.store.Close()
}
