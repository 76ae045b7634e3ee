package firebase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/multierr"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/ecomvoyage/ecomvoyage-backend/pkg/config"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

// App owns the Firebase project clients used by the platform: Firestore for
// the per-user cart collections and Auth for ID-token verification. It is
// constructed once at startup and injected into the services that need it;
// in a long-lived server it is only closed on shutdown.
type App struct {
	projectID string
	firestore *firestore.Client
	auth      *fbauth.Client
}

// New initializes the Firebase app and its Firestore/Auth clients.
// Credentials come from the configured service-account file or fall back to
// Application Default Credentials.
func New(ctx context.Context, cfg config.GCPConfig, logg *logger.Logger) (*App, error) {
	projectID := strings.TrimSpace(cfg.ProjectID)
	if projectID == "" {
		return nil, errors.New("gcp project id is required")
	}

	var opts []option.ClientOption
	if cred := strings.TrimSpace(cfg.CredentialsFile); cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = fsClient.Close()
		return nil, fmt.Errorf("creating firebase auth client: %w", err)
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "project_id", projectID)
		logg.Info(ctx, "firebase clients initialized")
	}

	return &App{
		projectID: projectID,
		firestore: fsClient,
		auth:      authClient,
	}, nil
}

// Firestore returns the Firestore client.
func (a *App) Firestore() *firestore.Client {
	if a == nil {
		return nil
	}
	return a.firestore
}

// Auth returns the Firebase Auth client.
func (a *App) Auth() *fbauth.Client {
	if a == nil {
		return nil
	}
	return a.auth
}

// ProjectID returns the configured project id.
func (a *App) ProjectID() string {
	if a == nil {
		return ""
	}
	return a.projectID
}

// Ping verifies Firestore connectivity with a bounded collection listing.
func (a *App) Ping(ctx context.Context) error {
	if a == nil || a.firestore == nil {
		return errors.New("firestore client not initialized")
	}
	_, err := a.firestore.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

// Close releases the underlying clients.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var err error
	if a.firestore != nil {
		err = multierr.Append(err, a.firestore.Close())
	}
	return err
}
