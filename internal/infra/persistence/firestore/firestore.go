// Package firestore contains the concrete implementation of the persistence
// layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"escuela/config"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection layout shared by all repositories. The document database is a
// single "usuarios" collection with a per-user "notificaciones"
// subcollection.
const (
	usersCollection         = "usuarios"
	notificationsCollection = "notificaciones"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client shared by the repositories. The client is
// built once at process start; the trigger host reuses it across
// invocations.
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	client, err := firestore.NewClient(
		params.Ctx,
		params.Config.Firebase.ProjectID,
		option.WithCredentialsFile(params.Config.Firebase.CredentialsPath),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
