package firestore

import (
	"context"

	"escuela/internal/domain/entity"
	"escuela/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// notificationRepository implements repository.NotificationRepository on
// Firestore.
type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// CreateNotification appends a record under the addressee's subcollection.
// CreatedAt is filled in by the server via the serverTimestamp tag.
func (repo *notificationRepository) CreateNotification(ctx context.Context, userID string, record *entity.NotificationRecord) (string, error) {
	ref, _, err := repo.client.Collection(usersCollection).
		Doc(userID).
		Collection(notificationsCollection).
		Add(ctx, record)
	if err != nil {
		return "", errors.Wrap(err, "failed to create notification record")
	}

	return ref.ID, nil
}
