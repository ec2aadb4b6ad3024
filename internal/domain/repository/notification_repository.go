// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"escuela/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// CreateNotification appends a record to the user's notification
	// subcollection and returns the generated document ID. CreatedAt is
	// assigned by the server on write.
	CreateNotification(ctx context.Context, userID string, record *entity.NotificationRecord) (string, error)
}
