package firestore

import (
	"context"

	"escuela/internal/domain/entity"
	"escuela/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements repository.UserRepository on Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository. It returns the
// repository as the domain interface, adhering to dependency inversion.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindUserByID retrieves a single user profile document by its ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(snap)
}

// FindUsersByRole retrieves every profile holding the given role.
func (repo *userRepository) FindUsersByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error) {
	iter := repo.client.Collection(usersCollection).
		Where("rol", "==", role.String()).
		Documents(ctx)
	defer iter.Stop()

	var users []*entity.UserProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query users by role")
		}

		user, err := toUserDomain(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// ReplaceDeviceTokens overwrites the user's whole token list. Last write
// wins when two invocations reconcile the same profile concurrently.
func (repo *userRepository) ReplaceDeviceTokens(ctx context.Context, userID string, tokens []string) error {
	_, err := repo.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "tokens", Value: tokens},
	})
	if err != nil {
		return errors.Wrap(err, "failed to replace device tokens")
	}

	return nil
}

// toUserDomain maps a profile snapshot to the domain entity.
func toUserDomain(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}
	user.ID = snap.Ref.ID

	return &user, nil
}
