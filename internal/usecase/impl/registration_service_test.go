package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"escuela/internal/domain/entity"
	"escuela/internal/domain/service"
	mockRepo "escuela/internal/mocks/repository"
	mockUC "escuela/internal/mocks/usecase"
	"escuela/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationService(t *testing.T) (
	usecase.RegistrationUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockNotificationRepository,
	*mockUC.MockDispatcher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	dispatcher := mockUC.NewMockDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRegistrationService(logger, userRepo, notificationRepo, dispatcher),
		userRepo, notificationRepo, dispatcher
}

func TestRegistrationService_HandleUserRegistered_SkipsNonTeacher(t *testing.T) {
	registration, _, _, _ := createTestRegistrationService(t)

	ctx := context.Background()
	result, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "user-1",
		Fields: usecase.UserFields{Rol: "tutor", Email: "ana@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSkipped, result.Outcome)
	assert.Equal(t, 0, result.RecordsSaved)
}

func TestRegistrationService_HandleUserRegistered_NoAdmins(t *testing.T) {
	registration, userRepo, _, _ := createTestRegistrationService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUsersByRole(ctx, entity.RoleAdministrator).
		Return([]*entity.UserProfile{}, nil)

	result, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "teacher-1",
		Fields: usecase.UserFields{Rol: "maestro", Email: "luis@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoAdmins, result.Outcome)
}

func TestRegistrationService_HandleUserRegistered_AnnouncesToAllAdmins(t *testing.T) {
	registration, userRepo, notificationRepo, dispatcher := createTestRegistrationService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUsersByRole(ctx, entity.RoleAdministrator).
		Return([]*entity.UserProfile{
			{ID: "admin-1", Rol: entity.RoleAdministrator, Tokens: []string{"tok1", "tok2"}},
			{ID: "admin-2", Rol: entity.RoleAdministrator},
		}, nil)

	wantBody := "Se registró un usuario con el correo: luis@example.com"
	notificationRepo.EXPECT().
		CreateNotification(ctx, "admin-1", mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return record.Body == wantBody
		})).
		Return("notif-1", nil)
	notificationRepo.EXPECT().
		CreateNotification(ctx, "admin-2", mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return record.Body == wantBody
		})).
		Return("notif-2", nil)

	dispatcher.EXPECT().
		Dispatch(ctx, "admin-1", mock.MatchedBy(func(push *service.MulticastPush) bool {
			return push.Title == "Nuevo Usuario:" &&
				push.Data["userEmail"] == "luis@example.com" &&
				len(push.Tokens) == 2
		})).
		Return(&usecase.DispatchResult{Sent: 1, Failed: 1, Pruned: 1}, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, "admin-2", mock.MatchedBy(func(push *service.MulticastPush) bool {
			return len(push.Tokens) == 0
		})).
		Return(&usecase.DispatchResult{}, nil)

	result, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "teacher-1",
		Fields: usecase.UserFields{Rol: "maestro", Email: "luis@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAnnounced, result.Outcome)
	assert.Equal(t, 2, result.RecordsSaved)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Pruned)
}

func TestRegistrationService_HandleUserRegistered_AdminQueryError(t *testing.T) {
	registration, userRepo, _, _ := createTestRegistrationService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUsersByRole(ctx, entity.RoleAdministrator).
		Return(nil, errors.New("database error"))

	_, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "teacher-1",
		Fields: usecase.UserFields{Rol: "maestro", Email: "luis@example.com"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query administrators")
}

func TestRegistrationService_HandleUserRegistered_PersistError(t *testing.T) {
	registration, userRepo, notificationRepo, _ := createTestRegistrationService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUsersByRole(ctx, entity.RoleAdministrator).
		Return([]*entity.UserProfile{
			{ID: "admin-1", Rol: entity.RoleAdministrator},
		}, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, "admin-1", mock.Anything).
		Return("", errors.New("database error"))

	_, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "teacher-1",
		Fields: usecase.UserFields{Rol: "maestro", Email: "luis@example.com"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist admin notification")
}

func TestRegistrationService_HandleUserRegistered_DispatchError(t *testing.T) {
	registration, userRepo, notificationRepo, dispatcher := createTestRegistrationService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUsersByRole(ctx, entity.RoleAdministrator).
		Return([]*entity.UserProfile{
			{ID: "admin-1", Rol: entity.RoleAdministrator, Tokens: []string{"tok1"}},
		}, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, "admin-1", mock.Anything).
		Return("notif-1", nil)

	dispatcher.EXPECT().
		Dispatch(ctx, "admin-1", mock.Anything).
		Return(nil, errors.New("push backend down"))

	_, err := registration.HandleUserRegistered(ctx, &usecase.UserRegisteredEvent{
		UserID: "teacher-1",
		Fields: usecase.UserFields{Rol: "maestro", Email: "luis@example.com"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dispatch new-user alert")
}
