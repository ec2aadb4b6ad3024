package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"escuela/internal/domain/entity"
	"escuela/internal/domain/repository"
	"escuela/internal/domain/service"
	mockRepo "escuela/internal/mocks/repository"
	mockUC "escuela/internal/mocks/usecase"
	"escuela/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRouterService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockUserRepository,
	*mockUC.MockDispatcher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := mockUC.NewMockDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRouterService(logger, userRepo, dispatcher), userRepo, dispatcher
}

func TestRouterService_HandleNotificationCreated_AdminRecorded(t *testing.T) {
	router, userRepo, _ := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "admin-1").
		Return(&entity.UserProfile{
			ID:     "admin-1",
			Rol:    entity.RoleAdministrator,
			Tokens: []string{"tok1"},
		}, nil)

	result, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "admin-1",
		NotificationID: "notif-1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAdminRecorded, result.Outcome)
	assert.Equal(t, entity.RoleAdministrator, result.Role)
	assert.Equal(t, 0, result.Sent)
}

func TestRouterService_HandleNotificationCreated_CaregiverDispatch(t *testing.T) {
	router, userRepo, dispatcher := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "tutor-1").
		Return(&entity.UserProfile{
			ID:     "tutor-1",
			Rol:    entity.RoleCaregiver,
			Tokens: []string{"tok1", "tok2"},
		}, nil)

	dispatcher.EXPECT().
		Dispatch(ctx, "tutor-1", mock.MatchedBy(func(push *service.MulticastPush) bool {
			return push.Title == "Aviso de Inasistencia" &&
				push.Body == "Tienes un aviso de Inasistencia para Ana Ruiz" &&
				push.Data["notificationId"] == "notif-1" &&
				push.Data["route"] == "/caregiver-dashboard/tab-notifications" &&
				len(push.Tokens) == 2
		})).
		Return(&usecase.DispatchResult{Sent: 2}, nil)

	result, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "tutor-1",
		NotificationID: "notif-1",
		Fields: usecase.NotificationFields{
			Tipo:           "Inasistencia",
			NombreCompleto: "Ana Ruiz",
			SID:            "S-42",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeDispatched, result.Outcome)
	assert.Equal(t, entity.RoleCaregiver, result.Role)
	assert.Equal(t, 2, result.Sent)
}

func TestRouterService_HandleNotificationCreated_UnknownRole(t *testing.T) {
	router, userRepo, _ := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "user-1").
		Return(&entity.UserProfile{
			ID:  "user-1",
			Rol: entity.Role("padre"),
		}, nil)

	result, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "user-1",
		NotificationID: "notif-1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRoleNotSupported, result.Outcome)
	assert.Equal(t, entity.Role("padre"), result.Role)
}

func TestRouterService_HandleNotificationCreated_AddresseeNotFound(t *testing.T) {
	router, userRepo, _ := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "gone-1").
		Return(nil, repository.ErrUserNotFound)

	result, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "gone-1",
		NotificationID: "notif-1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNotFound, result.Outcome)
}

func TestRouterService_HandleNotificationCreated_FetchError(t *testing.T) {
	router, userRepo, _ := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "user-1").
		Return(nil, errors.New("database error"))

	_, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "user-1",
		NotificationID: "notif-1",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch addressee profile")
}

func TestRouterService_HandleNotificationCreated_DispatchError(t *testing.T) {
	router, userRepo, dispatcher := createTestRouterService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByID(ctx, "tutor-1").
		Return(&entity.UserProfile{
			ID:     "tutor-1",
			Rol:    entity.RoleCaregiver,
			Tokens: []string{"tok1"},
		}, nil)

	dispatcher.EXPECT().
		Dispatch(ctx, "tutor-1", mock.Anything).
		Return(nil, errors.New("push backend down"))

	_, err := router.HandleNotificationCreated(ctx, &usecase.NotificationCreatedEvent{
		AddresseeID:    "tutor-1",
		NotificationID: "notif-1",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dispatch caregiver notice")
}
