package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"escuela/internal/domain/service"
	mockRepo "escuela/internal/mocks/repository"
	mockSvc "escuela/internal/mocks/service"
	"escuela/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.Dispatcher,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushSender,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewDispatchService(logger, userRepo, pushSender), userRepo, pushSender
}

func TestDispatchService_Dispatch_EmptyTokens(t *testing.T) {
	dispatcher, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	result, err := dispatcher.Dispatch(ctx, "tutor-1", &service.MulticastPush{
		Title:  "Aviso de Inasistencia",
		Body:   "Tienes un aviso",
		Tokens: nil,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Pruned)
}

func TestDispatchService_Dispatch_AllSuccess_NoWrite(t *testing.T) {
	dispatcher, _, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{Title: "t", Body: "b", Tokens: []string{"tok1", "tok2"}}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(&service.DeliveryReport{
			SuccessCount: 2,
			Outcomes: []service.SendOutcome{
				{Success: true},
				{Success: true},
			},
		}, nil)

	result, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Pruned)
}

func TestDispatchService_Dispatch_PrunesTerminalFailures(t *testing.T) {
	dispatcher, userRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{Title: "t", Body: "b", Tokens: []string{"tok1", "tok2"}}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(&service.DeliveryReport{
			SuccessCount: 1,
			FailureCount: 1,
			Outcomes: []service.SendOutcome{
				{Success: true},
				{Kind: service.FailureInvalidToken, Err: errors.New("invalid registration token")},
			},
		}, nil)

	userRepo.EXPECT().
		ReplaceDeviceTokens(ctx, "tutor-1", []string{"tok1"}).
		Return(nil)

	result, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Pruned)
}

func TestDispatchService_Dispatch_RemovesExactlyTerminalSubset(t *testing.T) {
	dispatcher, userRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{
		Title:  "t",
		Body:   "b",
		Tokens: []string{"tok1", "tok2", "tok3", "tok4"},
	}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(&service.DeliveryReport{
			SuccessCount: 1,
			FailureCount: 3,
			Outcomes: []service.SendOutcome{
				{Kind: service.FailureInvalidToken, Err: errors.New("invalid registration token")},
				{Success: true},
				{Kind: service.FailureTransient, Err: errors.New("server unavailable")},
				{Kind: service.FailureUnregistered, Err: errors.New("registration token not registered")},
			},
		}, nil)

	// Only the terminal failures go; the transient one stays.
	userRepo.EXPECT().
		ReplaceDeviceTokens(ctx, "tutor-1", []string{"tok2", "tok3"}).
		Return(nil)

	result, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 3, result.Failed)
	assert.Equal(t, 2, result.Pruned)
}

func TestDispatchService_Dispatch_TransientFailures_NoWrite(t *testing.T) {
	dispatcher, _, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{Title: "t", Body: "b", Tokens: []string{"tok1", "tok2"}}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(&service.DeliveryReport{
			FailureCount: 2,
			Outcomes: []service.SendOutcome{
				{Kind: service.FailureTransient, Err: errors.New("server unavailable")},
				{Kind: service.FailureTransient, Err: errors.New("server unavailable")},
			},
		}, nil)

	result, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 0, result.Pruned)
}

func TestDispatchService_Dispatch_SendError(t *testing.T) {
	dispatcher, _, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{Title: "t", Body: "b", Tokens: []string{"tok1"}}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(nil, errors.New("transport down"))

	_, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast push")
}

func TestDispatchService_Dispatch_ReplaceTokensError(t *testing.T) {
	dispatcher, userRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	push := &service.MulticastPush{Title: "t", Body: "b", Tokens: []string{"tok1"}}

	pushSender.EXPECT().
		SendMulticastPush(ctx, push).
		Return(&service.DeliveryReport{
			FailureCount: 1,
			Outcomes: []service.SendOutcome{
				{Kind: service.FailureUnregistered, Err: errors.New("registration token not registered")},
			},
		}, nil)

	userRepo.EXPECT().
		ReplaceDeviceTokens(ctx, "tutor-1", []string{}).
		Return(errors.New("database error"))

	_, err := dispatcher.Dispatch(ctx, "tutor-1", push)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to replace device tokens")
}
