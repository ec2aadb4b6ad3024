package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "escuela/internal/delivery/context"
	"escuela/internal/domain/entity"
	"escuela/internal/domain/repository"
	"escuela/internal/usecase"
)

type registrationService struct {
	logger           *slog.Logger
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	dispatcher       usecase.Dispatcher
}

// NewRegistrationService creates the user-registration pipeline, which
// announces new teacher accounts to every administrator.
func NewRegistrationService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher usecase.Dispatcher,
) usecase.RegistrationUsecase {
	return &registrationService{
		logger:           logger,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleUserRegistered processes one user-profile-created event. Only new
// teacher accounts are announced. Each administrator gets a persisted
// notification record and a multicast push to their own devices, so token
// pruning stays per-addressee.
func (s *registrationService) HandleUserRegistered(ctx context.Context, event *usecase.UserRegisteredEvent) (*usecase.RegistrationResult, error) {
	if entity.Role(event.Fields.Rol) != entity.RoleTeacher {
		s.log(ctx).Info("registered user needs no announcement",
			slog.String("user_id", event.UserID),
			slog.String("role", event.Fields.Rol),
		)

		return &usecase.RegistrationResult{Outcome: usecase.OutcomeSkipped}, nil
	}

	admins, err := s.userRepo.FindUsersByRole(ctx, entity.RoleAdministrator)
	if err != nil {
		return nil, fmt.Errorf("failed to query administrators: %w", err)
	}

	if len(admins) == 0 {
		s.log(ctx).Warn("no administrators found to notify",
			slog.String("user_id", event.UserID),
		)

		return &usecase.RegistrationResult{Outcome: usecase.OutcomeNoAdmins}, nil
	}

	alert := &usecase.NewUserAlert{
		UserID: event.UserID,
		Email:  event.Fields.Email,
		Role:   event.Fields.Rol,
	}

	total := &usecase.RegistrationResult{Outcome: usecase.OutcomeAnnounced}
	for _, admin := range admins {
		if _, err := s.notificationRepo.CreateNotification(ctx, admin.ID, &entity.NotificationRecord{
			Body: alert.Body(),
		}); err != nil {
			return nil, fmt.Errorf("failed to persist admin notification: %w", err)
		}
		total.RecordsSaved++

		result, err := s.dispatcher.Dispatch(ctx, admin.ID, alert.Push(admin.Tokens))
		if err != nil {
			return nil, fmt.Errorf("failed to dispatch new-user alert: %w", err)
		}

		total.Sent += result.Sent
		total.Failed += result.Failed
		total.Pruned += result.Pruned
	}

	s.log(ctx).Info("new teacher account announced",
		slog.String("user_id", event.UserID),
		slog.Int("admins", len(admins)),
		slog.Int("sent", total.Sent),
		slog.Int("failed", total.Failed),
	)

	return total, nil
}
