package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "escuela/internal/delivery/context"
	"escuela/internal/domain/entity"
	"escuela/internal/domain/repository"
	"escuela/internal/usecase"
)

type routerService struct {
	logger     *slog.Logger
	userRepo   repository.UserRepository
	dispatcher usecase.Dispatcher
}

// NewRouterService creates the notification Router, which resolves an
// addressee's role and hands off to the role-specific handler.
func NewRouterService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	dispatcher usecase.Dispatcher,
) usecase.NotificationUsecase {
	return &routerService{
		logger:     logger,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *routerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleNotificationCreated processes one notification-document-created
// event. A missing addressee or an unrecognized role terminates quietly
// with a descriptive result; only the profile fetch and the dispatch itself
// can fail hard.
func (s *routerService) HandleNotificationCreated(ctx context.Context, event *usecase.NotificationCreatedEvent) (*usecase.RouteResult, error) {
	user, err := s.userRepo.FindUserByID(ctx, event.AddresseeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Addressee deleted between the write and the trigger firing.
			s.log(ctx).Info("notification addressee not found",
				slog.String("user_id", event.AddresseeID),
			)

			return &usecase.RouteResult{Outcome: usecase.OutcomeNotFound}, nil
		}

		return nil, fmt.Errorf("failed to fetch addressee profile: %w", err)
	}

	s.log(ctx).Info("routing new notification",
		slog.String("user_id", event.AddresseeID),
		slog.String("notification_id", event.NotificationID),
		slog.String("role", user.Rol.String()),
	)

	switch user.Rol {
	case entity.RoleAdministrator:
		// Administrators are pushed to from the registration flow only; the
		// record itself is already persisted by the time this trigger fires.
		return &usecase.RouteResult{
			Outcome: usecase.OutcomeAdminRecorded,
			Role:    entity.RoleAdministrator,
		}, nil

	case entity.RoleCaregiver:
		return s.handleCaregiverNotification(ctx, user, event)

	default:
		s.log(ctx).Warn("unsupported role for notification routing",
			slog.String("user_id", event.AddresseeID),
			slog.String("role", user.Rol.String()),
		)

		return &usecase.RouteResult{
			Outcome: usecase.OutcomeRoleNotSupported,
			Role:    user.Rol,
		}, nil
	}
}

func (s *routerService) handleCaregiverNotification(ctx context.Context, user *entity.UserProfile, event *usecase.NotificationCreatedEvent) (*usecase.RouteResult, error) {
	notice := &usecase.CaregiverNotice{
		NotificationID: event.NotificationID,
		Tipo:           event.Fields.Tipo,
		NombreCompleto: event.Fields.NombreCompleto,
		SID:            event.Fields.SID,
		Fecha:          event.Fields.Fecha,
		Materias:       event.Fields.Materias,
		Observaciones:  event.Fields.Observaciones,
	}

	result, err := s.dispatcher.Dispatch(ctx, user.ID, notice.Push(user.Tokens))
	if err != nil {
		return nil, fmt.Errorf("failed to dispatch caregiver notice: %w", err)
	}

	return &usecase.RouteResult{
		Outcome: usecase.OutcomeDispatched,
		Role:    entity.RoleCaregiver,
		Sent:    result.Sent,
		Failed:  result.Failed,
		Pruned:  result.Pruned,
	}, nil
}
