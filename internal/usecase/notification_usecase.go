// Package usecase defines the application-level interfaces and data shapes
// of the notification fan-out pipeline.
package usecase

import (
	"context"

	"escuela/internal/domain/entity"
	"escuela/internal/domain/service"
)

// NotificationFields carries the field values of a freshly created
// notification document, already deserialized by the trigger host.
type NotificationFields struct {
	Body           string   `json:"body"`
	Tipo           string   `json:"tipo,omitempty"`
	NombreCompleto string   `json:"nombreCompleto,omitempty"`
	SID            string   `json:"sid,omitempty"`
	Fecha          string   `json:"fecha,omitempty"`
	Materias       []string `json:"materias,omitempty"`
	Observaciones  string   `json:"observaciones,omitempty"`
}

// NotificationCreatedEvent is the trigger input fired when a notification
// document is written under a user.
type NotificationCreatedEvent struct {
	RequestID      string             `json:"request_id,omitempty"` // For distributed tracing
	AddresseeID    string             `json:"addressee_id" validate:"required"`
	NotificationID string             `json:"notification_id" validate:"required"`
	Fields         NotificationFields `json:"fields"`
}

// UserFields carries the field values of a freshly created user profile.
type UserFields struct {
	Rol   string `json:"rol" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UserRegisteredEvent is the trigger input fired when a user profile
// document is created.
type UserRegisteredEvent struct {
	RequestID string     `json:"request_id,omitempty"`
	UserID    string     `json:"user_id" validate:"required"`
	Fields    UserFields `json:"fields"`
}

// Outcome classifies how an invocation of the pipeline terminated. All of
// these are clean terminations; hard failures surface as errors instead.
type Outcome string

const (
	// OutcomeNotFound means the addressee no longer exists; nothing was sent.
	OutcomeNotFound Outcome = "addressee_not_found"
	// OutcomeRoleNotSupported means the addressee's role has no handler.
	OutcomeRoleNotSupported Outcome = "role_not_supported"
	// OutcomeAdminRecorded means an administrator's notification was
	// recorded without a push; admin pushes come from the registration flow.
	OutcomeAdminRecorded Outcome = "admin_recorded"
	// OutcomeDispatched means the caregiver flow ran a multicast send.
	OutcomeDispatched Outcome = "dispatched"
	// OutcomeSkipped means the registered user's role does not warrant an
	// administrator announcement.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNoAdmins means no administrator profile exists to notify.
	OutcomeNoAdmins Outcome = "no_admins"
	// OutcomeAnnounced means the registration flow notified administrators.
	OutcomeAnnounced Outcome = "announced"
)

// DispatchResult reports what one Dispatcher invocation did.
type DispatchResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Pruned int `json:"pruned"`
}

// RouteResult is the Router's structured result. It has no consumer inside
// the pipeline; it exists for observability at the trigger boundary.
type RouteResult struct {
	Outcome Outcome     `json:"outcome"`
	Role    entity.Role `json:"role,omitempty"`
	Sent    int         `json:"sent"`
	Failed  int         `json:"failed"`
	Pruned  int         `json:"pruned"`
}

// RegistrationResult reports what the user-registration pipeline did.
type RegistrationResult struct {
	Outcome      Outcome `json:"outcome"`
	RecordsSaved int     `json:"records_saved"`
	Sent         int     `json:"sent"`
	Failed       int     `json:"failed"`
	Pruned       int     `json:"pruned"`
}

// Dispatcher turns a composed push into a multicast send and reconciles the
// addressee's token set from the delivery report.
type Dispatcher interface {
	// Dispatch sends push to all of its tokens in one multicast call, prunes
	// tokens that failed terminally from the addressee's profile, and
	// returns delivery counts. An empty token list is a zero-work success.
	Dispatch(ctx context.Context, userID string, push *service.MulticastPush) (*DispatchResult, error)
}

// NotificationUsecase handles notification-document-created events.
type NotificationUsecase interface {
	// HandleNotificationCreated resolves the addressee's role and dispatches
	// to the role-specific handler. Missing addressees and unsupported roles
	// terminate cleanly with a descriptive result; fetch and transport
	// failures propagate to the trigger host.
	HandleNotificationCreated(ctx context.Context, event *NotificationCreatedEvent) (*RouteResult, error)
}

// RegistrationUsecase handles user-profile-created events.
type RegistrationUsecase interface {
	// HandleUserRegistered announces a new teacher account to every
	// administrator: a persisted notification record plus a push per admin.
	HandleUserRegistered(ctx context.Context, event *UserRegisteredEvent) (*RegistrationResult, error)
}
