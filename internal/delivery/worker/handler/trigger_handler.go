// Package handler decodes pushed trigger events and runs the fan-out
// pipeline.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"escuela/config"
	deliverycontext "escuela/internal/delivery/context"
	"escuela/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TriggerHandler handles the Firestore document-created events pushed to
// this service.
type TriggerHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	registrationUC usecase.RegistrationUsecase
}

// TriggerHandlerParams holds dependencies for the TriggerHandler
type TriggerHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	RegistrationUC usecase.RegistrationUsecase
}

// NewTriggerHandler creates a new trigger event handler
func NewTriggerHandler(params TriggerHandlerParams) *TriggerHandler {
	// Push requests carry a Google-signed ID token everywhere but local
	// development.
	verifyPushAuth := params.Config.Events != nil &&
		params.Config.Events.Provider == config.EventProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &TriggerHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		registrationUC: params.RegistrationUC,
	}
}

// HandleNotificationCreated handles notification-document-created events.
func (h *TriggerHandler) HandleNotificationCreated(c echo.Context) error {
	var event usecase.NotificationCreatedEvent
	pushMsg, status := h.decodeEvent(c, &event)
	if status != http.StatusOK {
		return c.NoContent(status)
	}

	ctx, reqLogger := h.scopeRequest(c, pushMsg, event.RequestID)

	reqLogger.Info("[Trigger] Processing notification-created event",
		slog.String("user_id", event.AddresseeID),
		slog.String("notification_id", event.NotificationID),
	)

	result, err := h.notificationUC.HandleNotificationCreated(ctx, &event)
	if err != nil {
		reqLogger.Error("[Trigger] Failed to process notification-created event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
		// 503 asks the push subscription to redeliver; retries are the
		// trigger host's job, not the pipeline's.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Trigger] Notification routed",
		slog.String("notification_id", event.NotificationID),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return c.JSON(http.StatusOK, result)
}

// HandleUserRegistered handles user-profile-created events.
func (h *TriggerHandler) HandleUserRegistered(c echo.Context) error {
	var event usecase.UserRegisteredEvent
	pushMsg, status := h.decodeEvent(c, &event)
	if status != http.StatusOK {
		return c.NoContent(status)
	}

	ctx, reqLogger := h.scopeRequest(c, pushMsg, event.RequestID)

	reqLogger.Info("[Trigger] Processing user-registered event",
		slog.String("user_id", event.UserID),
		slog.String("role", event.Fields.Rol),
	)

	result, err := h.registrationUC.HandleUserRegistered(ctx, &event)
	if err != nil {
		reqLogger.Error("[Trigger] Failed to process user-registered event",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Trigger] Registration announced",
		slog.String("user_id", event.UserID),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("records_saved", result.RecordsSaved),
		slog.Int("sent", result.Sent),
	)

	return c.JSON(http.StatusOK, result)
}

// decodeEvent verifies, unwraps and validates a pushed event. It returns the
// envelope and the HTTP status to answer with; anything but 200 means the
// event was not decoded.
func (h *TriggerHandler) decodeEvent(c echo.Context, event any) (*PubSubMessage, int) {
	if h.verifyPushAuth {
		if err := verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Trigger] Invalid push token", slog.Any("error", err))

			return nil, http.StatusUnauthorized
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Trigger] Failed to parse push message", slog.Any("error", err))

		return nil, http.StatusBadRequest
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Trigger] Failed to decode message data", slog.Any("error", err))

		return nil, http.StatusBadRequest
	}

	if err := json.Unmarshal(data, event); err != nil {
		h.logger.Error("[Trigger] Failed to parse trigger event", slog.Any("error", err))

		return nil, http.StatusBadRequest
	}

	if err := c.Validate(event); err != nil {
		h.logger.Error("[Trigger] Invalid trigger event", slog.Any("error", err))

		return nil, http.StatusBadRequest
	}

	return &pushMsg, http.StatusOK
}

// scopeRequest resolves the request ID and returns a context and logger
// scoped to it. Priority: message attributes > event field > existing
// context > new UUID.
func (h *TriggerHandler) scopeRequest(c echo.Context, pushMsg *PubSubMessage, eventRequestID string) (context.Context, *slog.Logger) {
	ctx := c.Request().Context()

	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = eventRequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// verifyPushToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
