// Package notification implements the push-provider boundary on Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"escuela/config"
	"escuela/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM rejects multicast requests above 500 tokens.
const multicastTokenLimit = 500

type firebaseSender struct {
	client  *messaging.Client
	webpush *messaging.WebpushConfig
}

// NewFirebaseSender creates a push sender backed by Firebase Cloud
// Messaging. The webpush icon/badge presentation is constant per deployment
// and comes from config.
func NewFirebaseSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	sender := &firebaseSender{client: client}
	if cfg.Firebase.WebpushIconURL != "" || cfg.Firebase.WebpushBadgeURL != "" {
		sender.webpush = &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Icon:  cfg.Firebase.WebpushIconURL,
				Badge: cfg.Firebase.WebpushBadgeURL,
			},
		}
	}

	return sender, nil
}

// SendMulticastPush sends one multicast message covering every token of the
// push and maps the provider response to an ordered delivery report.
func (s *firebaseSender) SendMulticastPush(ctx context.Context, push *service.MulticastPush) (*service.DeliveryReport, error) {
	if len(push.Tokens) > multicastTokenLimit {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(push.Tokens), multicastTokenLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: push.Tokens,
		Notification: &messaging.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data:    push.Data,
		Webpush: s.webpush,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	report := &service.DeliveryReport{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Outcomes:     make([]service.SendOutcome, len(response.Responses)),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			report.Outcomes[idx] = service.SendOutcome{Success: true}

			continue
		}
		report.Outcomes[idx] = service.SendOutcome{
			Kind: classifyError(sendResponse.Error),
			Err:  sendResponse.Error,
		}
	}

	return report, nil
}

// classifyError maps an FCM per-token error to a failure kind. Only the two
// token-is-dead conditions are terminal; everything else is transient.
func classifyError(err error) service.FailureKind {
	switch {
	case messaging.IsInvalidArgument(err):
		return service.FailureInvalidToken
	case messaging.IsUnregistered(err):
		return service.FailureUnregistered
	default:
		return service.FailureTransient
	}
}
