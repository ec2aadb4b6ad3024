// Package impl contains the concrete use case services of the fan-out
// pipeline.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "escuela/internal/delivery/context"
	"escuela/internal/domain/repository"
	"escuela/internal/domain/service"
	"escuela/internal/usecase"
)

type dispatchService struct {
	logger     *slog.Logger
	userRepo   repository.UserRepository
	pushSender service.PushSender
}

// NewDispatchService creates the shared push Dispatcher used by both
// trigger flows.
func NewDispatchService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pushSender service.PushSender,
) usecase.Dispatcher {
	return &dispatchService{
		logger:     logger,
		userRepo:   userRepo,
		pushSender: pushSender,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch sends one multicast covering all of the addressee's tokens, then
// reconciles the token set from the per-token delivery report. Tokens whose
// failure is terminal are removed with a single whole-field overwrite;
// transient failures are logged and the token kept.
func (s *dispatchService) Dispatch(ctx context.Context, userID string, push *service.MulticastPush) (*usecase.DispatchResult, error) {
	if len(push.Tokens) == 0 {
		s.log(ctx).Info("no device tokens registered, skipping push",
			slog.String("user_id", userID),
		)

		return &usecase.DispatchResult{}, nil
	}

	report, err := s.pushSender.SendMulticastPush(ctx, push)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast push: %w", err)
	}

	var remove []string
	for idx, outcome := range report.Outcomes {
		if outcome.Success {
			continue
		}
		if outcome.Kind.Terminal() {
			remove = append(remove, push.Tokens[idx])

			continue
		}
		// Transient failure: the token may still work next time.
		s.log(ctx).Warn("push delivery failed, keeping token",
			slog.String("user_id", userID),
			slog.Any("error", outcome.Err),
		)
	}

	if len(remove) > 0 {
		s.log(ctx).Info("pruning dead device tokens",
			slog.String("user_id", userID),
			slog.Int("count", len(remove)),
		)

		kept := tokensWithout(push.Tokens, remove)
		if err := s.userRepo.ReplaceDeviceTokens(ctx, userID, kept); err != nil {
			return nil, fmt.Errorf("failed to replace device tokens: %w", err)
		}
	}

	return &usecase.DispatchResult{
		Sent:   report.SuccessCount,
		Failed: report.FailureCount,
		Pruned: len(remove),
	}, nil
}

func tokensWithout(tokens, remove []string) []string {
	dead := make(map[string]struct{}, len(remove))
	for _, token := range remove {
		dead[token] = struct{}{}
	}

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := dead[token]; !ok {
			kept = append(kept, token)
		}
	}

	return kept
}
