package notification

import (
	"context"
	"fmt"
	"testing"

	"escuela/config"
	"escuela/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestNewFirebaseSender_RequiresConfig(t *testing.T) {
	_, err := NewFirebaseSender(context.Background(), &config.Config{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "firebase configuration is required")
}

func TestSendMulticastPush_TokenLimit(t *testing.T) {
	sender := &firebaseSender{}

	tokens := make([]string, multicastTokenLimit+1)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	_, err := sender.SendMulticastPush(context.Background(), &service.MulticastPush{
		Title:  "t",
		Body:   "b",
		Tokens: tokens,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token count exceeds limit")
}
