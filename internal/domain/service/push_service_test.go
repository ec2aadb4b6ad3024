package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKind_Terminal(t *testing.T) {
	assert.False(t, FailureNone.Terminal())
	assert.True(t, FailureInvalidToken.Terminal())
	assert.True(t, FailureUnregistered.Terminal())
	assert.False(t, FailureTransient.Terminal())
}
