// Package service defines interfaces for external collaborators consumed by
// the use cases.
package service

import "context"

// FailureKind classifies a per-token delivery failure reported by the push
// provider.
type FailureKind int

const (
	// FailureNone marks a successful delivery.
	FailureNone FailureKind = iota
	// FailureInvalidToken means the registration token is malformed and will
	// never be accepted again.
	FailureInvalidToken
	// FailureUnregistered means the token was valid once but the device has
	// since de-registered.
	FailureUnregistered
	// FailureTransient covers every other reason (rate limiting, provider
	// outage); the token may still be valid.
	FailureTransient
)

// Terminal reports whether the provider will never again accept the token.
// Only terminal failures justify pruning a token from storage.
func (k FailureKind) Terminal() bool {
	return k == FailureInvalidToken || k == FailureUnregistered
}

// SendOutcome is the delivery result for a single token.
type SendOutcome struct {
	Success bool
	Kind    FailureKind // FailureNone when Success is true.
	Err     error       // Provider error for diagnostics, nil on success.
}

// DeliveryReport is the transient result of one multicast send. Outcomes is
// ordered: Outcomes[i] corresponds to the i-th token of the request. It is
// consumed exactly once, right after the send, and never persisted.
type DeliveryReport struct {
	SuccessCount int
	FailureCount int
	Outcomes     []SendOutcome
}

// MulticastPush is one push message addressed to all devices of a single
// addressee. Data carries opaque string key/value pairs for the client;
// absent optional fields are omitted from the map rather than sent empty.
type MulticastPush struct {
	Title  string
	Body   string
	Data   map[string]string
	Tokens []string
}

// PushSender delivers a multicast push in a single provider call covering
// all tokens, returning one outcome per token.
type PushSender interface {
	SendMulticastPush(ctx context.Context, push *MulticastPush) (*DeliveryReport, error)
}
