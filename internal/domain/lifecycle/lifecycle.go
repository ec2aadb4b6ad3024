// Package lifecycle holds shared timings for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work in fx OnStop hooks.
const DefaultTimeout = 10 * time.Second
