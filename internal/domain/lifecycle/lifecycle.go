// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations such as DB pings and
// HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
