// Package lifecycle holds process-wide lifecycle settings shared by servers and infra.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of each component.
const DefaultTimeout = 10 * time.Second
