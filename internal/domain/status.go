package domain

import "time"

// Server status messages shown next to the indicator.
const (
	StatusMessageOnline   = "API server is online"
	StatusMessageError    = "API server returned error"
	StatusMessageOffline  = "API server is offline"
	StatusMessageChecking = "Checking server status..."
)

// ServerStatus is the last known reachability of the external API.
type ServerStatus struct {
	Online  bool
	Message string

	// RequestedAt is when the probe that produced this status was issued.
	// Results are ordered by it, not by arrival.
	RequestedAt time.Time
	CheckedAt   time.Time
}

// NewerThan reports whether s came from a probe issued after other's.
func (s ServerStatus) NewerThan(other ServerStatus) bool {
	return s.RequestedAt.After(other.RequestedAt)
}
