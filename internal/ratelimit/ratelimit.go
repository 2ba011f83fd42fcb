// Package ratelimit implements fixed-window request limiting per key.
package ratelimit

import (
	"errors"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

var ErrCapacityExceeded = errors.New("rate limiter capacity exceeded")

// unlimited is returned when limiting is disabled.
func unlimited(limit int) Decision {
	return Decision{Allowed: true, Limit: limit, Remaining: limit}
}
