package ratelimiter

import "time"

type Limiter interface {
	// Allow records a request for key and reports whether it fits the current
	// window; when it does not, the duration until the window resets is returned.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
