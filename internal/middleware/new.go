package middleware

import (
	"weather-joke-assistant/pkg/log"
)

// Options configures the middleware set.
type Options struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, opt Options) Middleware {
	mw := Middleware{l: l}
	if opt.RateLimitEnabled && opt.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(opt.RequestsPerMin)
	}
	return mw
}
