package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_PerIPBuckets(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 2)
	defer rl.Stop()

	a := rl.GetLimiter("10.0.0.1")
	assert.True(t, a.Allow())
	assert.True(t, a.Allow())
	assert.False(t, a.Allow()) // burst exhausted

	// Another IP gets its own bucket; the same IP gets the same limiter back.
	assert.True(t, rl.GetLimiter("10.0.0.2").Allow())
	assert.Same(t, a, rl.GetLimiter("10.0.0.1"))
}

func TestIPRateLimiter_StopIsClean(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 1)
	rl.Stop()

	// Limiters still hand out tokens after the janitor is gone.
	assert.True(t, rl.GetLimiter("10.0.0.3").Allow())
}
