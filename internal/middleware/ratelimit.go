package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/database"
	"golang.org/x/time/rate"
)

// IPRateLimiter manages rate limiters for each IP
type IPRateLimiter struct {
	ips   map[string]*rateLimiterEntry
	mu    sync.RWMutex
	r     rate.Limit
	burst int
	stop  chan struct{}
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a new IP-based rate limiter.
// r = requests per second, burst = max burst size
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		ips:   make(map[string]*rateLimiterEntry),
		r:     r,
		burst: burst,
		stop:  make(chan struct{}),
	}

	// Cleanup old entries every minute
	go rl.cleanup()

	return rl
}

func (rl *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, entry := range rl.ips {
				if time.Since(entry.lastSeen) > 3*time.Minute {
					delete(rl.ips, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the background cleanup goroutine. Existing limiters keep working.
func (rl *IPRateLimiter) Stop() {
	close(rl.stop)
}

// GetLimiter returns the rate limiter for the given IP
func (rl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.r, rl.burst)
		rl.ips[ip] = &rateLimiterEntry{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	entry.lastSeen = time.Now()
	return entry.limiter
}

// Pre-configured limiters
var (
	// General API traffic: 10 req/s with a comfortable burst for page loads
	GeneralLimiter = NewIPRateLimiter(rate.Limit(10.0), 30)

	// Action reporting: 2 req/s. Every action grants XP, so this is the
	// first line of defense against XP farming by request spam.
	ActionLimiter = NewIPRateLimiter(rate.Limit(2.0), 5)
)

func GeneralRateLimit() gin.HandlerFunc {
	return limitWith(GeneralLimiter)
}

// ActionRateLimit combines the in-process limiter with a Redis counter per
// profile (120 actions/minute) when Redis is available.
func ActionRateLimit() gin.HandlerFunc {
	inProcess := limitWith(ActionLimiter)
	return func(c *gin.Context) {
		inProcess(c)
		if c.IsAborted() {
			return
		}
		if database.Redis == nil {
			return
		}
		profileID := c.GetString("profileId")
		if profileID == "" {
			return
		}
		ok, err := database.CheckRateLimit("actions:"+profileID, 120, time.Minute)
		if err != nil {
			// Redis unavailable mid-flight: fail open, the IP limiter still applies
			return
		}
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many actions, slow down"})
			c.Abort()
		}
	}
}

func limitWith(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.GetLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
