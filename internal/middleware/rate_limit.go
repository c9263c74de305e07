package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"parts-support-chat/pkg/response"
)

// rateLimitClientTTL bounds how long an idle client keeps its limiter.
const rateLimitClientTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit limits requests per client IP to the configured amount per
// minute. Disabled when the configured rate is zero or negative.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.Chat.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		for addr, entry := range clients {
			if time.Since(entry.lastSeen) > rateLimitClientTTL {
				delete(clients, addr)
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
