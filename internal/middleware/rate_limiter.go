package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

type rateLimiterClient struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter implementa token bucket por IP.
type RateLimiter struct {
	clients map[string]*rateLimiterClient
	mu      sync.Mutex

	maxTokens    int
	refillPeriod time.Duration
}

func NewRateLimiter(maxTokens int, refillPeriod time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:      make(map[string]*rateLimiterClient),
		maxTokens:    maxTokens,
		refillPeriod: refillPeriod,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, ok := rl.clients[ip]
	if !ok {
		rl.clients[ip] = &rateLimiterClient{tokens: rl.maxTokens - 1, lastRefill: now}
		return true
	}

	elapsed := now.Sub(client.lastRefill)
	if elapsed >= rl.refillPeriod {
		client.tokens = rl.maxTokens
		client.lastRefill = now
	}

	if client.tokens <= 0 {
		return false
	}
	client.tokens--
	return true
}

// cleanup remove clientes inativos para a tabela não crescer sem limite.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-30 * time.Minute)
		for ip, client := range rl.clients {
			if client.lastRefill.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			logger.Warn().Str("ip", ip).Msg("limite de requisições excedido")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    "RATE_LIMIT_EXCEEDED",
				"message": "Muitas requisições. Tente novamente em instantes.",
			})
			return
		}
		c.Next()
	}
}
