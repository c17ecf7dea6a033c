package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"rikimaka/internal/shared/response"
)

const (
	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

// Context keys the handler uses to store the final response body.
const (
	CtxIdempotencyCacheKey = "idempotency_cache_key"
	CtxIdempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency replays the cached response for a repeated Idempotency-Key and
// takes a short-lived lock while the first request is in flight. Mounted on
// vacation creation, where double submits from the request form are common.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString(CtxUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached cachedResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil && cached.Status != 0 {
				c.Abort()
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				return
			}
		}

		// Lock expires on its own so a crashed worker cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			response.Abort(c, http.StatusConflict, "Su solicitud esta siendo procesada, espere un momento")
			return
		}

		c.Set(CtxIdempotencyCacheKey, cacheKey)
		c.Set(CtxIdempotencyLockKey, lockKey)

		c.Next()
	}
}

// cachedResponse keeps the original status with the body so a replay is
// byte-equivalent to the first response.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// StoreIdempotentResult caches a successful response for replay and
// releases the in-flight lock. Handlers call it after a 2xx write, passing
// the status they are about to send.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, body any) {
	cacheKey := c.GetString(CtxIdempotencyCacheKey)
	lockKey := c.GetString(CtxIdempotencyLockKey)
	if cacheKey == "" || rdb == nil {
		return
	}

	if raw, err := json.Marshal(body); err == nil {
		if entry, err := json.Marshal(cachedResponse{Status: status, Body: raw}); err == nil {
			rdb.Set(c.Request.Context(), cacheKey, entry, idempotencyTTL)
		}
	}
	if lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
