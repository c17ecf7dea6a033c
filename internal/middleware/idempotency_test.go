package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rikimaka/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyTest(t *testing.T, idempKey string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/vacations", nil)
	if idempKey != "" {
		c.Request.Header.Set("Idempotency-Key", idempKey)
	}
	return c, w
}

func cacheKeyFor(c *gin.Context, userID, idempKey string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
}

func TestIdempotency(t *testing.T) {
	t.Run("no header passes through without touching redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, _ := setupIdempotencyTest(t, "")

		middleware.Idempotency(rdb)(c)

		assert.False(t, c.IsAborted())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays cached response with its original status", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, w := setupIdempotencyTest(t, "abc-123")
		c.Set(middleware.CtxUserID, "user-1")

		body, _ := json.Marshal(gin.H{"id": "prev-request"})
		cached := fmt.Sprintf(`{"status":%d,"body":%s}`, http.StatusCreated, body)
		mock.ExpectGet(cacheKeyFor(c, "user-1", "abc-123")).SetVal(cached)

		middleware.Idempotency(rdb)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "prev-request")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected while the lock is held", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, w := setupIdempotencyTest(t, "abc-123")
		c.Set(middleware.CtxUserID, "user-1")

		key := cacheKeyFor(c, "user-1", "abc-123")
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

		middleware.Idempotency(rdb)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "siendo procesada")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request takes the lock and exposes the cache key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, _ := setupIdempotencyTest(t, "abc-123")
		c.Set(middleware.CtxUserID, "user-1")

		key := cacheKeyFor(c, "user-1", "abc-123")
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)

		middleware.Idempotency(rdb)(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, key, c.GetString(middleware.CtxIdempotencyCacheKey))
		assert.Equal(t, key+":lock", c.GetString(middleware.CtxIdempotencyLockKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreIdempotentResult(t *testing.T) {
	t.Run("caches status and body and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, _ := setupIdempotencyTest(t, "abc-123")
		c.Set(middleware.CtxIdempotencyCacheKey, "idemp:k")
		c.Set(middleware.CtxIdempotencyLockKey, "idemp:k:lock")

		body := gin.H{"id": "new-request"}
		raw, _ := json.Marshal(body)
		entry := []byte(fmt.Sprintf(`{"status":%d,"body":%s}`, http.StatusCreated, raw))
		mock.ExpectSet("idemp:k", entry, 24*time.Hour).SetVal("OK")
		mock.ExpectDel("idemp:k:lock").SetVal(1)

		middleware.StoreIdempotentResult(c, rdb, http.StatusCreated, body)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op when the middleware did not run", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c, _ := setupIdempotencyTest(t, "abc-123")

		middleware.StoreIdempotentResult(c, rdb, http.StatusCreated, gin.H{"id": "x"})

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
