package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
)

type memoryIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	r.keys[key.Key+"/"+key.UserID.String()] = key
	return nil
}

func (r *memoryIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key+"/"+userID.String()], nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	for k, v := range r.keys {
		if v.IsExpired() {
			delete(r.keys, k)
		}
	}
	return nil
}

func idempotencyRouter(repo *memoryIdempotencyRepo, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sales/record",
		func(c *gin.Context) { c.Set("user_id", userID) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		handler,
	)
	return r
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	router := idempotencyRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/record", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Idempotency-Key")
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()

	calls := 0
	router := idempotencyRouter(repo, userID, func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true, "data": gin.H{"invoiceNo": "INV-AB12CD34"}})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales/record", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	require.Equal(t, 201, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := do()
	assert.Equal(t, 201, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls, "handler must run once per key")
}

func TestIdempotencyKeysAreScopedPerUser(t *testing.T) {
	repo := newMemoryIdempotencyRepo()

	calls := 0
	handler := func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true})
	}

	for _, userID := range []uuid.UUID{uuid.New(), uuid.New()} {
		router := idempotencyRouter(repo, userID, handler)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales/record", nil)
		req.Header.Set(IdempotencyKeyHeader, "shared-key")
		router.ServeHTTP(w, req)
		require.Equal(t, 201, w.Code)
	}

	assert.Equal(t, 2, calls, "the same key from different users must not replay")
}

func TestIdempotencyDoesNotStoreFailures(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()

	succeed := false
	router := idempotencyRouter(repo, userID, func(c *gin.Context) {
		if succeed {
			c.JSON(201, gin.H{"success": true})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": "Insufficient stock for part Brake Pad Set"})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales/record", nil)
		req.Header.Set(IdempotencyKeyHeader, "retry-key")
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	require.Equal(t, 400, first.Code)

	// a retry after a failure runs the handler again
	succeed = true
	second := do()
	assert.Equal(t, 201, second.Code)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
}

func TestIdempotencyExpiredKeyIsReprocessed(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()

	repo.keys["old-key/"+userID.String()] = &entity.IdempotencyKey{
		Key:          "old-key",
		UserID:       userID,
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(-time.Hour),
	}

	calls := 0
	router := idempotencyRouter(repo, userID, func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/record", nil)
	req.Header.Set(IdempotencyKeyHeader, "old-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
}
