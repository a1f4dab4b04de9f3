package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// fakeRedis is a map-backed RedisClient for middleware tests
type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func setupIdempotentRouter(store *fakeRedis, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IdempotencyMiddleware(DefaultIdempotencyConfig(store)))
	router.POST("/purchase", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"calls": *calls})
	})
	return router
}

func postPurchase(router *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/purchase", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	calls := 0
	router := setupIdempotentRouter(newFakeRedis(), &calls)

	resp := postPurchase(router, "", `{"event_id":"1"}`)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
	if calls != 0 {
		t.Errorf("expected handler not to run, got %d calls", calls)
	}
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	calls := 0
	router := setupIdempotentRouter(newFakeRedis(), &calls)

	first := postPurchase(router, "key-1", `{"event_id":"1"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, first.Code)
	}
	if calls != 1 {
		t.Fatalf("expected 1 handler call, got %d", calls)
	}

	second := postPurchase(router, "key-1", `{"event_id":"1"}`)
	if second.Code != http.StatusCreated {
		t.Errorf("expected replayed status %d, got %d", http.StatusCreated, second.Code)
	}
	if calls != 1 {
		t.Errorf("expected handler to run once, got %d calls", calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("expected replayed body %q, got %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotencyMiddleware_KeyReusedWithDifferentRequest(t *testing.T) {
	calls := 0
	router := setupIdempotentRouter(newFakeRedis(), &calls)

	postPurchase(router, "key-1", `{"event_id":"1"}`)
	resp := postPurchase(router, "key-1", `{"event_id":"2"}`)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, resp.Code)
	}
	if calls != 1 {
		t.Errorf("expected handler to run once, got %d calls", calls)
	}
}

func TestIdempotencyMiddleware_RequestInProgress(t *testing.T) {
	store := newFakeRedis()
	calls := 0
	router := setupIdempotentRouter(store, &calls)

	body := `{"event_id":"1"}`
	h := sha256.New()
	h.Write([]byte(http.MethodPost))
	h.Write([]byte("/purchase"))
	h.Write([]byte(body))

	record, _ := json.Marshal(&IdempotencyRecord{
		Key:         "key-1",
		Status:      StatusProcessing,
		RequestHash: hex.EncodeToString(h.Sum(nil)),
		CreatedAt:   time.Now(),
	})
	store.data[idempotencyKeyPrefix+"key-1"] = string(record)

	resp := postPurchase(router, "key-1", body)

	if resp.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, resp.Code)
	}
	if calls != 0 {
		t.Errorf("expected handler not to run, got %d calls", calls)
	}
}
