package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mirzakf/laundromart/internal/config"
	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/server/http/handlers"
	testhelpers "github.com/mirzakf/laundromart/internal/test"
)

func newTestEngine(facade testhelpers.MarketFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	limiter := rate.NewLimiter(rate.Inf, 0)
	return Setup(facade, testhelpers.PingerStub{}, limiter, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.MarketFacadeStub{
		LaundryFacadeStub: testhelpers.LaundryFacadeStub{
			LaundriesFn: func(context.Context) ([]model.LaundryDetail, error) {
				return []model.LaundryDetail{{Laundry: model.Laundry{ID: 1, ShopID: 1}}}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"username": "alice", "email": "alice@example.com", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"email": "alice@example.com", "password": "password123"})
	req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	for _, path := range []string{
		"/api/users",
		"/api/health",
		"/api/shops",
		"/api/shops/top",
		"/api/promos",
		"/api/promos/top",
		"/api/laundries",
		"/api/laundries/user/1",
	} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}
}

func TestSetupClaimRequiresAuth(t *testing.T) {
	engine := newTestEngine(testhelpers.MarketFacadeStub{})

	body, _ := json.Marshal(map[string]any{"id": 1, "claim_code": "AAA111"})
	req := httptest.NewRequest(http.MethodPost, "/api/laundries/claim", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/laundries/claim", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d", resp.Code)
	}
}

func TestNewRateLimiterFromConfig(t *testing.T) {
	limiter := newRateLimiter(&config.Config{RateLimitRPS: 50, RateLimitBurst: 100})
	if limiter.Limit() != rate.Limit(50) {
		t.Fatalf("unexpected limit %v", limiter.Limit())
	}
	if limiter.Burst() != 100 {
		t.Fatalf("unexpected burst %d", limiter.Burst())
	}
}

var _ handlers.MarketFacade = (*testhelpers.MarketFacadeStub)(nil)
