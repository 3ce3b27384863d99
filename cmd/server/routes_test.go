package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/interfaces/http/handlers"
)

func TestRegisterRoutes_Table(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		registrationHandler: &handlers.RegistrationHandler{},
		authHandler:         &handlers.AuthHandler{},
		cardHandler:         &handlers.CardHandler{},
		livenessHandler:     &handlers.LivenessHandler{},
		adminHandler:        &handlers.AdminHandler{},
	})

	want := []string{
		"POST /register",
		"POST /verify-otp",
		"POST /resend-otp",
		"POST /check-otp",
		"POST /delete-otp",
		"POST /login",
		"GET /generate-aadhaar-card/:email",
		"GET /download-pdf/:email",
		"GET /download-image/:email",
		"GET /captcha",
		"POST /verify-voice",
		"POST /verify-captcha",
		"GET /liveness-checks",
		"GET /show-users",
		"GET /show-otps",
		"GET /user-info",
		"GET /otp-count",
		"GET /active-users",
		"POST /reset-database",
		"GET /metrics",
		"GET /health",
	}

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, key := range want {
		if !registered[key] {
			t.Errorf("route not registered: %s", key)
		}
	}
}

func TestCORSAndHealthHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin: %s", got)
	}

	// options preflight short-circuits
	req = httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
