package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/feedback"
	"hardware-advisor/internal/knowledge"
	"hardware-advisor/internal/recommend"
	"hardware-advisor/internal/shared/config"
)

func newRouterForEnv(env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config:           config.Config{Env: env},
		RecommendHandler: &recommend.Handler{},
		FeedbackHandler:  &feedback.Handler{},
		KnowledgeHandler: &knowledge.Handler{},
		ModelVersion:     func() string { return "v1" },
		ReloadModel:      func() error { return nil },
	})
}

func TestReloadRouteFollowsDevLikeEnvs(t *testing.T) {
	// The reload route must exist in every environment that also gets the
	// in-memory fallback wiring, and in no other.
	cases := []struct {
		env  string
		want int
	}{
		{"dev", http.StatusOK},
		{"local", http.StatusOK},
		{"staging", http.StatusNotFound},
		{"production", http.StatusNotFound},
	}
	for _, tc := range cases {
		router := newRouterForEnv(tc.env)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/reload-model", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Errorf("env %q: status = %d, want %d", tc.env, resp.Code, tc.want)
		}
	}
}

func TestHealthReportsModelVersion(t *testing.T) {
	router := newRouterForEnv("production")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8080", "9090": ":9090", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
