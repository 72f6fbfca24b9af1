package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	(&Handler{Service: svc}).RegisterRoutes(api)
	return router
}

func postRecommend(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendEndpoint(t *testing.T) {
	router := newTestRouter(t, newTestService(t, trainServiceArtifact(t), nil))

	resp := postRecommend(t, router, `{"text":"my ps not start"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}

	var out recommendResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Component != "PSU Upgrade" || out.Source != SourceRule {
		t.Errorf("got %s via %s, want PSU Upgrade via rule", out.Component, out.Source)
	}
	if out.ConfidenceTier != TierHigh {
		t.Errorf("tier = %q, want %q", out.ConfidenceTier, TierHigh)
	}
	if out.AskFeedback {
		t.Error("ask_feedback must be false at 0.95")
	}
	if out.Definition == "" || len(out.FixingTips) == 0 {
		t.Error("response missing knowledge-base enrichment")
	}
	if len(out.GroupedByCategory) == 0 {
		t.Error("response missing category grouping")
	}
}

func TestRecommendEndpointIgnoresShopFields(t *testing.T) {
	router := newTestRouter(t, newTestService(t, nil, nil))
	resp := postRecommend(t, router, `{"text":"pc slow","budget":"20000","district":"colombo"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
}

func TestRecommendEndpointErrors(t *testing.T) {
	router := newTestRouter(t, newTestService(t, nil, nil))

	if resp := postRecommend(t, router, `{`); resp.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", resp.Code)
	}
	if resp := postRecommend(t, router, `{"text":"   "}`); resp.Code != http.StatusBadRequest {
		t.Errorf("blank text: status = %d, want 400", resp.Code)
	}
	// No rule match, no model loaded.
	if resp := postRecommend(t, router, `{"text":"my computer takes long time to boot and freezes when I open multiple programs"}`); resp.Code != http.StatusServiceUnavailable {
		t.Errorf("model unavailable: status = %d, want 503", resp.Code)
	}
}
