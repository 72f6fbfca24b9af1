package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	svc := NewService(repo, knownLabels("RAM Upgrade", "SSD Upgrade"))
	handler := &Handler{Service: svc}

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, repo
}

func TestSubmitEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	body := `{"user_text":"pc slow when gaming","predicted_label":"RAM Upgrade","confidence":0.9,"source":"rule"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	var out submitResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success || out.FeedbackCount != 1 {
		t.Errorf("response = %+v, want success with count 1", out)
	}
}

func TestSubmitEndpointStoresPredictionSource(t *testing.T) {
	router, repo := newTestRouter()

	body := `{"user_text":"boot takes minutes","predicted_label":"SSD Upgrade","confidence":0.6,"source":"hierarchical_ml"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	records, _ := repo.ReadAll(context.Background())
	if len(records) != 1 {
		t.Fatalf("stored records = %d, want 1", len(records))
	}
	if records[0].Source != "hierarchical_ml" {
		t.Errorf("stored source = %q, want the submitted prediction source", records[0].Source)
	}
	if records[0].Channel != ChannelUser {
		t.Errorf("stored channel = %q, want %q", records[0].Channel, ChannelUser)
	}
}

func TestSubmitEndpointRejectsInvalid(t *testing.T) {
	router, _ := newTestRouter()

	for name, body := range map[string]string{
		"malformed json":    `{`,
		"missing user_text": `{"predicted_label":"RAM Upgrade","confidence":0.9,"source":"rule"}`,
		"missing source":    `{"user_text":"pc slow","predicted_label":"RAM Upgrade","confidence":0.9}`,
		"unknown component": `{"user_text":"pc slow","predicted_label":"Flux Capacitor","confidence":0.9,"source":"rule"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, resp.Code)
		}
	}
}
