package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graphtier/graphtier/pkg/layout"
)

func testServer() *Server {
	return New(DefaultConfig(), nil)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func classRequest() map[string]any {
	return map[string]any{
		"nodes": []map[string]any{
			{"id": "Base", "type": "class"},
			{"id": "User", "type": "class"},
		},
		"edges": []map[string]any{
			{"id": "e1", "from": "User", "to": "Base", "kind": "inheritance"},
		},
	}
}

func TestHealthz(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestLayoutEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/api/v1/layout", classRequest())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result layout.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(result.Positions) != 2 {
		t.Errorf("positioned %d nodes, want 2", len(result.Positions))
	}
	if len(result.Routes) != 1 {
		t.Errorf("routed %d edges, want 1", len(result.Routes))
	}
	if result.Positions["Base"].Y >= result.Positions["User"].Y {
		t.Error("parent class should sit above its subclass in the default TB layout")
	}
}

func TestLayoutEndpointOptionOverride(t *testing.T) {
	s := testServer()

	req := classRequest()
	req["options"] = map[string]any{"direction": "LR"}
	rec := postJSON(t, s, "/api/v1/layout", req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result layout.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if result.Positions["Base"].X >= result.Positions["User"].X {
		t.Error("LR layout should place the parent class left of its subclass")
	}
}

func TestLayoutEndpointRejectsMalformedBody(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/layout", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errBody errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("parse error response: %v", err)
	}
	if errBody.Code != "INVALID_FORMAT" {
		t.Errorf("error code = %q, want INVALID_FORMAT", errBody.Code)
	}
}

func TestLayoutEndpointRejectsBadGraph(t *testing.T) {
	s := testServer()

	tests := []struct {
		name  string
		nodes []map[string]any
	}{
		{"empty node ID", []map[string]any{{"id": ""}}},
		{"duplicate node ID", []map[string]any{{"id": "a"}, {"id": "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, "/api/v1/layout", map[string]any{"nodes": tt.nodes})
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLayoutEndpointRejectsBadDirection(t *testing.T) {
	s := testServer()

	req := classRequest()
	req["options"] = map[string]any{"direction": "NE"}
	rec := postJSON(t, s, "/api/v1/layout", req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errBody errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("parse error response: %v", err)
	}
	if errBody.Code != "INVALID_DIRECTION" {
		t.Errorf("error code = %q, want INVALID_DIRECTION", errBody.Code)
	}
}

func TestGridEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/api/v1/layout/grid", map[string]any{
		"nodes": []map[string]any{{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result layout.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(result.Positions) != 4 {
		t.Errorf("positioned %d nodes, want 4", len(result.Positions))
	}
	if len(result.Routes) != 0 {
		t.Error("grid layout should not route edges")
	}
}

func TestTieredEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/api/v1/layout/tiered", map[string]any{
		"nodes": []map[string]any{
			{"id": "report", "type": "document"},
			{"id": "intro", "type": "section"},
		},
		"edges": []map[string]any{{"from": "report", "to": "intro"}},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var cells map[string]layout.TierCell
	if err := json.Unmarshal(rec.Body.Bytes(), &cells); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if cells["report"].Column != 0 || cells["intro"].Column != 1 {
		t.Errorf("columns = %d/%d, want 0/1", cells["report"].Column, cells["intro"].Column)
	}
}

func TestClearCacheEndpoint(t *testing.T) {
	s := testServer()

	// Prime the cache, then clear it.
	if rec := postJSON(t, s, "/api/v1/layout", classRequest()); rec.Code != http.StatusOK {
		t.Fatalf("prime layout failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
