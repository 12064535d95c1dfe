package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	api, gdb := setupTestDB(t)
	seedUser(t, gdb, "admin", "campaign-2027")

	router := newSessionRouter()
	router.POST("/admin/login", api.Login)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "campaign-2027"})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if len(recorder.Result().Cookies()) == 0 {
		t.Fatal("expected session cookie to be set")
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	api, gdb := setupTestDB(t)
	seedUser(t, gdb, "admin", "campaign-2027")

	router := newSessionRouter()
	router.POST("/admin/login", api.Login)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}

func TestAuthRequiredBlocksAnonymous(t *testing.T) {
	api, _ := setupTestDB(t)

	router := newSessionRouter()
	router.GET("/admin/dashboard", AuthRequired(), api.Dashboard)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}

func TestDashboardCounts(t *testing.T) {
	api, gdb := setupTestDB(t)
	userID := seedUser(t, gdb, "admin", "pw")

	router := newSessionRouter()
	router.GET("/admin/dashboard", asUser(userID), AuthRequired(), api.Dashboard)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var payload struct {
		Counts map[string]int64 `json:"counts"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode dashboard payload: %v", err)
	}
	for _, key := range []string{"pages", "posts", "events", "team", "galleries", "menuItems"} {
		if _, ok := payload.Counts[key]; !ok {
			t.Fatalf("dashboard counts missing %q", key)
		}
	}
}

func TestDashboardSurfacesStoreFailure(t *testing.T) {
	api, gdb := setupTestDB(t)
	userID := seedUser(t, gdb, "admin", "pw")

	router := newSessionRouter()
	router.GET("/admin/dashboard", asUser(userID), AuthRequired(), api.Dashboard)

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.Close()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 when the store is down, got %d", recorder.Code)
	}
}
