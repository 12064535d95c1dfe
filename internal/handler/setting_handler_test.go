package handler

import (
	"net/http"
	"testing"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
)

func TestUpdateSettingsBulk(t *testing.T) {
	api, gdb := setupTestDB(t)

	router := newSessionRouter()
	router.PUT("/admin/api/settings", api.UpdateSettings)

	recorder := postJSONRequest(t, router, http.MethodPut, "/admin/api/settings", map[string]interface{}{
		"settings": []map[string]string{
			{"key": "site_name", "value": "Transporters for Tinubu", "type": "text"},
			{"key": "maintenance_mode", "value": "true", "type": "boolean"},
		},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var setting db.Setting
	if err := gdb.Where("key = ?", "maintenance_mode").First(&setting).Error; err != nil {
		t.Fatalf("expected maintenance_mode persisted: %v", err)
	}
	if setting.Value != "true" {
		t.Fatalf("expected value 'true', got %q", setting.Value)
	}
}

func TestUpdateSettingsRejectsInvalidBatch(t *testing.T) {
	api, gdb := setupTestDB(t)

	router := newSessionRouter()
	router.PUT("/admin/api/settings", api.UpdateSettings)

	recorder := postJSONRequest(t, router, http.MethodPut, "/admin/api/settings", map[string]interface{}{
		"settings": []map[string]string{
			{"key": "site_name", "value": "Fine", "type": "text"},
			{"key": "maintenance_mode", "value": "maybe", "type": "boolean"},
		},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var count int64
	gdb.Model(&db.Setting{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rejected batch to write nothing, found %d rows", count)
	}
}

func TestUpdateSettingsRejectsEmptyBatch(t *testing.T) {
	api, _ := setupTestDB(t)

	router := newSessionRouter()
	router.PUT("/admin/api/settings", api.UpdateSettings)

	recorder := postJSONRequest(t, router, http.MethodPut, "/admin/api/settings", map[string]interface{}{
		"settings": []map[string]string{},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}
