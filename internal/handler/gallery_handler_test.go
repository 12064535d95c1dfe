package handler

import (
	"net/http"
	"testing"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
)

func TestCreateGalleryRequiresImages(t *testing.T) {
	api, gdb := setupTestDB(t)

	router := newSessionRouter()
	router.POST("/admin/api/galleries", api.CreateGallery)

	recorder := postJSONRequest(t, router, http.MethodPost, "/admin/api/galleries", map[string]interface{}{
		"title":  "Empty Album",
		"images": []string{},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty image list, got %d", recorder.Code)
	}

	var count int64
	gdb.Model(&db.EventGallery{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected nothing persisted, found %d galleries", count)
	}

	recorder = postJSONRequest(t, router, http.MethodPost, "/admin/api/galleries", map[string]interface{}{
		"title":  "Kano Rally",
		"images": []string{"/static/uploads/rally-1.jpg"},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
