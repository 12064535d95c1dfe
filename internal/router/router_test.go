package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/config"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Page{},
		&db.Post{},
		&db.Event{},
		&db.TeamMember{},
		&db.EventGallery{},
		&db.MenuItem{},
		&db.Setting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return Setup(config.AppConfig{
		SessionSecret: "test-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
	})
}

func TestPingRoute(t *testing.T) {
	engine := setupRouterTest(t)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
}

func TestAdminAPIRequiresAuth(t *testing.T) {
	engine := setupRouterTest(t)

	paths := []string{
		"/admin/api/pages",
		"/admin/api/posts",
		"/admin/api/menus",
		"/admin/api/settings",
	}
	for _, path := range paths {
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected %s to respond 401, got %d", path, recorder.Code)
		}
	}
}

func TestPublicRoutesAreOpen(t *testing.T) {
	engine := setupRouterTest(t)

	paths := []string{
		"/api/menu",
		"/api/pages",
		"/api/posts",
		"/api/events",
		"/api/team",
		"/api/galleries",
		"/api/settings",
	}
	for _, path := range paths {
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected %s to respond 200, got %d", path, recorder.Code)
		}
	}
}
