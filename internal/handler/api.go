package handler

import (
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageService
	posts     *service.PostService
	events    *service.EventService
	team      *service.TeamService
	galleries *service.EventGalleryService
	menus     *service.MenuService
	settings  *service.SettingService
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		pages:     service.NewPageService(gdb),
		posts:     service.NewPostService(gdb),
		events:    service.NewEventService(gdb),
		team:      service.NewTeamService(gdb),
		galleries: service.NewEventGalleryService(gdb),
		menus:     service.NewMenuService(gdb),
		settings:  service.NewSettingService(gdb),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
