package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/config"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/handler"
)

// Setup 配置 Gin 引擎和路由
func Setup(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("campaign_admin_session", store))

	api := handler.NewAPI(db.DB, cfg.UploadDir, cfg.UploadURLPath)

	// 上传文件的静态服务
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 前台公开接口：仅返回已发布内容
	public := r.Group("/api")
	{
		public.GET("/menu", api.PublicMenu)
		public.GET("/pages", api.PublicListPages)
		public.GET("/pages/:slug", api.PublicGetPage)
		public.GET("/posts", api.PublicListPosts)
		public.GET("/posts/:slug", api.PublicGetPost)
		public.GET("/events", api.PublicListEvents)
		public.GET("/events/:slug", api.PublicGetEvent)
		public.GET("/team", api.PublicListTeam)
		public.GET("/team/:slug", api.PublicGetTeamMember)
		public.GET("/galleries", api.PublicListGalleries)
		public.GET("/galleries/:slug", api.PublicGetGallery)
		public.GET("/settings", api.PublicSettings)
		public.GET("/settings/:key", api.PublicGetSetting)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.Dashboard)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/pages", api.ListPages)
				adminAPI.GET("/pages/:id", api.GetPage)
				adminAPI.POST("/pages", api.CreatePage)
				adminAPI.PUT("/pages/:id", api.UpdatePage)
				adminAPI.DELETE("/pages/:id", api.DeletePage)

				adminAPI.GET("/posts", api.ListPosts)
				adminAPI.GET("/posts/:id", api.GetPost)
				adminAPI.POST("/posts", api.CreatePost)
				adminAPI.PUT("/posts/:id", api.UpdatePost)
				adminAPI.DELETE("/posts/:id", api.DeletePost)

				adminAPI.GET("/events", api.ListEvents)
				adminAPI.GET("/events/:id", api.GetEvent)
				adminAPI.POST("/events", api.CreateEvent)
				adminAPI.PUT("/events/:id", api.UpdateEvent)
				adminAPI.DELETE("/events/:id", api.DeleteEvent)

				adminAPI.GET("/team", api.ListTeamMembers)
				adminAPI.GET("/team/:id", api.GetTeamMember)
				adminAPI.POST("/team", api.CreateTeamMember)
				adminAPI.PUT("/team/:id", api.UpdateTeamMember)
				adminAPI.DELETE("/team/:id", api.DeleteTeamMember)

				adminAPI.GET("/galleries", api.ListGalleries)
				adminAPI.GET("/galleries/:id", api.GetGallery)
				adminAPI.POST("/galleries", api.CreateGallery)
				adminAPI.PUT("/galleries/:id", api.UpdateGallery)
				adminAPI.DELETE("/galleries/:id", api.DeleteGallery)

				adminAPI.GET("/menus", api.ListMenuItems)
				adminAPI.POST("/menus", api.CreateMenuItem)
				adminAPI.PUT("/menus/:id", api.UpdateMenuItem)
				adminAPI.DELETE("/menus/:id", api.DeleteMenuItem)
				adminAPI.POST("/menus/:id/move-up", api.MoveMenuItemUp)
				adminAPI.POST("/menus/:id/move-down", api.MoveMenuItemDown)

				adminAPI.GET("/settings", api.ListSettings)
				adminAPI.PUT("/settings", api.UpdateSettings)

				adminAPI.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}
