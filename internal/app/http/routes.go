package routes

import (
	"net/http"
	"path/filepath"

	"sitebuilder-app/config"
	adminapi "sitebuilder-app/internal/api/admin"
	authapi "sitebuilder-app/internal/api/auth"
	mediaapi "sitebuilder-app/internal/api/media"
	pagesapi "sitebuilder-app/internal/api/pages"
	publishapi "sitebuilder-app/internal/api/publish"
	sitesapi "sitebuilder-app/internal/api/sites"
	usersapi "sitebuilder-app/internal/api/users"
	"sitebuilder-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Published sites are plain static files.
	r.Static("/sites/published", filepath.Join(config.SITES_DIR, "published"))

	public := r.Group("/auth")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/logout", authapi.Logout)

	public.GET("/google", authapi.GoogleStart)
	public.GET("/google/callback", authapi.GoogleCallback)

	// Authenticated
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(), middleware.SanitizeInputMiddleware())

	api.GET("/me", usersapi.GetCurrentUser)

	api.GET("/sites", sitesapi.ListSites)
	api.POST("/sites", sitesapi.CreateSite)
	api.GET("/sites/:siteId", sitesapi.GetSite)
	api.PUT("/sites/:siteId", sitesapi.UpdateSite)
	api.DELETE("/sites/:siteId", sitesapi.DeleteSite)

	api.POST("/pages", pagesapi.CreatePage)
	api.GET("/pages/:siteId", pagesapi.ListPages)
	api.GET("/pages/:siteId/:pageId", pagesapi.GetPage)
	api.PUT("/pages/:pageId", pagesapi.UpdatePage)
	api.DELETE("/pages/:pageId", pagesapi.DeletePage)

	api.POST("/media/upload", mediaapi.UploadMedia)
	api.GET("/media/:siteId", mediaapi.ListMedia)
	api.DELETE("/media/:mediaId", mediaapi.DeleteMedia)

	api.POST("/publish/:siteId", publishapi.PublishSite)
	api.POST("/publish/:siteId/unpublish", publishapi.UnpublishSite)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetStats)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
