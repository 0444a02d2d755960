package admin

import (
	"net/http"

	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/media"
	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"
	"sitebuilder-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Status         string `json:"status"`
	TotalUsers     int64  `json:"total_users"`
	TotalSites     int64  `json:"total_sites"`
	PublishedSites int64  `json:"published_sites"`
	TotalPages     int64  `json:"total_pages"`
	TotalMedia     int64  `json:"total_media"`
}

// GET /admin/stats
func GetStats(c *gin.Context) {
	var stats Stats
	stats.Status = "running"

	if err := database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve stats"})
		return
	}
	if err := database.DB.Model(&sites.Site{}).Count(&stats.TotalSites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve stats"})
		return
	}
	if err := database.DB.Model(&sites.Site{}).Where("status = ?", sites.StatusPublished).Count(&stats.PublishedSites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve stats"})
		return
	}
	if err := database.DB.Model(&pages.Page{}).Count(&stats.TotalPages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve stats"})
		return
	}
	if err := database.DB.Model(&media.Media{}).Count(&stats.TotalMedia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
