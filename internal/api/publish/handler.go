package publishapi

import (
	"net/http"
	"time"

	"sitebuilder-app/config"
	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/media"
	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"
	"sitebuilder-app/internal/logging"
	"sitebuilder-app/internal/publish"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func ownedSite(c *gin.Context, siteID string, userID uint) (*sites.Site, bool) {
	var site sites.Site
	if err := database.DB.First(&site, "id = ? AND owner_id = ?", siteID, userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return &site, true
}

// POST /api/publish/:siteId
//
// Renders the static snapshot, copies media, then flips site and page
// statuses in one transaction. Filesystem writes happen first: if the
// status update fails the folder stays on disk and the caller gets a 500,
// matching the no-rollback contract of the pipeline.
func PublishSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	var pageList []pages.Page
	if err := database.DB.
		Where("site_id = ?", site.ID).
		Order("sort_index ASC").
		Find(&pageList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish site"})
		return
	}

	var mediaCount int64
	if err := database.DB.Model(&media.Media{}).Where("site_id = ?", site.ID).Count(&mediaCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish site"})
		return
	}

	if err := publish.WriteSnapshot(config.SITES_DIR, config.UPLOADS_DIR, site, pageList); err != nil {
		logging.L.Errorw("snapshot write failed", "siteId", site.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish site"})
		return
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sites.Site{}).
			Where("id = ?", site.ID).
			Updates(map[string]interface{}{
				"status":       sites.StatusPublished,
				"published_at": now,
				"updated_at":   now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&pages.Page{}).
			Where("site_id = ?", site.ID).
			Updates(map[string]interface{}{
				"status":       pages.StatusPublished,
				"published_at": now,
			}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish site"})
		return
	}

	logging.L.Infow("site published", "siteId", site.ID, "siteName", site.Name,
		"pages", len(pageList), "media", mediaCount)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Site published successfully",
		"site": gin.H{
			"id":     site.ID,
			"name":   site.Name,
			"status": sites.StatusPublished,
			"url":    sites.BuildPublicURL(site.Name),
		},
	})
}

// POST /api/publish/:siteId/unpublish
//
// Pages keep their published status; only the site flips back. The draft
// flag returns on the next page edit.
func UnpublishSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	if err := publish.RemoveSnapshot(config.SITES_DIR, site); err != nil {
		logging.L.Errorw("snapshot remove failed", "siteId", site.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish site"})
		return
	}

	if err := database.DB.Model(&sites.Site{}).
		Where("id = ?", site.ID).
		Updates(map[string]interface{}{
			"status":     sites.StatusUnpublished,
			"updated_at": time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish site"})
		return
	}

	logging.L.Infow("site unpublished", "siteId", site.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Site unpublished successfully",
	})
}
