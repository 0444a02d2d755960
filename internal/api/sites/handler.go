package sitesapi

import (
	"net/http"
	"strings"

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

// GET /api/sites
func ListSites(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var siteList []sites.Site
	if err := database.DB.
		Where("owner_id = ?", userID).
		Order("created_at ASC").
		Find(&siteList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}

	for i := range siteList {
		if err := attachPageIDs(&siteList[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
			return
		}
	}

	c.JSON(http.StatusOK, siteList)
}

// POST /api/sites
func CreateSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		Name        string `json:"name"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and title are required"})
		return
	}

	site := sites.Site{
		Name:        sites.MakeSlug(input.Name),
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     userID,
		Status:      sites.StatusUnpublished,
		Settings:    sites.DefaultSettings(),
	}

	var count int64
	if err := database.DB.Model(&sites.Site{}).Where("name = ?", site.Name).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Site name already taken"})
		return
	}

	if err := database.DB.Create(&site).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}

	if err := publish.WriteStarter(config.SITES_DIR, &site); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site folder"})
		return
	}

	site.PageIDs = []string{}

	logging.L.Infow("site created", "siteId", site.ID, "siteName", site.Name, "userId", userID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "site": site})
}

// GET /api/sites/:siteId
func GetSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	if err := attachPageIDs(site); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site"})
		return
	}

	c.JSON(http.StatusOK, site)
}

// PUT /api/sites/:siteId
func UpdateSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	var input struct {
		Title       *string         `json:"title"`
		Description *string         `json:"description"`
		Settings    *sites.Settings `json:"settings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	if input.Title != nil && *input.Title != "" {
		site.Title = *input.Title
	}
	if input.Description != nil {
		site.Description = *input.Description
	}
	if input.Settings != nil {
		site.Settings = mergeSettings(site.Settings, *input.Settings)
	}

	// Single UPDATE; record identity never leaves the table.
	if err := database.DB.Model(&sites.Site{}).
		Where("id = ?", site.ID).
		Updates(map[string]interface{}{
			"title":       site.Title,
			"description": site.Description,
			"settings":    site.Settings,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		return
	}

	if err := attachPageIDs(site); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		return
	}

	logging.L.Infow("site updated", "siteId", site.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "site": site})
}

// DELETE /api/sites/:siteId
func DeleteSite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	if err := publish.RemoveSiteDirs(config.SITES_DIR, site); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site folder"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_id = ?", site.ID).Delete(&pages.Page{}).Error; err != nil {
			return err
		}
		if err := tx.Where("site_id = ?", site.ID).Delete(&media.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sites.Site{}, "id = ?", site.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		return
	}

	logging.L.Infow("site deleted", "siteId", site.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Site deleted"})
}

func attachPageIDs(site *sites.Site) error {
	ids := []string{}
	if err := database.DB.Model(&pages.Page{}).
		Where("site_id = ?", site.ID).
		Order("sort_index ASC").
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	site.PageIDs = ids
	return nil
}

// mergeSettings overlays non-empty fields of in onto base, so a client can
// send just the colors without blanking the fonts.
func mergeSettings(base, in sites.Settings) sites.Settings {
	if in.Favicon != "" {
		base.Favicon = in.Favicon
	}
	if in.Logo != "" {
		base.Logo = in.Logo
	}
	if in.Colors.Primary != "" {
		base.Colors.Primary = in.Colors.Primary
	}
	if in.Colors.Secondary != "" {
		base.Colors.Secondary = in.Colors.Secondary
	}
	if in.Fonts.Heading != "" {
		base.Fonts.Heading = in.Fonts.Heading
	}
	if in.Fonts.Body != "" {
		base.Fonts.Body = in.Fonts.Body
	}
	return base
}
