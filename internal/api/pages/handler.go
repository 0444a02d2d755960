package pagesapi

import (
	"net/http"
	"strings"
	"time"

	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"
	"sitebuilder-app/internal/logging"

	"github.com/gin-gonic/gin"
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

// sitePage loads a page and checks it belongs to the given site. A page
// from another site answers 404, not 403; the caller already proved site
// ownership.
func sitePage(c *gin.Context, pageID, siteID string) (*pages.Page, bool) {
	var page pages.Page
	if err := database.DB.First(&page, "id = ?", pageID).Error; err != nil || page.SiteID != siteID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return nil, false
	}
	return &page, true
}

// GET /api/pages/:siteId
func ListPages(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pages"})
		return
	}

	c.JSON(http.StatusOK, pageList)
}

// POST /api/pages
func CreatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		SiteID string `json:"siteId"`
		Name   string `json:"name"`
		Title  string `json:"title"`
		Slug   string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	site, ok := ownedSite(c, input.SiteID, userID)
	if !ok {
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and title are required"})
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = sites.MakeSlug(input.Name)
	}

	var count int64
	if err := database.DB.Model(&pages.Page{}).Where("site_id = ?", site.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	page := pages.Page{
		SiteID:    site.ID,
		Name:      input.Name,
		Title:     input.Title,
		Slug:      slug,
		Status:    pages.StatusDraft,
		Content:   pages.Blocks{},
		SEO:       pages.SEO{Title: input.Title, Keywords: []string{}},
		SortIndex: int(count),
	}

	if err := database.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	logging.L.Infow("page created", "pageId", page.ID, "siteId", site.ID, "pageName", page.Name)

	c.JSON(http.StatusCreated, gin.H{"success": true, "page": page})
}

// GET /api/pages/:siteId/:pageId
func GetPage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	page, ok := sitePage(c, c.Param("pageId"), site.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, page)
}

// PUT /api/pages/:pageId
func UpdatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		SiteID  string       `json:"siteId"`
		Title   *string      `json:"title"`
		Content pages.Blocks `json:"content"`
		SEO     *pages.SEO   `json:"seo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	site, ok := ownedSite(c, input.SiteID, userID)
	if !ok {
		return
	}

	page, ok := sitePage(c, c.Param("pageId"), site.ID)
	if !ok {
		return
	}

	if input.Title != nil && *input.Title != "" {
		page.Title = *input.Title
	}
	if input.Content != nil {
		page.Content = input.Content
	}
	if input.SEO != nil {
		page.SEO = mergeSEO(page.SEO, *input.SEO)
	}

	// Any edit sends the page back to draft until the next publish.
	page.Status = pages.StatusDraft
	page.UpdatedAt = time.Now()

	if err := database.DB.Model(&pages.Page{}).
		Where("id = ?", page.ID).
		Updates(map[string]interface{}{
			"title":      page.Title,
			"content":    page.Content,
			"seo":        page.SEO,
			"status":     page.Status,
			"updated_at": page.UpdatedAt,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	logging.L.Infow("page updated", "pageId", page.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "page": page})
}

// DELETE /api/pages/:pageId
func DeletePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		SiteID string `json:"siteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	site, ok := ownedSite(c, input.SiteID, userID)
	if !ok {
		return
	}

	page, ok := sitePage(c, c.Param("pageId"), site.ID)
	if !ok {
		return
	}

	if err := database.DB.Delete(&pages.Page{}, "id = ?", page.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}

	logging.L.Infow("page deleted", "pageId", page.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Page deleted"})
}

func mergeSEO(base, in pages.SEO) pages.SEO {
	if in.Title != "" {
		base.Title = in.Title
	}
	if in.Description != "" {
		base.Description = in.Description
	}
	if in.Keywords != nil {
		base.Keywords = in.Keywords
	}
	return base
}
