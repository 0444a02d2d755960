package mediaapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sitebuilder-app/config"
	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/media"
	"sitebuilder-app/internal/domain/sites"
	"sitebuilder-app/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 25 << 20 // 25MB

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

// POST /api/media/upload  (multipart: file + siteId)
func UploadMedia(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	siteID := c.PostForm("siteId")
	site, ok := ownedSite(c, siteID, userID)
	if !ok {
		return
	}

	// Uploads land under a per-site folder; the uuid prefix keeps
	// same-named uploads from clobbering each other.
	original := filepath.Base(file.Filename)
	filename := uuid.New().String() + "-" + original

	uploadDir := filepath.Join(config.UPLOADS_DIR, site.ID)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	record := media.Media{
		SiteID:   site.ID,
		Filename: original,
		Filepath: "/uploads/" + site.ID + "/" + filename,
		Size:     file.Size,
		Mimetype: file.Header.Get("Content-Type"),
	}

	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media record"})
		return
	}

	logging.L.Infow("media uploaded", "mediaId", record.ID, "filename", original, "siteId", site.ID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "media": record})
}

// GET /api/media/:siteId
func ListMedia(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	site, ok := ownedSite(c, c.Param("siteId"), userID)
	if !ok {
		return
	}

	var mediaList []media.Media
	if err := database.DB.
		Where("site_id = ?", site.ID).
		Order("created_at DESC").
		Find(&mediaList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, mediaList)
}

// removeMediaFile deletes the stored file. An already-gone file is fine;
// anything else gets logged so the orphan can be cleaned up later.
func removeMediaFile(path, mediaID string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.L.Warnw("media file removal failed", "mediaId", mediaID, "path", path, "error", err)
	}
}

// DELETE /api/media/:mediaId  (siteId in body)
func DeleteMedia(c *gin.Context) {
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

	var record media.Media
	if err := database.DB.First(&record, "id = ?", c.Param("mediaId")).Error; err != nil || record.SiteID != site.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	// Filepath is /uploads/<siteId>/<filename>; resolve under the upload
	// root. Missing file is fine, the record still goes.
	rel := strings.TrimPrefix(record.Filepath, "/uploads/")
	removeMediaFile(filepath.Join(config.UPLOADS_DIR, rel), record.ID)

	if err := database.DB.Delete(&media.Media{}, "id = ?", record.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	logging.L.Infow("media deleted", "mediaId", record.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media deleted"})
}
