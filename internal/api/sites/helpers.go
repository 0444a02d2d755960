package sitesapi

import (
	"net/http"

	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/sites"

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

// ownedSite loads a site the caller owns. Missing record and foreign owner
// answer identically so callers can't tell whether a site exists.
func ownedSite(c *gin.Context, siteID string, userID uint) (*sites.Site, bool) {
	var site sites.Site
	if err := database.DB.First(&site, "id = ? AND owner_id = ?", siteID, userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return &site, true
}
