package users

import (
	"net/http"

	"sitebuilder-app/database"
	"sitebuilder-app/internal/domain/sites"
	"sitebuilder-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /api/me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	siteIDs := []string{}
	if err := database.DB.Model(&sites.Site{}).
		Where("owner_id = ?", userID).
		Order("created_at ASC").
		Pluck("id", &siteIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"sites": siteIDs,
	})
}
