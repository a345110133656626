package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *ProfileService
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.ProfileService.GetProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.ProfileService.UpdateProfile(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
