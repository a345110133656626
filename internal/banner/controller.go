package banner

import (
	"errors"
	"fmt"
	"net/http"
	"school-admin-api/internal/activity"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BannerController struct {
	BannerService *BannerService
	LS            *activity.LogService
}

func (bc *BannerController) GetAllBanners(c *gin.Context) {
	banners, err := bc.BannerService.GetAllBanners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (bc *BannerController) CreateBanner(c *gin.Context) {
	var input CreateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	banner, err := bc.BannerService.CreateBanner(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry := activity.ActivityLog{
		Level:   "INFO",
		Service: "banner",
		Action:  "CREATE",
		Message: fmt.Sprintf("Banner %d created", banner.ID),
	}
	if err := bc.LS.Log(entry, banner); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, banner)
}

func (bc *BannerController) UpdateBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid banner id"})
		return
	}

	var input UpdateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	banner, err := bc.BannerService.UpdateBanner(uint(id), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (bc *BannerController) DeleteBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid banner id"})
		return
	}

	if err := bc.BannerService.DeleteBanner(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

func (bc *BannerController) BulkDeleteBanners(c *gin.Context) {
	var input BulkDeleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No IDs provided"})
		return
	}

	deleted, err := bc.BannerService.DeleteBanners(input.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry := activity.ActivityLog{
		Level:   "INFO",
		Service: "banner",
		Action:  "BULK_DELETE",
		Message: fmt.Sprintf("%d banners deleted", deleted),
	}
	if err := bc.LS.Log(entry, input); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banners deleted successfully",
		"deleted": deleted,
	})
}
