package upload

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	UploadService *UploadService
}

func (uc *UploadController) SignUpload(c *gin.Context) {
	resp, err := uc.UploadService.SignUpload(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
