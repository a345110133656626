package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *DashboardService
}

func (dc *DashboardController) GetCounts(c *gin.Context) {
	counts, err := dc.DashboardService.GetCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}
