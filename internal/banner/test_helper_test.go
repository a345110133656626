package banner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"school-admin-api/internal/activity"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Banner{}, &activity.ActivityLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupBannerRouter(svc *BannerService, ls *activity.LogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	bc := &BannerController{BannerService: svc, LS: ls}
	g := r.Group("/api/banners")
	{
		g.GET("", bc.GetAllBanners)
		g.POST("", bc.CreateBanner)
		g.PUT("/:id", bc.UpdateBanner)
		g.DELETE("/:id", bc.DeleteBanner)
		g.POST("/bulk", bc.BulkDeleteBanners)
	}
	return r
}

func doJSON(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func uintsCSV(ids ...uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ",")
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
