package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

	if err := db.AutoMigrate(&News{}, &activity.ActivityLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupNewsRouter(svc *NewsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	nc := &NewsController{NewsService: svc, LS: &activity.LogService{DB: svc.DB}}
	g := r.Group("/api/news")
	{
		g.GET("", nc.GetAllNews)
		g.POST("", nc.CreateNews)
		g.GET("/:id", nc.GetNews)
		g.PUT("/:id", nc.UpdateNews)
		g.DELETE("/:id", nc.DeleteNews)
	}
	return r
}

func doReq(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
