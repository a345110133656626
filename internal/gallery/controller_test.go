package gallery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupGalleryRouter(svc *GalleryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	gc := &GalleryController{GalleryService: svc}
	g := r.Group("/api/gallery")
	{
		g.GET("", gc.GetItems)
		g.GET("/facilities", gc.GetFacilities)
		g.POST("", gc.CreateItem)
		g.DELETE("/:id", gc.DeleteItem)
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

func TestGalleryController_Create_MissingImage_400(t *testing.T) {
	db := newTestDB(t)
	r := setupGalleryRouter(&GalleryService{DB: db})

	w := doReq(r, http.MethodPost, "/api/gallery", []byte(`{"caption":"tanpa foto"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestGalleryController_Create_ListFiltered(t *testing.T) {
	db := newTestDB(t)
	r := setupGalleryRouter(&GalleryService{DB: db})

	for _, body := range []string{
		`{"image":"1.jpg","category":"Kegiatan"}`,
		`{"image":"2.jpg","category":"Fasilitas"}`,
	} {
		w := doReq(r, http.MethodPost, "/api/gallery", []byte(body))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	}

	w := doReq(r, http.MethodGet, "/api/gallery?category=Fasilitas", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []GalleryItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].Image != "2.jpg" {
		t.Fatalf("unexpected filtered list: %#v", items)
	}
}

func TestGalleryController_Facilities(t *testing.T) {
	db := newTestDB(t)
	r := setupGalleryRouter(&GalleryService{DB: db})

	for _, body := range []string{
		`{"image":"aula.jpg","category":"Fasilitas"}`,
		`{"image":"lomba.jpg","category":"Prestasi"}`,
	} {
		if w := doReq(r, http.MethodPost, "/api/gallery", []byte(body)); w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doReq(r, http.MethodGet, "/api/gallery/facilities", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []GalleryItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].Image != "aula.jpg" {
		t.Fatalf("unexpected facilities list: %#v", items)
	}
}

func TestGalleryController_Delete_UnknownID_404(t *testing.T) {
	db := newTestDB(t)
	r := setupGalleryRouter(&GalleryService{DB: db})

	w := doReq(r, http.MethodDelete, "/api/gallery/77", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
