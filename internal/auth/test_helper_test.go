package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-admin-api/internal/activity"

	"github.com/gin-gonic/gin"
)

type mockAuthService struct {
	LoginURLFn     func(state string) string
	EmailForCodeFn func(ctx context.Context, code string) (string, error)
}

func (m *mockAuthService) LoginURL(state string) string {
	return m.LoginURLFn(state)
}

func (m *mockAuthService) EmailForCode(ctx context.Context, code string) (string, error) {
	return m.EmailForCodeFn(ctx, code)
}

type mockLogService struct {
	Entries []activity.ActivityLog
}

func (m *mockLogService) Log(entry activity.ActivityLog, metadata interface{}) error {
	m.Entries = append(m.Entries, entry)
	return nil
}

func setupAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/login", ac.Login)
	r.GET("/api/auth/callback", ac.Callback)
	r.POST("/api/auth/logout", ac.Logout)
	r.GET("/api/auth/me", ac.Me)
	return r
}

func getWithCookies(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	return nil
}

func setAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@slbpelitakasih.sch.id")
	t.Setenv("FRONTEND_URL", "")
}

func assertErr(msg string) error { return errors.New(msg) }
