package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"school-admin-api/config"
	"school-admin-api/internal/activity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	stateCookie   = "oauth_state"
	sessionCookie = "access_token"
	sessionTTL    = 7 * 24 * time.Hour
)

type AuthController struct {
	AuthService AuthServicePort
	LS          LogServicePort
}

// Login starts the Google consent flow. A random state lands in a short-lived
// cookie so the callback can reject forged redirects.
func (ac *AuthController) Login(c *gin.Context) {
	state := uuid.NewString()

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	c.Redirect(http.StatusTemporaryRedirect, ac.AuthService.LoginURL(state))
}

func (ac *AuthController) Callback(c *gin.Context) {
	cfg := config.LoadConfig()

	state := c.Query("state")
	stateFromCookie, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != stateFromCookie {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	email, err := ac.AuthService.EmailForCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The state cookie is single-use
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	if !strings.EqualFold(email, cfg.AdminEmail) {
		log := activity.ActivityLog{
			Level:   "WARN",
			Service: "auth",
			Action:  "LOGIN_BLOCKED",
			Message: fmt.Sprintf("Sign-in rejected for non-admin account %s", email),
		}
		if err := ac.LS.Log(log, gin.H{"email": email}); err != nil {
			fmt.Printf("Failed to insert log: %v\n", err)
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Not an admin account"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookie,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode, // required for cross-site cookies
	})

	log := activity.ActivityLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("Admin logged in with email: %s", email),
	}
	if err := ac.LS.Log(log, gin.H{"email": email}); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	if cfg.FrontendURL != "" {
		c.Redirect(http.StatusTemporaryRedirect, cfg.FrontendURL)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "email": email})
}

func (ac *AuthController) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie(sessionCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	email, _ := claims["email"].(string)
	if email == "" || !strings.EqualFold(email, cfg.AdminEmail) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not an admin account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email})
}
