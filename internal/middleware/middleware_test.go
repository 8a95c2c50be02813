package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setupAdminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminOnly())
	router.GET("/test", func(c *gin.Context) {
		name, _ := c.Get("adminName")
		c.JSON(http.StatusOK, gin.H{"adminName": name})
	})
	return router
}

// TestAdminOnly_MissingAuthHeader tests the middleware with missing Authorization header
func TestAdminOnly_MissingAuthHeader(t *testing.T) {
	router := setupAdminTestRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAdminOnly_InvalidAuthFormat tests the middleware with invalid Bearer format
func TestAdminOnly_InvalidAuthFormat(t *testing.T) {
	router := setupAdminTestRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAdminOnly_InvalidToken tests the middleware with an invalid token
func TestAdminOnly_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	router := setupAdminTestRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token_xyz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAdminOnly_ValidToken tests the middleware with a valid admin token
func TestAdminOnly_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	token, err := GenerateAdminToken("staff")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	router := setupAdminTestRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

// TestAdminOnly_NonAdminRole tests that a valid token without the admin role is rejected
func TestAdminOnly_NonAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	claims := jwt.MapClaims{"name": "guest", "role": "guest"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-testing-only"))
	if err != nil {
		t.Fatal(err)
	}

	router := setupAdminTestRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
