package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGatedRouter(username, password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/products", AdminAuth(username, password), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	r := newGatedRouter("admin", "secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized") {
		t.Fatalf("expected Unauthorized body, got %s", w.Body.String())
	}
}

func TestAdminAuthRejectsWrongCredentials(t *testing.T) {
	r := newGatedRouter("admin", "secret")

	tests := []string{
		basicHeader("admin", "wrong"),
		basicHeader("other", "secret"),
		"Bearer sometoken",
		"Basic not-base64!!",
	}
	for _, header := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAdminAuthAllowsConfiguredCredentials(t *testing.T) {
	r := newGatedRouter("admin", "secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", basicHeader("admin", "secret"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminAuthDeniesEverythingWithoutConfiguredSecrets(t *testing.T) {
	r := newGatedRouter("", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", basicHeader("", ""))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unset secrets, got %d", w.Code)
	}
}
