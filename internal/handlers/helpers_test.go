package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"candleshop/internal/repository"
)

func runRepoError(t *testing.T, entity string, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondRepoError(c, "TEST", entity, err)
	return w.Code, w.Body.String()
}

func TestRespondRepoErrorNotFound(t *testing.T) {
	code, body := runRepoError(t, "Product", fmt.Errorf("product x: %w", repository.ErrNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if !strings.Contains(body, "Product not found") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRespondRepoErrorActiveHeroGuard(t *testing.T) {
	code, body := runRepoError(t, "Hero section", repository.ErrActiveHero)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(body, "Cannot delete the active hero section") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRespondRepoErrorMissingID(t *testing.T) {
	code, body := runRepoError(t, "Hero section", &repository.ValidationError{Field: "id"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(body, "Hero section ID is required") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRespondRepoErrorValidationDetail(t *testing.T) {
	code, body := runRepoError(t, "Product", &repository.ValidationError{Field: "price", Reason: "salePrice must be less than price"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(body, "salePrice must be less than price") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRespondRepoErrorInternalIsGeneric(t *testing.T) {
	code, body := runRepoError(t, "Product", errors.New("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(body, "connection reset") {
		t.Fatalf("internal detail leaked to the caller: %s", body)
	}
	if !strings.Contains(body, "Internal server error") {
		t.Fatalf("unexpected body: %s", body)
	}
}
