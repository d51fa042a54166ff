package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryUserRepository()))
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)

	return r
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	w := postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	w := postJSON(r, "/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	payload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	}

	if w := postJSON(r, "/auth/register", payload); w.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", w.Code)
	}
	if w := postJSON(r, "/auth/register", payload); w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	w := postJSON(r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	session, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("returned token does not validate: %v", err)
	}
	if session.Email != "test@example.com" {
		t.Fatalf("wrong session email: %s", session.Email)
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	w := postJSON(r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "nope",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
