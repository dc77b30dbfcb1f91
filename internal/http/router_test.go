package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flicktickets/internal/auth"
	intconfig "flicktickets/internal/config"
	h "flicktickets/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.ExpectExec("INSERT INTO Movie").WillReturnResult(sqlmock.NewResult(1, 1))

	tokens := auth.NewTokens("router-test-secret", time.Hour)
	env := intconfig.Env{AdminAuth: true, RateLimitPerMin: 5}
	r := NewRouter(env, h.Deps{DB: db, Tokens: tokens})

	body := `{"title":"Dune: Part Two","language":"English"}`
	send := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/add/movie", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous admin call: expected 401, got %d", code)
	}
	userToken, _ := tokens.Issue("alice", auth.RoleUser)
	if code := send(userToken); code != http.StatusForbidden {
		t.Fatalf("user admin call: expected 403, got %d", code)
	}
	adminToken, _ := tokens.Issue("root", auth.RoleAdmin)
	if code := send(adminToken); code != http.StatusCreated {
		t.Fatalf("admin call: expected 201, got %d", code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRoutesListsBookingEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{}, h.Deps{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/routes", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"/api/book"`) {
		t.Fatalf("unexpected routes response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", w.Code)
	}
}
