package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notes-board/internal/api"
	"github.com/notes-board/internal/config"
	"github.com/notes-board/internal/identity"
	"github.com/notes-board/internal/mocks"
	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/render"
	"github.com/notes-board/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockBoardService, *mocks.MockProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockBoard := mocks.NewMockBoardService()
	mockProvider := mocks.NewMockProvider()

	services := &service.Services{
		Board: mockBoard,
		Seed:  mocks.NewMockSeedService(),
	}

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Board: config.BoardConfig{
			CardListKey:    "default_cardlist",
			CommentListKey: "default_comments",
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, mockProvider, renderer, cfg, log)

	return router, mockBoard, mockProvider
}

func postForm(router *gin.Engine, fields url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/", strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShowBoard(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)

	now := time.Now()
	mockBoard.View = &models.BoardView{
		Cards: []*models.Card{
			{ID: "c1", Title: "Reflection", Content: "<p>Boxes everywhere</p>", CreatedAt: now},
		},
		Comments: []*models.Comment{
			{ID: "m1", Author: models.Author{Identity: "u1", Name: "Sam", Email: "sam@x.com"}, Content: "Great notes!", CreatedAt: now},
		},
	}

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html content type, got %s", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Reflection") {
		t.Error("Expected card title in page")
	}
	if !strings.Contains(body, "<p>Boxes everywhere</p>") {
		t.Error("Expected card content rendered as markup")
	}
	if !strings.Contains(body, "Great notes!") {
		t.Error("Expected comment content in page")
	}
	if !strings.Contains(body, "Sign in or register") {
		t.Error("Expected anonymous greeting in page")
	}
}

func TestShowBoard_AuthenticatedGreeting(t *testing.T) {
	router, _, mockProvider := setupTestRouter(t)
	mockProvider.User = &identity.User{ID: "u1", Name: "Sam", Email: "sam@x.com"}

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Welcome, Sam") {
		t.Error("Expected welcome greeting for authenticated visitor")
	}
	if !strings.Contains(body, "sign out") {
		t.Error("Expected sign-out link for authenticated visitor")
	}
}

func TestShowBoard_StoreFailure(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)
	mockBoard.GetBoardError = errors.New("connection refused")

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestSubmitComment_Success(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)

	w := postForm(router, url.Values{
		"content": {"Great notes!"},
		"name":    {""},
		"email":   {""},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/#comments" {
		t.Errorf("Expected redirect to /#comments, got %s", loc)
	}

	if len(mockBoard.PostedComments) != 1 {
		t.Fatalf("Expected 1 posted comment, got %d", len(mockBoard.PostedComments))
	}
	posted := mockBoard.PostedComments[0]
	if posted.Content != "Great notes!" {
		t.Errorf("Expected content 'Great notes!', got '%s'", posted.Content)
	}
	want := models.AnonymousAuthor()
	if posted.Author != want {
		t.Errorf("Expected all-sentinel author, got %+v", posted.Author)
	}
}

func TestSubmitComment_EmptyContent(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)

	w := postForm(router, url.Values{
		"content": {""},
		"name":    {"Sam"},
		"email":   {"sam@x.com"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %s", loc)
	}
	if len(mockBoard.PostedComments) != 0 {
		t.Errorf("Expected no posted comment, got %d", len(mockBoard.PostedComments))
	}
}

func TestSubmitComment_AuthenticatedWins(t *testing.T) {
	router, mockBoard, mockProvider := setupTestRouter(t)
	mockProvider.User = &identity.User{ID: "u1", Name: "Sam", Email: "sam@x.com"}

	// Submitted identity fields are discarded when authenticated.
	w := postForm(router, url.Values{
		"content": {"Great notes!"},
		"name":    {"Impostor"},
		"email":   {"other@y.com"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}

	if len(mockBoard.PostedComments) != 1 {
		t.Fatalf("Expected 1 posted comment, got %d", len(mockBoard.PostedComments))
	}
	author := mockBoard.PostedComments[0].Author
	if author.Identity != "u1" || author.Name != "Sam" || author.Email != "sam@x.com" {
		t.Errorf("Expected platform identity, got %+v", author)
	}
}

func TestSubmitComment_NamedAnonymous(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)

	w := postForm(router, url.Values{
		"content": {"Thanks"},
		"name":    {" "},
		"email":   {""},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}

	author := mockBoard.PostedComments[0].Author
	if author.Identity != models.AnonymousSentinel {
		t.Errorf("Expected sentinel identity, got '%s'", author.Identity)
	}
	if author.Name != " " {
		t.Errorf("Expected verbatim whitespace name, got '%s'", author.Name)
	}
	if author.Email != "" {
		t.Errorf("Expected verbatim empty email, got '%s'", author.Email)
	}
}

func TestSubmitComment_StoreFailure(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)
	mockBoard.PostCommentFunc = func(_ context.Context, _ models.Author, _ string) (*models.Comment, error) {
		return nil, errors.New("connection refused")
	}

	w := postForm(router, url.Values{"content": {"hi"}})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "notes-board" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)
	mockBoard.CardCount = 52
	mockBoard.CommentCount = 7

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["cards"].(float64) != 52 {
		t.Errorf("Expected 52 cards, got %v", db["cards"])
	}
	if db["comments"].(float64) != 7 {
		t.Errorf("Expected 7 comments, got %v", db["comments"])
	}
}

func TestMetricsEndpoint_CountFailure(t *testing.T) {
	router, mockBoard, _ := setupTestRouter(t)
	mockBoard.CountsError = errors.New("connection refused")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
	}

	allowOrigin := w.Header().Get("Access-Control-Allow-Origin")
	if allowOrigin != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", allowOrigin)
	}
}
