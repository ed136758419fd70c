package api_test

import (
	"context"
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
	"github.com/notes-board/internal/repository"
	"github.com/notes-board/internal/service"
	"github.com/rs/zerolog"
)

// setupIntegrationRouter wires real services and the real header provider
// over in-memory repositories, so requests exercise the full
// dispatch -> resolve -> persist -> render flow.
func setupIntegrationRouter(t *testing.T) (*gin.Engine, *mocks.MockCommentRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cardRepo := mocks.NewMockCardRepository()
	commentRepo := mocks.NewMockCommentRepository()
	repos := &repository.Repositories{Card: cardRepo, Comment: commentRepo}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Board: config.BoardConfig{
			CardListKey:     "default_cardlist",
			CommentListKey:  "default_comments",
			PostSettleDelay: 0,
		},
		Auth: config.AuthConfig{
			LoginURL:  "/auth/login",
			LogoutURL: "/auth/logout",
		},
	}

	services := service.NewServices(repos, cfg, zerolog.Nop())
	provider := identity.NewHeaderProvider(cfg.Auth.LoginURL, cfg.Auth.LogoutURL)
	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	router := api.NewRouter(services, provider, renderer, cfg, zerolog.Nop())
	return router, commentRepo
}

func TestEndToEnd_AuthenticatedComment(t *testing.T) {
	router, commentRepo := setupIntegrationRouter(t)

	// An older comment already on the board.
	commentRepo.Create(context.Background(), &models.Comment{
		ID:            "old",
		CollectionKey: "default_comments",
		Author:        models.AnonymousAuthor(),
		Content:       "First!",
		CreatedAt:     time.Now().Add(-time.Hour),
	})

	form := url.Values{
		"content": {"Great notes!"},
		"name":    {"ignored"},
		"email":   {"ignored@y.com"},
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(identity.HeaderUserID, "u1")
	req.Header.Set(identity.HeaderUserName, "Sam")
	req.Header.Set(identity.HeaderUserEmail, "sam@x.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/#comments" {
		t.Errorf("Expected redirect to /#comments, got %s", loc)
	}

	if len(commentRepo.Comments) != 2 {
		t.Fatalf("Expected 2 stored comments, got %d", len(commentRepo.Comments))
	}

	// The following page view shows the new comment first.
	getReq := httptest.NewRequest("GET", "/", nil)
	getW := httptest.NewRecorder()
	router.ServeHTTP(getW, getReq)

	if getW.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", getW.Code)
	}
	body := getW.Body.String()
	newIdx := strings.Index(body, "Great notes!")
	oldIdx := strings.Index(body, "First!")
	if newIdx == -1 || oldIdx == -1 {
		t.Fatal("Expected both comments in the page")
	}
	if newIdx > oldIdx {
		t.Error("Expected the new comment to appear before the older one")
	}

	stored := commentRepo.Comments[1]
	if stored.Author.Identity != "u1" || stored.Author.Name != "Sam" || stored.Author.Email != "sam@x.com" {
		t.Errorf("Expected platform author, got %+v", stored.Author)
	}
}

func TestEndToEnd_AnonymousComment(t *testing.T) {
	router, commentRepo := setupIntegrationRouter(t)

	form := url.Values{
		"content": {"Thanks"},
		"name":    {""},
		"email":   {""},
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}

	if len(commentRepo.Comments) != 1 {
		t.Fatalf("Expected 1 stored comment, got %d", len(commentRepo.Comments))
	}
	want := models.AnonymousAuthor()
	if commentRepo.Comments[0].Author != want {
		t.Errorf("Expected all-sentinel author, got %+v", commentRepo.Comments[0].Author)
	}
}

func TestEndToEnd_EmptyContentIsSilentNoOp(t *testing.T) {
	router, commentRepo := setupIntegrationRouter(t)

	form := url.Values{"content": {""}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(identity.HeaderUserID, "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %s", loc)
	}
	if len(commentRepo.Comments) != 0 {
		t.Errorf("Expected no stored comment, got %d", len(commentRepo.Comments))
	}
}
