package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/auth"
	"github.com/InnoTrack-2025/research-service/internal/models"
)

// stubUserRepo serves a fixed set of users for middleware tests.
type stubUserRepo struct {
	users map[uint]*models.User
}

func (r *stubUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) Update(ctx context.Context, tx *gorm.DB, user *models.User) error { return nil }
func (r *stubUserRepo) TouchLastActive(ctx context.Context, id uint) error               { return nil }

func setupAuthTest(t *testing.T) (*gin.Engine, *JWTAuthMiddleware, *auth.TokenService, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[uint]*models.User{
		1: {ID: 1, Email: "asha@iitd.ac.in", Role: models.RoleFaculty, Department: "Computer Science"},
		2: {ID: 2, Email: "new@iitd.ac.in", Role: models.RoleFaculty},
		3: {ID: 3, Email: "analyst@gov.in", Role: models.RoleGovernment},
	}}
	middleware := NewJWTAuthMiddleware(tokens, repo)

	return gin.New(), middleware, tokens, repo
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearerFor(t *testing.T, tokens *auth.TokenService, user *models.User) string {
	t.Helper()
	token, err := tokens.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	router, middleware, tokens, repo := setupAuthTest(t)
	router.GET("/protected", middleware.AuthMiddleware(), func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{
			name:       "token for deleted user",
			authHeader: bearerFor(t, tokens, &models.User{ID: 99, Role: models.RoleFaculty}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "valid token",
			authHeader: bearerFor(t, tokens, repo.users[1]),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.authHeader)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body)
			}
			if tt.wantCode != "" {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal response: %v", err)
				}
				if resp.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestRequireDepartmentMiddleware(t *testing.T) {
	router, middleware, tokens, repo := setupAuthTest(t)
	router.GET("/protected",
		middleware.AuthMiddleware(),
		middleware.RequireDepartmentMiddleware(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	t.Run("faculty with department passes", func(t *testing.T) {
		if w := doRequest(router, bearerFor(t, tokens, repo.users[1])); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200, body %s", w.Code, w.Body)
		}
	})

	t.Run("missing department is rejected", func(t *testing.T) {
		w := doRequest(router, bearerFor(t, tokens, repo.users[2]))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Code != "DEPARTMENT_REQUIRED" {
			t.Errorf("code = %q, want DEPARTMENT_REQUIRED", resp.Code)
		}
	})

	t.Run("government is exempt", func(t *testing.T) {
		if w := doRequest(router, bearerFor(t, tokens, repo.users[3])); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200, body %s", w.Code, w.Body)
		}
	})
}

func TestRequireRoleMiddleware(t *testing.T) {
	router, middleware, tokens, repo := setupAuthTest(t)
	router.GET("/protected",
		middleware.AuthMiddleware(),
		middleware.RequireRoleMiddleware(models.RoleGovernment),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	if w := doRequest(router, bearerFor(t, tokens, repo.users[3])); w.Code != http.StatusOK {
		t.Errorf("government status = %d, want 200, body %s", w.Code, w.Body)
	}
	if w := doRequest(router, bearerFor(t, tokens, repo.users[1])); w.Code != http.StatusForbidden {
		t.Errorf("faculty status = %d, want 403, body %s", w.Code, w.Body)
	}
}
