package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

// stubPublicationService implements the business layer in memory with the
// same ownership semantics, so handler tests stay focused on HTTP concerns.
type stubPublicationService struct {
	mu          sync.Mutex
	nextID      uint
	rows        map[uint]*models.Publication
	lastFilters repositories.ResourceFilters
}

func newStubPublicationService() *stubPublicationService {
	return &stubPublicationService{rows: map[uint]*models.Publication{}}
}

func (s *stubPublicationService) Create(ctx context.Context, entity *models.Publication, user *models.User) (*models.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	entity.ID = s.nextID
	entity.CreatedBy = user.ID
	s.rows[entity.ID] = entity
	return entity, nil
}

func (s *stubPublicationService) GetByID(ctx context.Context, id uint, user *models.User) (*models.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || (row.CreatedBy != user.ID && user.Role != models.RoleGovernment) {
		return nil, services.ErrResourceNotFound
	}
	return row, nil
}

func (s *stubPublicationService) List(ctx context.Context, filters repositories.ResourceFilters, user *models.User) ([]*models.Publication, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFilters = filters
	var out []*models.Publication
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, int64(len(out)), nil
}

func (s *stubPublicationService) Update(ctx context.Context, id uint, apply func(*models.Publication) error, user *models.User) (*models.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.CreatedBy != user.ID {
		return nil, services.ErrResourceNotFound
	}
	if err := apply(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *stubPublicationService) Delete(ctx context.Context, id uint, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.CreatedBy != user.ID {
		return services.ErrResourceNotFound
	}
	delete(s.rows, id)
	return nil
}

// stubGrantService backs the optional-date update tests.
type stubGrantService struct {
	mu   sync.Mutex
	rows map[uint]*models.Grant
}

func (s *stubGrantService) Create(ctx context.Context, entity *models.Grant, user *models.User) (*models.Grant, error) {
	return entity, nil
}

func (s *stubGrantService) GetByID(ctx context.Context, id uint, user *models.User) (*models.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, services.ErrResourceNotFound
	}
	return row, nil
}

func (s *stubGrantService) List(ctx context.Context, filters repositories.ResourceFilters, user *models.User) ([]*models.Grant, int64, error) {
	return nil, 0, nil
}

func (s *stubGrantService) Update(ctx context.Context, id uint, apply func(*models.Grant) error, user *models.User) (*models.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.CreatedBy != user.ID {
		return nil, services.ErrResourceNotFound
	}
	if err := apply(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *stubGrantService) Delete(ctx context.Context, id uint, user *models.User) error {
	return services.ErrResourceNotFound
}

func setupPublicationRouter(t *testing.T, user *models.User) (*gin.Engine, *stubPublicationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := newStubPublicationService()
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := NewPublicationHandler(stub, validator.New(), logger)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
	})
	handler.Register(router.Group("/publications"))

	return router, stub
}

func jsonRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicationCreateEndpoint(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, stub := setupPublicationRouter(t, user)

	w := jsonRequest(router, http.MethodPost, "/publications", map[string]interface{}{
		"title":           "Graph Neural Networks for Traffic",
		"authors":         []string{"Asha Rao"},
		"journal":         "IEEE TITS",
		"publicationDate": "2024-03-15",
		"impactFactor":    3.2,
		"department":      "Computer Science",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body)
	}

	var created models.Publication
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if created.CreatedBy != user.ID {
		t.Errorf("CreatedBy = %d, want %d", created.CreatedBy, user.ID)
	}
	if !created.PublicationDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PublicationDate = %v", created.PublicationDate)
	}
	if len(stub.rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(stub.rows))
	}
}

func TestPublicationCreateValidation(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, _ := setupPublicationRouter(t, user)

	w := jsonRequest(router, http.MethodPost, "/publications", map[string]interface{}{
		"title": "Missing everything else",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Validation failed" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPublicationListQueryParsing(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleGovernment}
	router, stub := setupPublicationRouter(t, user)

	w := jsonRequest(router, http.MethodGet, "/publications?page=3&size=20&department=Physics&mine=true&sortBy=created_at&sortOrder=asc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
	}

	filters := stub.lastFilters
	if filters.Limit != 20 || filters.Offset != 40 {
		t.Errorf("Limit/Offset = %d/%d, want 20/40", filters.Limit, filters.Offset)
	}
	if filters.Department == nil || *filters.Department != "Physics" {
		t.Errorf("Department = %v, want Physics", filters.Department)
	}
	if filters.CreatedBy == nil || *filters.CreatedBy != user.ID {
		t.Errorf("CreatedBy = %v, want %d (mine=true)", filters.CreatedBy, user.ID)
	}
	if filters.SortBy != "created_at" || filters.SortOrder != "asc" {
		t.Errorf("sort = %s %s", filters.SortBy, filters.SortOrder)
	}

	var resp ListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Page != 3 || resp.Size != 20 {
		t.Errorf("Page/Size = %d/%d, want 3/20", resp.Page, resp.Size)
	}
}

func TestPublicationListDefaultsOnBadParams(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, stub := setupPublicationRouter(t, user)

	w := jsonRequest(router, http.MethodGet, "/publications?page=-1&size=5000", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
	}
	if stub.lastFilters.Limit != 10 || stub.lastFilters.Offset != 0 {
		t.Errorf("Limit/Offset = %d/%d, want defaults 10/0", stub.lastFilters.Limit, stub.lastFilters.Offset)
	}
}

func TestPublicationGetNotFound(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, _ := setupPublicationRouter(t, user)

	if w := jsonRequest(router, http.MethodGet, "/publications/42", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body %s", w.Code, w.Body)
	}
	if w := jsonRequest(router, http.MethodGet, "/publications/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for bad id, body %s", w.Code, w.Body)
	}
}

func TestPublicationUpdateEndpoint(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, stub := setupPublicationRouter(t, user)

	stub.rows[1] = &models.Publication{ID: 1, Title: "Original", CreatedBy: user.ID}
	stub.nextID = 1

	w := jsonRequest(router, http.MethodPut, "/publications/1", map[string]interface{}{
		"title": "Revised",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
	}
	if stub.rows[1].Title != "Revised" {
		t.Errorf("Title = %q, want Revised", stub.rows[1].Title)
	}
}

func TestGrantUpdateDueDateSemantics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}

	existing := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	stub := &stubGrantService{rows: map[uint]*models.Grant{
		1: {ID: 1, Title: "AI for Crop Yield", CreatedBy: user.ID, DueDate: &existing},
	}}

	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := NewGrantHandler(stub, validator.New(), logger)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
	})
	handler.Register(router.Group("/grants"))

	t.Run("absent field keeps the date", func(t *testing.T) {
		w := jsonRequest(router, http.MethodPut, "/grants/1", map[string]interface{}{
			"title": "Renamed",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
		}
		if stub.rows[1].DueDate == nil || !stub.rows[1].DueDate.Equal(existing) {
			t.Errorf("DueDate = %v, want unchanged %v", stub.rows[1].DueDate, existing)
		}
	})

	t.Run("empty string clears the date", func(t *testing.T) {
		w := jsonRequest(router, http.MethodPut, "/grants/1", map[string]interface{}{
			"dueDate": "",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
		}
		if stub.rows[1].DueDate != nil {
			t.Errorf("DueDate = %v, want nil", stub.rows[1].DueDate)
		}
	})

	t.Run("value sets the date", func(t *testing.T) {
		w := jsonRequest(router, http.MethodPut, "/grants/1", map[string]interface{}{
			"dueDate": "2025-01-31",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
		}
		want := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
		if stub.rows[1].DueDate == nil || !stub.rows[1].DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", stub.rows[1].DueDate, want)
		}
	})
}

func TestPublicationDeleteEndpoint(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleFaculty, Department: "Computer Science"}
	router, stub := setupPublicationRouter(t, user)

	stub.rows[1] = &models.Publication{ID: 1, Title: "Disposable", CreatedBy: user.ID}

	if w := jsonRequest(router, http.MethodDelete, "/publications/1", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
	}
	if w := jsonRequest(router, http.MethodDelete, "/publications/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404, body %s", w.Code, w.Body)
	}
}
