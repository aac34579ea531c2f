package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, tx *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) TouchLastActive(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		now := time.Now()
		u.LastActive = &now
	}
	return nil
}

// fakeCollegeRepo is an in-memory CollegeRepository.
type fakeCollegeRepo struct {
	mu       sync.Mutex
	nextID   uint
	colleges map[string]*models.College
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{colleges: map[string]*models.College{}}
}

func (r *fakeCollegeRepo) Create(ctx context.Context, tx *gorm.DB, college *models.College) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.colleges[college.CollegeID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	college.ID = r.nextID
	r.colleges[college.CollegeID] = college
	return nil
}

func (r *fakeCollegeRepo) GetByCollegeID(ctx context.Context, collegeID string) (*models.College, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	college, ok := r.colleges[collegeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return college, nil
}

func (r *fakeCollegeRepo) List(ctx context.Context) ([]*models.College, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.College, 0, len(r.colleges))
	for _, c := range r.colleges {
		out = append(out, c)
	}
	return out, nil
}

// fakePublicationRepo is an in-memory OwnedRepository[*models.Publication].
type fakePublicationRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*models.Publication
}

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{rows: map[uint]*models.Publication{}}
}

func (r *fakePublicationRepo) Create(ctx context.Context, tx *gorm.DB, entity *models.Publication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entity.DOI != nil {
		for _, row := range r.rows {
			if row.DOI != nil && *row.DOI == *entity.DOI {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	r.nextID++
	entity.ID = r.nextID
	entity.CreatedAt = time.Now()
	stored := *entity
	r.rows[entity.ID] = &stored
	return nil
}

func (r *fakePublicationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Publication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *row
	return &out, nil
}

func (r *fakePublicationRepo) List(ctx context.Context, tx *gorm.DB, filters repositories.ResourceFilters) ([]*models.Publication, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Publication
	for _, row := range r.rows {
		if filters.CreatedBy != nil && row.CreatedBy != *filters.CreatedBy {
			continue
		}
		if filters.Department != nil && row.Department != *filters.Department {
			continue
		}
		copied := *row
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakePublicationRepo) Update(ctx context.Context, tx *gorm.DB, entity *models.Publication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[entity.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *entity
	r.rows[entity.ID] = &stored
	return nil
}

func (r *fakePublicationRepo) Delete(ctx context.Context, tx *gorm.DB, id, ownerID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.CreatedBy != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

// fakeDashboardRepo returns canned aggregates and counts calls so cache
// hits are observable.
type fakeDashboardRepo struct {
	mu    sync.Mutex
	calls int
	stats repositories.DashboardStats
}

func (r *fakeDashboardRepo) GetStats(ctx context.Context, ownerID *uint) (*repositories.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := r.stats
	return &out, nil
}

// fakeRepository wires the fakes behind the aggregate interface. Only the
// sub-repositories a test touches are populated.
type fakeRepository struct {
	user         *fakeUserRepo
	college      *fakeCollegeRepo
	publications *fakePublicationRepo
	dashboard    *fakeDashboardRepo
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		user:         newFakeUserRepo(),
		college:      newFakeCollegeRepo(),
		publications: newFakePublicationRepo(),
		dashboard:    &fakeDashboardRepo{},
	}
}

func (r *fakeRepository) User() repositories.UserRepository       { return r.user }
func (r *fakeRepository) College() repositories.CollegeRepository { return r.college }

func (r *fakeRepository) Publications() repositories.OwnedRepository[*models.Publication] {
	return r.publications
}
func (r *fakeRepository) Patents() repositories.OwnedRepository[*models.Patent]   { return nil }
func (r *fakeRepository) Grants() repositories.OwnedRepository[*models.Grant]     { return nil }
func (r *fakeRepository) Awards() repositories.OwnedRepository[*models.Award]     { return nil }
func (r *fakeRepository) Startups() repositories.OwnedRepository[*models.Startup] { return nil }
func (r *fakeRepository) Projects() repositories.OwnedRepository[*models.InnovationProject] {
	return nil
}

func (r *fakeRepository) Dashboard() repositories.DashboardRepository { return r.dashboard }

func (r *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *fakeRepository) Ping(ctx context.Context) error { return nil }
func (r *fakeRepository) Close() error                   { return nil }
