package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
)

// In-memory репозитории для тестов сервисов. db игнорируется.

type fakeUserRepo struct {
	users map[string]*models.User // по id
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		if u.ID == "" {
			u.ID = models.NewID()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) CreateIfAbsent(db *gorm.DB, user *models.User) (bool, error) {
	if _, err := r.FindByEmail(db, user.Email); err == nil {
		return false, nil
	}
	user.ID = models.NewID()
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return true, nil
}

func (r *fakeUserRepo) UpdateFields(_ *gorm.DB, id string, updates map[string]interface{}) error {
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for k, v := range updates {
		switch k {
		case "display_name":
			u.DisplayName = v.(string)
		case "photo_url":
			u.PhotoURL = v.(string)
		case "role":
			u.Role = v.(models.UserRole)
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdateRoleByEmail(db *gorm.DB, email string, role models.UserRole) error {
	for _, u := range r.users {
		if u.Email == email {
			u.Role = role
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, id string) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func (r *fakeUserRepo) FindWithFilter(_ *gorm.DB, filter repositories.UserFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.Email+" "+u.DisplayName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return paginate(out, filter.Page, filter.Limit), int64(len(out)), nil
}

type fakeScholarshipRepo struct {
	items map[string]*models.Scholarship
	order []string
}

func newFakeScholarshipRepo(items ...*models.Scholarship) *fakeScholarshipRepo {
	r := &fakeScholarshipRepo{items: map[string]*models.Scholarship{}}
	for _, s := range items {
		_ = r.Create(nil, s)
	}
	return r
}

func (r *fakeScholarshipRepo) Create(_ *gorm.DB, s *models.Scholarship) error {
	if s.ID == "" {
		s.ID = models.NewID()
	}
	cp := *s
	r.items[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeScholarshipRepo) FindByID(_ *gorm.DB, id string) (*models.Scholarship, error) {
	if s, ok := r.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrScholarshipNotFound
}

func (r *fakeScholarshipRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Scholarship, error) {
	var out []models.Scholarship
	for _, id := range ids {
		if s, ok := r.items[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScholarshipRepo) Search(_ *gorm.DB, f repositories.ScholarshipFilter) ([]models.Scholarship, int64, error) {
	var out []models.Scholarship
	for _, id := range r.order {
		s, ok := r.items[id]
		if !ok {
			continue
		}
		if f.ScholarshipCategory != "" && string(s.ScholarshipCategory) != f.ScholarshipCategory {
			continue
		}
		if f.SubjectCategory != "" && s.SubjectCategory != f.SubjectCategory {
			continue
		}
		if f.State != "" && !strings.Contains(strings.ToLower(s.State), strings.ToLower(f.State)) {
			continue
		}
		if f.Search != "" {
			hay := strings.ToLower(s.ScholarshipName + " " + s.UniversityName + " " + s.SubjectCategory)
			if !strings.Contains(hay, strings.ToLower(f.Search)) {
				continue
			}
		}
		out = append(out, *s)
	}
	return paginate(out, f.Page, f.Limit), int64(len(out)), nil
}

func (r *fakeScholarshipRepo) UpdateFields(_ *gorm.DB, id string, updates map[string]interface{}) error {
	s, ok := r.items[id]
	if !ok {
		return repositories.ErrScholarshipNotFound
	}
	for k, v := range updates {
		switch k {
		case "scholarship_name":
			s.ScholarshipName = v.(string)
		case "state":
			s.State = v.(string)
		case "scholarship_amount":
			s.ScholarshipAmount = v.(float64)
		}
	}
	return nil
}

func (r *fakeScholarshipRepo) UpdateRating(_ *gorm.DB, id string, ratings int, total int64) error {
	if s, ok := r.items[id]; ok {
		s.Ratings = ratings
		s.TotalReview = total
	}
	return nil
}

func (r *fakeScholarshipRepo) Delete(_ *gorm.DB, id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

type fakeApplicationRepo struct {
	items map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, a *models.Application) error {
	a.ID = models.NewID()
	a.CreatedAt = time.Now()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.Application, error) {
	if a, ok := r.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByUserEmail(_ *gorm.DB, email string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.items {
		if a.UserEmail == email {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindAll(_ *gorm.DB) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.items {
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ApplicationStatus.Priority() < out[j].ApplicationStatus.Priority()
	})
	return out, nil
}

func (r *fakeApplicationRepo) UpdateFields(_ *gorm.DB, id string, updates map[string]interface{}) error {
	a, ok := r.items[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	for k, v := range updates {
		switch k {
		case "application_status":
			a.ApplicationStatus = v.(models.ApplicationStatus)
		case "feedback":
			a.Feedback = v.(string)
		case "phone":
			a.Phone = v.(string)
		case "user_name":
			a.UserName = v.(string)
		case "address":
			a.Address = v.(string)
		case "degree":
			a.Degree = v.(string)
		}
	}
	return nil
}

func (r *fakeApplicationRepo) DeleteIfStatus(_ *gorm.DB, id string, status models.ApplicationStatus) (int64, error) {
	a, ok := r.items[id]
	if !ok || a.ApplicationStatus != status {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

type fakeReviewRepo struct {
	items map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: map[string]*models.Review{}}
}

func (r *fakeReviewRepo) Upsert(_ *gorm.DB, review *models.Review) (*models.Review, error) {
	for _, existing := range r.items {
		if existing.Email == review.Email && existing.ScholarshipID == review.ScholarshipID {
			existing.Rating = review.Rating
			existing.Comment = review.Comment
			existing.UserName = review.UserName
			existing.UserImage = review.UserImage
			existing.UpdatedDate = time.Now()
			cp := *existing
			return &cp, nil
		}
	}
	review.ID = models.NewID()
	review.CreatedAt = time.Now()
	review.UpdatedDate = review.CreatedAt
	cp := *review
	r.items[review.ID] = &cp
	return review, nil
}

func (r *fakeReviewRepo) FindByID(_ *gorm.DB, id string) (*models.Review, error) {
	if rv, ok := r.items[id]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) filter(keep func(*models.Review) bool) []models.Review {
	var out []models.Review
	for _, rv := range r.items {
		if keep(rv) {
			out = append(out, *rv)
		}
	}
	return out
}

func (r *fakeReviewRepo) FindByScholarship(_ *gorm.DB, id string) ([]models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.ScholarshipID == id }), nil
}

func (r *fakeReviewRepo) FindByEmail(_ *gorm.DB, email string) ([]models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.Email == email }), nil
}

func (r *fakeReviewRepo) FindAll(_ *gorm.DB) ([]models.Review, error) {
	return r.filter(func(*models.Review) bool { return true }), nil
}

func (r *fakeReviewRepo) Delete(_ *gorm.DB, id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeReviewRepo) GetRatingStats(_ *gorm.DB, id string) (*repositories.RatingStats, error) {
	var sum, n int
	for _, rv := range r.items {
		if rv.ScholarshipID == id {
			sum += rv.Rating
			n++
		}
	}
	stats := &repositories.RatingStats{TotalReviews: int64(n)}
	if n > 0 {
		stats.AverageRating = float64(sum) / float64(n)
	}
	return stats, nil
}

type fakeWishlistRepo struct {
	items []*models.Wishlist
}

func (r *fakeWishlistRepo) Add(_ *gorm.DB, entry *models.Wishlist) (bool, error) {
	for _, w := range r.items {
		if w.UserEmail == entry.UserEmail && w.ScholarshipID == entry.ScholarshipID {
			return false, nil
		}
	}
	entry.ID = models.NewID()
	entry.CreatedAt = time.Now()
	cp := *entry
	r.items = append(r.items, &cp)
	return true, nil
}

func (r *fakeWishlistRepo) FindByID(_ *gorm.DB, id string) (*models.Wishlist, error) {
	for _, w := range r.items {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, repositories.ErrWishlistNotFound
}

func (r *fakeWishlistRepo) FindByUserEmail(_ *gorm.DB, email string) ([]models.Wishlist, error) {
	var out []models.Wishlist
	for _, w := range r.items {
		if w.UserEmail == email {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) FindByUserAndScholarship(_ *gorm.DB, email, scholarshipID string) (*models.Wishlist, error) {
	for _, w := range r.items {
		if w.UserEmail == email && w.ScholarshipID == scholarshipID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, repositories.ErrWishlistNotFound
}

func (r *fakeWishlistRepo) Delete(_ *gorm.DB, id string) (int64, error) {
	for i, w := range r.items {
		if w.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
