package services

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

var (
	ctx        = context.Background()
	pagination = Pagination{DefaultLimit: 6, MaxLimit: 100}
)

func strPtr(s string) *string { return &s }

func assertAppError(t *testing.T, err error, expected *apperrors.AppError) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, expected.Code, appErr.Code)
	assert.Equal(t, expected.HTTPCode, appErr.HTTPCode)
}

func TestPaginationNormalize(t *testing.T) {
	page, limit := pagination.Normalize(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 6, limit)

	_, limit = pagination.Normalize(2, 500)
	assert.Equal(t, 100, limit)

	page, _ = pagination.Normalize(math.MaxInt, 100)
	assert.Equal(t, maxPage, page)
}

// ---- users ----

func TestCreateIfAbsentKeepsExistingUser(t *testing.T) {
	users := newFakeUserRepo(&models.User{Email: "a@x.com", Role: models.UserRoleAdmin, DisplayName: "Old"})
	svc := NewUserService(users, pagination)

	res, err := svc.CreateIfAbsent(ctx, nil, &dto.CreateUserRequest{Email: "A@x.com", DisplayName: "New"})
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, models.UserRoleAdmin, res.User.Role)
	assert.Equal(t, "Old", res.User.DisplayName)
	assert.Len(t, users.users, 1)

	res, err = svc.CreateIfAbsent(ctx, nil, &dto.CreateUserRequest{Email: "b@x.com"})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, models.UserRoleStudent, res.User.Role)
}

func TestGetRoleDefaultsToStudent(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), pagination)
	role, err := svc.GetRole(ctx, nil, "ghost@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleStudent, role)
}

func TestUpdateUserRoleRules(t *testing.T) {
	admin := &models.User{Email: "admin@x.com", Role: models.UserRoleAdmin}
	student := &models.User{Email: "s@x.com", Role: models.UserRoleStudent}
	svc := NewUserService(newFakeUserRepo(admin, student), pagination)

	// student не может менять роль
	_, err := svc.UpdateUser(ctx, nil, student.Email, student.ID, &dto.UpdateUserRequest{Role: strPtr("admin")})
	assertAppError(t, err, apperrors.ErrInsufficientPermissions)

	// admin не может менять свою роль
	_, err = svc.UpdateUser(ctx, nil, admin.Email, admin.ID, &dto.UpdateUserRequest{Role: strPtr("student")})
	assertAppError(t, err, apperrors.ErrCannotModifySelf)

	updated, err := svc.UpdateUser(ctx, nil, admin.Email, student.ID, &dto.UpdateUserRequest{Role: strPtr("moderator")})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleModerator, updated.Role)

	// свой профиль - можно
	updated, err = svc.UpdateUser(ctx, nil, student.Email, student.ID, &dto.UpdateUserRequest{DisplayName: strPtr("Sam")})
	require.NoError(t, err)
	assert.Equal(t, "Sam", updated.DisplayName)

	// чужой профиль - нельзя
	_, err = svc.UpdateUser(ctx, nil, student.Email, admin.ID, &dto.UpdateUserRequest{DisplayName: strPtr("X")})
	assertAppError(t, err, apperrors.ErrNotOwner)
}

func TestDeleteUserRules(t *testing.T) {
	admin := &models.User{Email: "admin@x.com", Role: models.UserRoleAdmin}
	s1 := &models.User{Email: "s1@x.com", Role: models.UserRoleStudent}
	s2 := &models.User{Email: "s2@x.com", Role: models.UserRoleStudent}
	svc := NewUserService(newFakeUserRepo(admin, s1, s2), pagination)

	_, err := svc.DeleteUser(ctx, nil, admin.Email, admin.ID)
	assertAppError(t, err, apperrors.ErrCannotModifySelf)

	_, err = svc.DeleteUser(ctx, nil, s1.Email, s2.ID)
	assertAppError(t, err, apperrors.ErrInsufficientPermissions)

	n, err := svc.DeleteUser(ctx, nil, s1.Email, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.DeleteUser(ctx, nil, admin.Email, s2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestListUsersCountsFiltered(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{Email: "a@x.com", Role: models.UserRoleAdmin},
		&models.User{Email: "b@x.com", Role: models.UserRoleStudent},
		&models.User{Email: "c@x.com", Role: models.UserRoleStudent},
	)
	svc := NewUserService(users, pagination)

	res, err := svc.ListUsers(ctx, nil, &dto.UserListQuery{Filter: "student", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalUsers)
	assert.Len(t, res.Users, 1)
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	users := newFakeUserRepo(&models.User{Email: "boss@x.com", Role: models.UserRoleStudent})
	svc := NewUserService(users, pagination)

	require.NoError(t, svc.EnsureAdmin(ctx, nil, "Boss@x.com"))
	role, err := svc.GetRole(ctx, nil, "boss@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, role)

	require.NoError(t, svc.EnsureAdmin(ctx, nil, "new@x.com"))
	role, err = svc.GetRole(ctx, nil, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, role)

	assert.NoError(t, svc.EnsureAdmin(ctx, nil, ""))
}

// ---- scholarships ----

func TestScholarshipListPagingAndFilters(t *testing.T) {
	repo := newFakeScholarshipRepo()
	for i := 0; i < 8; i++ {
		state := "Kerala"
		if i%2 == 1 {
			state = "Goa"
		}
		_ = repo.Create(nil, &models.Scholarship{
			ScholarshipName:     fmt.Sprintf("Award %d", i),
			State:               state,
			ScholarshipCategory: models.ScholarshipCategoryGovernment,
		})
	}
	svc := NewScholarshipService(repo, pagination)

	res, err := svc.List(ctx, nil, &dto.ScholarshipQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.Meta.Total)
	assert.Len(t, res.Data, 6)
	assert.Equal(t, 1, res.Meta.Page)
	assert.Equal(t, 6, res.Meta.Limit)

	res, err = svc.List(ctx, nil, &dto.ScholarshipQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)

	res, err = svc.List(ctx, nil, &dto.ScholarshipQuery{State: "kerala", SchCat: "Government"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Meta.Total)
	for _, s := range res.Data {
		assert.Equal(t, "Kerala", s.State)
	}
}

func TestScholarshipCreateIgnoresClientRating(t *testing.T) {
	repo := newFakeScholarshipRepo()
	svc := NewScholarshipService(repo, pagination)

	s, err := svc.Create(ctx, nil, "admin@x.com", &dto.CreateScholarshipRequest{
		ScholarshipName:     "Merit",
		UniversityName:      "MIT",
		State:               "Kerala",
		SubjectCategory:     "Computer Science & IT",
		ScholarshipCategory: "Government",
		ScholarshipAmount:   dto.Amount(120000),
		Includes:            []string{"Tuition"},
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", s.PostedUserEmail)
	assert.Equal(t, 0, s.Ratings)
	assert.Equal(t, int64(0), s.TotalReview)
	assert.Equal(t, []string{"Tuition"}, s.IncludeList())
}

func TestScholarshipGetAndDelete(t *testing.T) {
	existing := &models.Scholarship{ScholarshipName: "Merit"}
	repo := newFakeScholarshipRepo(existing)
	svc := NewScholarshipService(repo, pagination)

	_, err := svc.Get(ctx, nil, "bad-id")
	assertAppError(t, err, apperrors.ErrInvalidID("id"))

	_, err = svc.Get(ctx, nil, models.NewID())
	assertAppError(t, err, apperrors.ErrScholarshipNotFound)

	_, err = svc.Delete(ctx, nil, "admin@x.com", "other@x.com", existing.ID)
	assertAppError(t, err, apperrors.ErrIdentityMismatch)

	_, err = svc.Delete(ctx, nil, "admin@x.com", "", existing.ID)
	assertAppError(t, err, apperrors.ErrIdentityMismatch)

	n, err := svc.Delete(ctx, nil, "admin@x.com", "admin@x.com", existing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// ---- applications ----

type applicationFixture struct {
	svc         ApplicationService
	apps        *fakeApplicationRepo
	scholarship *models.Scholarship
}

func newApplicationFixture() *applicationFixture {
	scholarship := &models.Scholarship{
		ScholarshipName:     "Merit",
		UniversityName:      "MIT",
		ScholarshipCategory: models.ScholarshipCategoryNGO,
		SubjectCategory:     "Mechanical & Civil",
		ApplicationFees:     25,
	}
	users := newFakeUserRepo(
		&models.User{Email: "admin@x.com", Role: models.UserRoleAdmin},
		&models.User{Email: "s@x.com", Role: models.UserRoleStudent},
	)
	apps := newFakeApplicationRepo()
	return &applicationFixture{
		svc:         NewApplicationService(apps, newFakeScholarshipRepo(scholarship), users),
		apps:        apps,
		scholarship: scholarship,
	}
}

func TestApplicationCreateSnapshotsScholarship(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: f.scholarship.ID, Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.ApplicationStatus)
	assert.Equal(t, "s@x.com", app.UserEmail)
	assert.Equal(t, "Merit", app.ScholarshipName)
	assert.Equal(t, 25.0, app.ApplicationFees)

	_, err = f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: "nope"})
	assertAppError(t, err, apperrors.ErrInvalidID("scholarshipId"))

	_, err = f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: models.NewID()})
	assertAppError(t, err, apperrors.ErrScholarshipNotFound)
}

func TestApplicationStatusTransitions(t *testing.T) {
	f := newApplicationFixture()
	app, err := f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: f.scholarship.ID})
	require.NoError(t, err)

	// студент не меняет статус
	_, err = f.svc.Update(ctx, nil, "s@x.com", app.ID, &dto.UpdateApplicationRequest{ApplicationStatus: strPtr("processing")})
	assertAppError(t, err, apperrors.ErrInsufficientPermissions)

	// pending -> completed запрещен
	_, err = f.svc.Update(ctx, nil, "admin@x.com", app.ID, &dto.UpdateApplicationRequest{ApplicationStatus: strPtr("completed")})
	assertAppError(t, err, apperrors.ErrInvalidStatusTransition)

	// тот же статус - no-op
	same, err := f.svc.Update(ctx, nil, "admin@x.com", app.ID, &dto.UpdateApplicationRequest{ApplicationStatus: strPtr("pending")})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, same.ApplicationStatus)

	updated, err := f.svc.Update(ctx, nil, "admin@x.com", app.ID, &dto.UpdateApplicationRequest{
		ApplicationStatus: strPtr("processing"),
		Feedback:          strPtr("looks good"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusProcessing, updated.ApplicationStatus)
	assert.Equal(t, "looks good", updated.Feedback)

	// владелец больше не может править данные
	_, err = f.svc.Update(ctx, nil, "s@x.com", app.ID, &dto.UpdateApplicationRequest{Phone: strPtr("2")})
	assertAppError(t, err, apperrors.ErrApplicationNotPending)

	// назад нельзя
	_, err = f.svc.Update(ctx, nil, "admin@x.com", app.ID, &dto.UpdateApplicationRequest{ApplicationStatus: strPtr("pending")})
	assertAppError(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestApplicationDeleteOnlyWhilePending(t *testing.T) {
	f := newApplicationFixture()
	pending, err := f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: f.scholarship.ID})
	require.NoError(t, err)
	processing, err := f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: f.scholarship.ID})
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, nil, "admin@x.com", processing.ID, &dto.UpdateApplicationRequest{ApplicationStatus: strPtr("processing")})
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, nil, "s@x.com", processing.ID)
	assertAppError(t, err, apperrors.ErrApplicationNotPending)
	assert.Len(t, f.apps.items, 2)

	_, err = f.svc.Delete(ctx, nil, "admin@x.com", pending.ID)
	assertAppError(t, err, apperrors.ErrNotOwner)

	n, err := f.svc.Delete(ctx, nil, "s@x.com", pending.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, f.apps.items, 1)
}

func TestApplicationReadAccess(t *testing.T) {
	f := newApplicationFixture()
	app, err := f.svc.Create(ctx, nil, "s@x.com", &dto.CreateApplicationRequest{ScholarshipID: f.scholarship.ID})
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, nil, "other@x.com", app.ID)
	assertAppError(t, err, apperrors.ErrNotOwner)

	got, err := f.svc.Get(ctx, nil, "admin@x.com", app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)

	_, err = f.svc.ListByUser(ctx, nil, "other@x.com", "s@x.com")
	assertAppError(t, err, apperrors.ErrIdentityMismatch)

	list, err := f.svc.ListByUser(ctx, nil, "s@x.com", "s@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ---- reviews ----

func TestReviewUpsertReplacesAndRollsUp(t *testing.T) {
	scholarship := &models.Scholarship{ScholarshipName: "Merit"}
	scholarships := newFakeScholarshipRepo(scholarship)
	reviews := newFakeReviewRepo()
	aggregator := NewRatingAggregator(reviews, scholarships)
	svc := NewReviewService(reviews, scholarships, newFakeUserRepo(), aggregator)

	session := auth.Identity{Email: "s@x.com", Name: "Sam"}
	res, err := svc.Upsert(ctx, nil, session, &dto.UpsertReviewRequest{ScholarshipID: scholarship.ID, Rating: 2, Comment: "meh"})
	require.NoError(t, err)
	assert.Equal(t, "Sam", res.Review.UserName)
	assert.Equal(t, 2, res.Ratings)

	res, err = svc.Upsert(ctx, nil, session, &dto.UpsertReviewRequest{ScholarshipID: scholarship.ID, Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Len(t, reviews.items, 1)
	assert.Equal(t, 5, res.Review.Rating)
	assert.Equal(t, "great", res.Review.Comment)
	assert.Equal(t, 5, res.Ratings)
	assert.Equal(t, int64(1), res.TotalReview)

	stored, _ := scholarships.FindByID(nil, scholarship.ID)
	assert.Equal(t, 5, stored.Ratings)
	assert.Equal(t, int64(1), stored.TotalReview)
}

func TestRatingRollupRoundsAverage(t *testing.T) {
	scholarship := &models.Scholarship{ScholarshipName: "Merit"}
	scholarships := newFakeScholarshipRepo(scholarship)
	reviews := newFakeReviewRepo()
	aggregator := NewRatingAggregator(reviews, scholarships)
	svc := NewReviewService(reviews, scholarships, newFakeUserRepo(), aggregator)

	for i, rating := range []int{4, 5} {
		_, err := svc.Upsert(ctx, nil, auth.Identity{Email: fmt.Sprintf("u%d@x.com", i)},
			&dto.UpsertReviewRequest{ScholarshipID: scholarship.ID, Rating: rating})
		require.NoError(t, err)
	}
	stored, _ := scholarships.FindByID(nil, scholarship.ID)
	assert.Equal(t, 5, stored.Ratings) // 4.5 округляется от нуля
	assert.Equal(t, int64(2), stored.TotalReview)

	all, err := svc.ListAll(ctx, nil)
	require.NoError(t, err)
	for _, rv := range all {
		_, err := svc.Delete(ctx, nil, rv.ID)
		require.NoError(t, err)
	}
	stored, _ = scholarships.FindByID(nil, scholarship.ID)
	assert.Equal(t, 0, stored.Ratings)
	assert.Equal(t, int64(0), stored.TotalReview)
}

func TestReviewUpsertRequiresExistingScholarship(t *testing.T) {
	reviews := newFakeReviewRepo()
	scholarships := newFakeScholarshipRepo()
	svc := NewReviewService(reviews, scholarships, newFakeUserRepo(), NewRatingAggregator(reviews, scholarships))

	_, err := svc.Upsert(ctx, nil, auth.Identity{Email: "s@x.com"}, &dto.UpsertReviewRequest{ScholarshipID: models.NewID(), Rating: 3})
	assertAppError(t, err, apperrors.ErrScholarshipNotFound)
	assert.Empty(t, reviews.items)
}

// ---- wishlists ----

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc := NewWishlistService(&fakeWishlistRepo{}, newFakeScholarshipRepo())
	id := models.NewID()

	res, err := svc.Add(ctx, nil, "s@x.com", &dto.AddWishlistRequest{ScholarshipID: id})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.InsertedID)

	res, err = svc.Add(ctx, nil, "s@x.com", &dto.AddWishlistRequest{ScholarshipID: id})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "already in wishlist", res.Message)

	_, err = svc.Add(ctx, nil, "s@x.com", &dto.AddWishlistRequest{ScholarshipID: id, UserEmail: "other@x.com"})
	assertAppError(t, err, apperrors.ErrIdentityMismatch)
}

func TestWishlistListSkipsDanglingReferences(t *testing.T) {
	first := &models.Scholarship{ScholarshipName: "First", State: "Kerala", ScholarshipAmount: 1000}
	second := &models.Scholarship{ScholarshipName: "Second"}
	wishlists := &fakeWishlistRepo{}
	svc := NewWishlistService(wishlists, newFakeScholarshipRepo(first, second))

	wishlists.items = []*models.Wishlist{
		{ID: models.NewID(), UserEmail: "s@x.com", ScholarshipID: second.ID},
		{ID: models.NewID(), UserEmail: "s@x.com", ScholarshipID: "garbage"},
		{ID: models.NewID(), UserEmail: "s@x.com", ScholarshipID: models.NewID()},
		{ID: models.NewID(), UserEmail: "s@x.com", ScholarshipID: first.ID},
		{ID: models.NewID(), UserEmail: "other@x.com", ScholarshipID: first.ID},
	}

	items, err := svc.List(ctx, nil, "s@x.com", "s@x.com")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].ScholarshipName)
	assert.Equal(t, "First", items[1].ScholarshipName)
	assert.Equal(t, "Kerala", items[1].State)
	assert.Equal(t, 1000.0, items[1].ScholarshipAmount)

	_, err = svc.List(ctx, nil, "s@x.com", "other@x.com")
	assertAppError(t, err, apperrors.ErrIdentityMismatch)
}

func TestWishlistCheckAndDelete(t *testing.T) {
	wishlists := &fakeWishlistRepo{}
	svc := NewWishlistService(wishlists, newFakeScholarshipRepo())
	scholarshipID := models.NewID()

	check, err := svc.Check(ctx, nil, "s@x.com", "", scholarshipID)
	require.NoError(t, err)
	assert.False(t, check.IsSaved)
	assert.Nil(t, check.ID)

	res, err := svc.Add(ctx, nil, "s@x.com", &dto.AddWishlistRequest{ScholarshipID: scholarshipID})
	require.NoError(t, err)

	check, err = svc.Check(ctx, nil, "s@x.com", "s@x.com", scholarshipID)
	require.NoError(t, err)
	assert.True(t, check.IsSaved)
	require.NotNil(t, check.ID)
	assert.Equal(t, res.InsertedID, *check.ID)

	_, err = svc.Delete(ctx, nil, "other@x.com", res.InsertedID)
	assertAppError(t, err, apperrors.ErrNotOwner)

	n, err := svc.Delete(ctx, nil, "s@x.com", res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAuthServiceIssuesParsableToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "scholarly", time.Hour)
	svc := NewAuthService(tokens)

	raw, err := svc.IssueToken(ctx, &dto.IssueTokenRequest{Email: "S@x.com", Name: "Sam"})
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "s@x.com", claims.Email)
}
