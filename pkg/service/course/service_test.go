package course

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
	"github.com/coursewave/coursewave-app/pkg/service/parser"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeCourseRepo struct {
	nextID  uint
	courses map[uint]*model.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1, courses: make(map[uint]*model.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, params *repository.CreateCourseParams) (*model.Course, error) {
	id := r.nextID
	r.nextID++
	publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeCourse)
	level := params.Level
	if level == "" {
		level = model.LevelBeginner
	}
	status := params.Status
	if status == "" {
		status = model.StatusDraft
	}
	c := &model.Course{
		ID:              publicID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		Title:           params.Title,
		Slug:            params.Slug,
		Summary:         params.Summary,
		DescriptionMD:   params.DescriptionMD,
		DescriptionHTML: params.DescriptionHTML,
		CoverImage:      params.CoverImage,
		Category:        params.Category,
		Level:           level,
		Status:          status,
	}
	r.courses[id] = c
	return c, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, id uint, params *repository.UpdateCourseParams) (*model.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	if params.Title != nil {
		c.Title = *params.Title
	}
	if params.Summary != nil {
		c.Summary = *params.Summary
	}
	if params.DescriptionMD != nil {
		c.DescriptionMD = *params.DescriptionMD
	}
	if params.DescriptionHTML != nil {
		c.DescriptionHTML = *params.DescriptionHTML
	}
	if params.CoverImage != nil {
		c.CoverImage = *params.CoverImage
	}
	if params.Category != nil {
		c.Category = *params.Category
	}
	if params.Level != nil {
		c.Level = *params.Level
	}
	if params.Status != nil {
		c.Status = *params.Status
	}
	c.UpdatedAt = time.Now()
	return c, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.courses[id]; !ok {
		return constant.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, constant.ErrNotFound
}

func (r *fakeCourseRepo) FindBySlug(_ context.Context, slug string) (*model.Course, error) {
	for _, c := range r.courses {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeCourseRepo) List(_ context.Context, status string) ([]*model.Course, error) {
	ids := make([]uint, 0, len(r.courses))
	for id := range r.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*model.Course
	for _, id := range ids {
		if status != "" && r.courses[id].Status != status {
			continue
		}
		out = append(out, r.courses[id])
	}
	return out, nil
}

func (r *fakeCourseRepo) CountEnrollments(_ context.Context, ids []uint) (map[uint]int, error) {
	return map[uint]int{}, nil
}

type fakeEnrollmentRepo struct {
	nextID      uint
	enrollments map[uint][2]uint
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{nextID: 1, enrollments: make(map[uint][2]uint)}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, userID, courseID uint) (*model.Enrollment, error) {
	for _, pair := range r.enrollments {
		if pair[0] == userID && pair[1] == courseID {
			return nil, constant.ErrConflict
		}
	}
	id := r.nextID
	r.nextID++
	r.enrollments[id] = [2]uint{userID, courseID}
	publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeEnrollment)
	userPublicID, _ := idgen.GeneratePublicID(userID, idgen.EntityTypeUser)
	coursePublicID, _ := idgen.GeneratePublicID(courseID, idgen.EntityTypeCourse)
	return &model.Enrollment{
		ID:        publicID,
		CreatedAt: time.Now(),
		UserID:    userPublicID,
		CourseID:  coursePublicID,
	}, nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, userID, courseID uint) error {
	for id, pair := range r.enrollments {
		if pair[0] == userID && pair[1] == courseID {
			delete(r.enrollments, id)
			return nil
		}
	}
	return constant.ErrNotFound
}

func (r *fakeEnrollmentRepo) Exists(_ context.Context, userID, courseID uint) (bool, error) {
	for _, pair := range r.enrollments {
		if pair[0] == userID && pair[1] == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEnrollmentRepo) ListByUser(_ context.Context, userID uint) ([]*model.Enrollment, error) {
	var out []*model.Enrollment
	for id, pair := range r.enrollments {
		if pair[0] != userID {
			continue
		}
		publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeEnrollment)
		userPublicID, _ := idgen.GeneratePublicID(pair[0], idgen.EntityTypeUser)
		coursePublicID, _ := idgen.GeneratePublicID(pair[1], idgen.EntityTypeCourse)
		out = append(out, &model.Enrollment{
			ID:        publicID,
			CreatedAt: time.Now(),
			UserID:    userPublicID,
			CourseID:  coursePublicID,
		})
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) CountByCourse(_ context.Context, courseID uint) (int, error) {
	n := 0
	for _, pair := range r.enrollments {
		if pair[1] == courseID {
			n++
		}
	}
	return n, nil
}

func newTestService() (Service, *fakeCourseRepo, *fakeEnrollmentRepo) {
	repo := newFakeCourseRepo()
	enrollments := newFakeEnrollmentRepo()
	return NewService(repo, enrollments, parser.NewService()), repo, enrollments
}

func mustCreate(t *testing.T, svc Service, req *model.CreateCourseRequest) *model.CourseResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func TestCreateRendersMarkdown(t *testing.T) {
	svc, _, _ := newTestService()

	resp := mustCreate(t, svc, &model.CreateCourseRequest{
		Title:         "Go From Scratch",
		DescriptionMD: "# Welcome\n\nLearn **Go** here.",
	})

	assert.True(t, strings.HasPrefix(resp.Slug, "go-from-scratch-"))
	assert.Contains(t, resp.DescriptionHTML, "<h1")
	assert.Contains(t, resp.DescriptionHTML, "<strong>Go</strong>")
	assert.Equal(t, model.StatusDraft, resp.Status)
	assert.Equal(t, model.LevelBeginner, resp.Level)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), &model.CreateCourseRequest{Title: "  "})
	assert.True(t, constant.IsValidationError(err))
}

func TestUpdateReRendersMarkdown(t *testing.T) {
	svc, _, _ := newTestService()
	created := mustCreate(t, svc, &model.CreateCourseRequest{
		Title:         "Go From Scratch",
		DescriptionMD: "old",
	})

	newMD := "updated *now*"
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateCourseRequest{
		DescriptionMD: &newMD,
	})
	require.NoError(t, err)
	assert.Contains(t, updated.DescriptionHTML, "<em>now</em>")
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	svc, _, _ := newTestService()
	created := mustCreate(t, svc, &model.CreateCourseRequest{Title: "Hidden"})

	_, err := svc.GetBySlug(context.Background(), created.Slug)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestEnrollLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	published := model.StatusPublished
	created := mustCreate(t, svc, &model.CreateCourseRequest{Title: "Open Course"})
	_, err := svc.Update(context.Background(), created.ID, &model.UpdateCourseRequest{Status: &published})
	require.NoError(t, err)

	userID, _ := idgen.GeneratePublicID(7, idgen.EntityTypeUser)

	enrollment, err := svc.Enroll(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, enrollment.CourseID)
	require.NotNil(t, enrollment.Course)

	// Enrolling twice in the same course is rejected.
	_, err = svc.Enroll(context.Background(), userID, created.ID)
	assert.True(t, constant.IsValidationError(err))

	mine, err := svc.ListEnrollments(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, svc.Unenroll(context.Background(), userID, created.ID))
	mine, err = svc.ListEnrollments(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// Unenrolling again reports not-found, same as any other missing record.
	err = svc.Unenroll(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestEnrollRequiresPublishedCourse(t *testing.T) {
	svc, _, _ := newTestService()
	created := mustCreate(t, svc, &model.CreateCourseRequest{Title: "Draft Course"})

	userID, _ := idgen.GeneratePublicID(7, idgen.EntityTypeUser)
	_, err := svc.Enroll(context.Background(), userID, created.ID)
	assert.True(t, constant.IsValidationError(err))
}
