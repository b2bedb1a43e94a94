package course

import (
	"context"
	"errors"
	"strings"

	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
	"github.com/coursewave/coursewave-app/pkg/service/parser"
	"github.com/coursewave/coursewave-app/pkg/slug"
)

// Service is the course business layer. Course descriptions are authored
// in markdown and stored alongside their sanitized HTML rendering.
type Service interface {
	Create(ctx context.Context, req *model.CreateCourseRequest) (*model.CourseResponse, error)
	Update(ctx context.Context, publicID string, req *model.UpdateCourseRequest) (*model.CourseResponse, error)
	Delete(ctx context.Context, publicID string) error
	Get(ctx context.Context, publicID string) (*model.CourseResponse, error)
	GetBySlug(ctx context.Context, slug string) (*model.CourseResponse, error)
	List(ctx context.Context, status string) ([]*model.CourseResponse, error)
	ListPublished(ctx context.Context) ([]*model.CourseResponse, error)
	Enroll(ctx context.Context, userID, coursePublicID string) (*model.EnrollmentResponse, error)
	Unenroll(ctx context.Context, userID, coursePublicID string) error
	ListEnrollments(ctx context.Context, userID string) ([]*model.EnrollmentResponse, error)
}

type serviceImpl struct {
	repo           repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	parserSvc      *parser.Service
}

// NewService wires the course service.
func NewService(
	repo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	parserSvc *parser.Service,
) Service {
	return &serviceImpl{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		parserSvc:      parserSvc,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.CourseResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, constant.NewValidationError("title is required")
	}
	if err := req.Validate(); err != nil {
		return nil, constant.NewValidationError(err.Error())
	}
	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !model.ValidStatus(status) {
		return nil, constant.NewValidationError("unknown status: " + status)
	}

	html := ""
	if req.DescriptionMD != "" {
		var err error
		html, err = s.parserSvc.RenderMarkdown(req.DescriptionMD)
		if err != nil {
			return nil, constant.NewValidationError("description markdown cannot be rendered")
		}
	}

	created, err := s.repo.Create(ctx, &repository.CreateCourseParams{
		Title:           title,
		Slug:            slug.Make(title),
		Summary:         strings.TrimSpace(req.Summary),
		DescriptionMD:   req.DescriptionMD,
		DescriptionHTML: html,
		CoverImage:      req.CoverImage,
		Category:        strings.TrimSpace(req.Category),
		Level:           req.Level,
		Status:          status,
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, created, true), nil
}

func (s *serviceImpl) Update(ctx context.Context, publicID string, req *model.UpdateCourseRequest) (*model.CourseResponse, error) {
	dbID, err := decodeCourseID(publicID)
	if err != nil {
		return nil, err
	}

	params := &repository.UpdateCourseParams{
		Summary:    req.Summary,
		CoverImage: req.CoverImage,
		Category:   req.Category,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, constant.NewValidationError("title is required")
		}
		params.Title = &title
	}
	if req.DescriptionMD != nil {
		html, err := s.parserSvc.RenderMarkdown(*req.DescriptionMD)
		if err != nil {
			return nil, constant.NewValidationError("description markdown cannot be rendered")
		}
		params.DescriptionMD = req.DescriptionMD
		params.DescriptionHTML = &html
	}
	if req.Level != nil {
		switch *req.Level {
		case model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced:
		default:
			return nil, constant.NewValidationError("unknown level: " + *req.Level)
		}
		params.Level = req.Level
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, constant.NewValidationError("unknown status: " + *req.Status)
		}
		params.Status = req.Status
	}

	updated, err := s.repo.Update(ctx, dbID, params)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, updated, true), nil
}

func (s *serviceImpl) Delete(ctx context.Context, publicID string) error {
	dbID, err := decodeCourseID(publicID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, dbID)
}

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.CourseResponse, error) {
	dbID, err := decodeCourseID(publicID)
	if err != nil {
		return nil, constant.ErrNotFound
	}
	entity, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, entity, true), nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, courseSlug string) (*model.CourseResponse, error) {
	entity, err := s.repo.FindBySlug(ctx, courseSlug)
	if err != nil {
		return nil, err
	}
	if entity.Status != model.StatusPublished {
		return nil, constant.ErrNotFound
	}
	return s.toResponse(ctx, entity, true), nil
}

func (s *serviceImpl) List(ctx context.Context, status string) ([]*model.CourseResponse, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, constant.NewValidationError("unknown status: " + status)
	}
	courses, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, courses, false), nil
}

func (s *serviceImpl) ListPublished(ctx context.Context) ([]*model.CourseResponse, error) {
	courses, err := s.repo.List(ctx, model.StatusPublished)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, courses, false), nil
}

func (s *serviceImpl) Enroll(ctx context.Context, userID, coursePublicID string) (*model.EnrollmentResponse, error) {
	userDBID, err := decodeUserID(userID)
	if err != nil {
		return nil, err
	}
	courseDBID, err := decodeCourseID(coursePublicID)
	if err != nil {
		return nil, err
	}

	entity, err := s.repo.FindByID(ctx, courseDBID)
	if err != nil {
		return nil, err
	}
	if entity.Status != model.StatusPublished {
		return nil, constant.NewValidationError("course is not open for enrollment")
	}

	enrollment, err := s.enrollmentRepo.Create(ctx, userDBID, courseDBID)
	if err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return nil, constant.NewValidationError("already enrolled in this course")
		}
		return nil, err
	}

	return &model.EnrollmentResponse{
		ID:        enrollment.ID,
		CreatedAt: enrollment.CreatedAt,
		UserID:    enrollment.UserID,
		CourseID:  enrollment.CourseID,
		Course:    s.toResponse(ctx, entity, false),
	}, nil
}

func (s *serviceImpl) Unenroll(ctx context.Context, userID, coursePublicID string) error {
	userDBID, err := decodeUserID(userID)
	if err != nil {
		return err
	}
	courseDBID, err := decodeCourseID(coursePublicID)
	if err != nil {
		return err
	}
	return s.enrollmentRepo.Delete(ctx, userDBID, courseDBID)
}

func (s *serviceImpl) ListEnrollments(ctx context.Context, userID string) ([]*model.EnrollmentResponse, error) {
	userDBID, err := decodeUserID(userID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userDBID)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		resp := &model.EnrollmentResponse{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UserID:    e.UserID,
			CourseID:  e.CourseID,
		}
		if dbID, err := decodeCourseID(e.CourseID); err == nil {
			if entity, err := s.repo.FindByID(ctx, dbID); err == nil {
				resp.Course = s.toResponse(ctx, entity, false)
			}
		}
		responses[i] = resp
	}
	return responses, nil
}

// === helpers ===

func decodeCourseID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCourse {
		return 0, constant.NewValidationError("invalid course ID")
	}
	return dbID, nil
}

func decodeUserID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return 0, constant.NewValidationError("invalid user ID")
	}
	return dbID, nil
}

func (s *serviceImpl) toResponse(ctx context.Context, c *model.Course, includeDescription bool) *model.CourseResponse {
	responses := s.toResponses(ctx, []*model.Course{c}, includeDescription)
	return responses[0]
}

func (s *serviceImpl) toResponses(ctx context.Context, courses []*model.Course, includeDescription bool) []*model.CourseResponse {
	ids := make([]uint, 0, len(courses))
	for _, c := range courses {
		if dbID, err := decodeCourseID(c.ID); err == nil {
			ids = append(ids, dbID)
		}
	}
	counts, err := s.repo.CountEnrollments(ctx, ids)
	if err != nil {
		counts = nil
	}

	responses := make([]*model.CourseResponse, len(courses))
	for i, c := range courses {
		resp := &model.CourseResponse{
			ID:         c.ID,
			CreatedAt:  c.CreatedAt,
			UpdatedAt:  c.UpdatedAt,
			Title:      c.Title,
			Slug:       c.Slug,
			Summary:    c.Summary,
			CoverImage: c.CoverImage,
			Category:   c.Category,
			Level:      c.Level,
			Status:     c.Status,
		}
		if includeDescription {
			resp.DescriptionMD = c.DescriptionMD
			resp.DescriptionHTML = c.DescriptionHTML
		}
		if dbID, err := decodeCourseID(c.ID); err == nil {
			resp.Enrolled = counts[dbID]
		}
		responses[i] = resp
	}
	return responses
}
