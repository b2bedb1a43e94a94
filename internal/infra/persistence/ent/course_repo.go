package ent

import (
	"context"
	"time"

	"github.com/coursewave/coursewave-app/ent"
	"github.com/coursewave/coursewave-app/ent/course"
	"github.com/coursewave/coursewave-app/ent/enrollment"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

type courseRepo struct {
	db *ent.Client
}

// NewCourseRepo constructs the ent-backed course repository.
func NewCourseRepo(db *ent.Client) repository.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) toModel(c *ent.Course) *model.Course {
	if c == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(c.ID, idgen.EntityTypeCourse)
	return &model.Course{
		ID:              publicID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Title:           c.Title,
		Slug:            c.Slug,
		Summary:         c.Summary,
		DescriptionMD:   c.DescriptionMd,
		DescriptionHTML: c.DescriptionHTML,
		CoverImage:      c.CoverImage,
		Category:        c.Category,
		Level:           string(c.Level),
		Status:          string(c.Status),
	}
}

func (r *courseRepo) Create(ctx context.Context, params *repository.CreateCourseParams) (*model.Course, error) {
	creator := r.db.Course.Create().
		SetTitle(params.Title).
		SetSlug(params.Slug).
		SetSummary(params.Summary).
		SetDescriptionMd(params.DescriptionMD).
		SetDescriptionHTML(params.DescriptionHTML).
		SetCoverImage(params.CoverImage).
		SetCategory(params.Category)
	if params.Level != "" {
		creator.SetLevel(course.Level(params.Level))
	}
	if params.Status != "" {
		creator.SetStatus(course.Status(params.Status))
	}
	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *courseRepo) Update(ctx context.Context, id uint, params *repository.UpdateCourseParams) (*model.Course, error) {
	updater := r.db.Course.UpdateOneID(id)
	if params.Title != nil {
		updater.SetTitle(*params.Title)
	}
	if params.Summary != nil {
		updater.SetSummary(*params.Summary)
	}
	if params.DescriptionMD != nil {
		updater.SetDescriptionMd(*params.DescriptionMD)
	}
	if params.DescriptionHTML != nil {
		updater.SetDescriptionHTML(*params.DescriptionHTML)
	}
	if params.CoverImage != nil {
		updater.SetCoverImage(*params.CoverImage)
	}
	if params.Category != nil {
		updater.SetCategory(*params.Category)
	}
	if params.Level != nil {
		updater.SetLevel(course.Level(*params.Level))
	}
	if params.Status != nil {
		updater.SetStatus(course.Status(*params.Status))
	}
	updater.SetUpdatedAt(time.Now())

	entity, err := updater.Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.Course.DeleteOneID(id).Exec(ctx))
}

func (r *courseRepo) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	entity, err := r.db.Course.Query().Where(course.ID(id)).Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *courseRepo) FindBySlug(ctx context.Context, slug string) (*model.Course, error) {
	entity, err := r.db.Course.Query().Where(course.SlugEQ(slug)).Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *courseRepo) List(ctx context.Context, status string) ([]*model.Course, error) {
	query := r.db.Course.Query()
	if status != "" {
		query = query.Where(course.StatusEQ(course.Status(status)))
	}
	entities, err := query.
		Order(ent.Desc(course.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	models := make([]*model.Course, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *courseRepo) CountEnrollments(ctx context.Context, ids []uint) (map[uint]int, error) {
	result := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []struct {
		CourseID uint `json:"course_id"`
		Count    int  `json:"count"`
	}
	err := r.db.Enrollment.Query().
		Where(enrollment.CourseIDIn(ids...)).
		GroupBy(enrollment.FieldCourseID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.CourseID] = row.Count
	}
	return result, nil
}
