package ent

import (
	"context"

	"github.com/coursewave/coursewave-app/ent"
	"github.com/coursewave/coursewave-app/ent/enrollment"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

type enrollmentRepo struct {
	db *ent.Client
}

// NewEnrollmentRepo constructs the ent-backed enrollment repository.
func NewEnrollmentRepo(db *ent.Client) repository.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) toModel(e *ent.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(e.ID, idgen.EntityTypeEnrollment)
	userID, _ := idgen.GeneratePublicID(e.UserID, idgen.EntityTypeUser)
	courseID, _ := idgen.GeneratePublicID(e.CourseID, idgen.EntityTypeCourse)
	return &model.Enrollment{
		ID:        publicID,
		CreatedAt: e.CreatedAt,
		UserID:    userID,
		CourseID:  courseID,
	}
}

func (r *enrollmentRepo) Create(ctx context.Context, userID, courseID uint) (*model.Enrollment, error) {
	entity, err := r.db.Enrollment.Create().
		SetUserID(userID).
		SetCourseID(courseID).
		Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *enrollmentRepo) Delete(ctx context.Context, userID, courseID uint) error {
	n, err := r.db.Enrollment.Delete().
		Where(
			enrollment.UserIDEQ(userID),
			enrollment.CourseIDEQ(courseID),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return constant.ErrNotFound
	}
	return nil
}

func (r *enrollmentRepo) Exists(ctx context.Context, userID, courseID uint) (bool, error) {
	return r.db.Enrollment.Query().
		Where(
			enrollment.UserIDEQ(userID),
			enrollment.CourseIDEQ(courseID),
		).
		Exist(ctx)
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID uint) ([]*model.Enrollment, error) {
	entities, err := r.db.Enrollment.Query().
		Where(enrollment.UserIDEQ(userID)).
		Order(ent.Desc(enrollment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	models := make([]*model.Enrollment, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *enrollmentRepo) CountByCourse(ctx context.Context, courseID uint) (int, error) {
	return r.db.Enrollment.Query().
		Where(enrollment.CourseIDEQ(courseID)).
		Count(ctx)
}
