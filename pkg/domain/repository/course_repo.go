package repository

import (
	"context"

	"github.com/coursewave/coursewave-app/pkg/domain/model"
)

// CreateCourseParams bundles the data persisted when a course is created.
type CreateCourseParams struct {
	Title           string
	Slug            string
	Summary         string
	DescriptionMD   string
	DescriptionHTML string
	CoverImage      string
	Category        string
	Level           string
	Status          string
}

// UpdateCourseParams carries the mutable fields of a course. Nil pointers
// leave the stored value untouched.
type UpdateCourseParams struct {
	Title           *string
	Summary         *string
	DescriptionMD   *string
	DescriptionHTML *string
	CoverImage      *string
	Category        *string
	Level           *string
	Status          *string
}

// CourseRepository defines the persistence contract for courses.
type CourseRepository interface {
	Create(ctx context.Context, params *CreateCourseParams) (*model.Course, error)
	Update(ctx context.Context, id uint, params *UpdateCourseParams) (*model.Course, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindBySlug(ctx context.Context, slug string) (*model.Course, error)
	List(ctx context.Context, status string) ([]*model.Course, error)
	// CountEnrollments returns the enrollment count per course database ID.
	CountEnrollments(ctx context.Context, ids []uint) (map[uint]int, error)
}

// EnrollmentRepository defines the persistence contract for enrollments.
type EnrollmentRepository interface {
	// Create inserts an enrollment. The (user, course) pair is unique;
	// violating it surfaces as a constraint error.
	Create(ctx context.Context, userID, courseID uint) (*model.Enrollment, error)
	Delete(ctx context.Context, userID, courseID uint) error
	Exists(ctx context.Context, userID, courseID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Enrollment, error)
	CountByCourse(ctx context.Context, courseID uint) (int, error)
}
