package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course is the core course model. DescriptionMD is the authored markdown;
// DescriptionHTML is the sanitized rendering served to clients.
type Course struct {
	ID              string
	CreatedAt       time.Time
	UpdatedAt       time.Time
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

// CreateCourseRequest defines the request body for creating a course.
type CreateCourseRequest struct {
	Title         string `json:"title" binding:"required"`
	Summary       string `json:"summary"`
	DescriptionMD string `json:"description_md"`
	CoverImage    string `json:"cover_image"`
	Category      string `json:"category"`
	Level         string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Status        string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// Validate checks field-level constraints that gin's binding tags can't
// express.
func (r *CreateCourseRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Summary, validation.Length(0, 500)),
		validation.Field(&r.Category, validation.Length(0, 64)),
		validation.Field(&r.Level, validation.In(LevelBeginner, LevelIntermediate, LevelAdvanced).Error("must be a valid level")),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusArchived).Error("must be a valid status")),
	)
}

// UpdateCourseRequest defines the request body for updating a course.
type UpdateCourseRequest struct {
	Title         *string `json:"title"`
	Summary       *string `json:"summary"`
	DescriptionMD *string `json:"description_md"`
	CoverImage    *string `json:"cover_image"`
	Category      *string `json:"category"`
	Level         *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Status        *string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// CourseResponse is the standard API shape for a course.
type CourseResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Summary         string    `json:"summary"`
	DescriptionMD   string    `json:"description_md,omitempty"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	CoverImage      string    `json:"cover_image"`
	Category        string    `json:"category"`
	Level           string    `json:"level"`
	Status          string    `json:"status"`
	Enrolled        int       `json:"enrolled"`
}

// Enrollment links a user to a course. A user enrolls in a course at most
// once.
type Enrollment struct {
	ID        string
	CreatedAt time.Time
	UserID    string
	CourseID  string
}

// EnrollmentResponse is the standard API shape for an enrollment.
type EnrollmentResponse struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    string          `json:"user_id"`
	CourseID  string          `json:"course_id"`
	Course    *CourseResponse `json:"course,omitempty"`
}
