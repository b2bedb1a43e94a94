package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Article statuses. Every article is in exactly one of these states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is one of the known article statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// --- Core domain object ---

// Article is the core domain model the service layer works with.
// ID and AuthorID are public identifiers, never database keys.
type Article struct {
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Category    string
	Tags        []string
	Status      string
	Views       int
	AuthorID    string
}

// Author carries the subset of user fields embedded in article responses.
type Author struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}

// --- API data transfer objects ---

// CreateArticleRequest defines the request body for creating an article.
// Tags arrive as a single comma-separated string and are split on save.
type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"cover_image"`
	Category   string `json:"category"`
	Tags       string `json:"tags"`
	Status     string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// Validate checks field-level constraints that gin's binding tags can't
// express.
func (r *CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Category, validation.Length(0, 64)),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusArchived).Error("must be a valid status")),
	)
}

// UpdateArticleRequest defines the request body for updating an article.
// Pointer fields distinguish "unset" from "set to zero value". The slug is
// immutable after creation and therefore absent here.
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt"`
	CoverImage *string `json:"cover_image"`
	Category   *string `json:"category"`
	Tags       *string `json:"tags"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// ArticleResponse is the standard API shape for a single article.
type ArticleResponse struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content,omitempty"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"cover_image"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	Views       int        `json:"views"`
	Author      *Author    `json:"author"`
}

// ListArticlesOptions narrows the admin article listing. Zero values mean
// "no filter" for that dimension.
type ListArticlesOptions struct {
	Query  string
	Status string
}

// ArticleStats aggregates counts for the admin dashboard.
type ArticleStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Draft      int `json:"draft"`
	Archived   int `json:"archived"`
	TotalViews int `json:"total_views"`
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries. It never returns nil.
func ParseTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
