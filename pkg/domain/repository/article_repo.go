package repository

import (
	"context"
	"time"

	"github.com/coursewave/coursewave-app/pkg/domain/model"
)

// CreateArticleParams bundles everything the persistence layer needs to
// create an article. The slug and author are fixed here; neither can change
// afterwards.
type CreateArticleParams struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Category    string
	Tags        []string
	Status      string
	PublishedAt *time.Time
	AuthorID    uint
}

// UpdateArticleParams carries the mutable fields of an article. Nil pointers
// leave the stored value untouched.
type UpdateArticleParams struct {
	Title       *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	Category    *string
	Tags        []string
	Status      *string
	PublishedAt *time.Time
}

// ArticleRepository defines the persistence contract for articles.
type ArticleRepository interface {
	Create(ctx context.Context, params *CreateArticleParams) (*model.Article, error)
	Update(ctx context.Context, id uint, params *UpdateArticleParams) (*model.Article, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
	// List returns all articles matching opts, newest first.
	List(ctx context.Context, opts *model.ListArticlesOptions) ([]*model.Article, error)
	// ListPublished returns published articles, optionally narrowed to a
	// category, newest publication first.
	ListPublished(ctx context.Context, category string) ([]*model.Article, error)
	// Search matches the query against title, content and excerpt,
	// regardless of status.
	Search(ctx context.Context, query string) ([]*model.Article, error)
	// Categories returns the distinct non-empty categories of published
	// articles.
	Categories(ctx context.Context) ([]string, error)
	// IncrementViews bumps the view counter by one atomically.
	IncrementViews(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*model.ArticleStats, error)
}
