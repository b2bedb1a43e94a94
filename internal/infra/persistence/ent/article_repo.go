package ent

import (
	"context"
	"time"

	"github.com/coursewave/coursewave-app/ent"
	"github.com/coursewave/coursewave-app/ent/article"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"

	entsql "entgo.io/ent/dialect/sql"
)

type articleRepo struct {
	db *ent.Client
}

// NewArticleRepo constructs the ent-backed article repository.
func NewArticleRepo(db *ent.Client) repository.ArticleRepository {
	return &articleRepo{db: db}
}

// toModel converts an ent.Article entity into the domain model.
func (r *articleRepo) toModel(a *ent.Article) *model.Article {
	if a == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(a.ID, idgen.EntityTypeArticle)
	authorID, _ := idgen.GeneratePublicID(a.AuthorID, idgen.EntityTypeUser)

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.Article{
		ID:          publicID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		PublishedAt: a.PublishedAt,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		CoverImage:  a.CoverImage,
		Category:    a.Category,
		Tags:        tags,
		Status:      string(a.Status),
		Views:       a.Views,
		AuthorID:    authorID,
	}
}

func (r *articleRepo) toModelSlice(entities []*ent.Article) []*model.Article {
	models := make([]*model.Article, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

func (r *articleRepo) Create(ctx context.Context, params *repository.CreateArticleParams) (*model.Article, error) {
	creator := r.db.Article.Create().
		SetTitle(params.Title).
		SetSlug(params.Slug).
		SetContent(params.Content).
		SetExcerpt(params.Excerpt).
		SetCoverImage(params.CoverImage).
		SetCategory(params.Category).
		SetTags(params.Tags).
		SetAuthorID(params.AuthorID)

	if params.Status != "" {
		creator.SetStatus(article.Status(params.Status))
	}
	if params.PublishedAt != nil {
		creator.SetPublishedAt(*params.PublishedAt)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *articleRepo) Update(ctx context.Context, id uint, params *repository.UpdateArticleParams) (*model.Article, error) {
	updater := r.db.Article.UpdateOneID(id)
	if params.Title != nil {
		updater.SetTitle(*params.Title)
	}
	if params.Content != nil {
		updater.SetContent(*params.Content)
	}
	if params.Excerpt != nil {
		updater.SetExcerpt(*params.Excerpt)
	}
	if params.CoverImage != nil {
		updater.SetCoverImage(*params.CoverImage)
	}
	if params.Category != nil {
		updater.SetCategory(*params.Category)
	}
	if params.Tags != nil {
		updater.SetTags(params.Tags)
	}
	if params.Status != nil {
		updater.SetStatus(article.Status(*params.Status))
	}
	if params.PublishedAt != nil {
		updater.SetPublishedAt(*params.PublishedAt)
	}
	updater.SetUpdatedAt(time.Now())

	entity, err := updater.Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *articleRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.Article.DeleteOneID(id).Exec(ctx))
}

func (r *articleRepo) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	entity, err := r.db.Article.Query().
		Where(article.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *articleRepo) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	entity, err := r.db.Article.Query().
		Where(article.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *articleRepo) List(ctx context.Context, opts *model.ListArticlesOptions) ([]*model.Article, error) {
	query := r.db.Article.Query()
	if opts != nil {
		if opts.Query != "" {
			query = query.Where(article.Or(
				article.TitleContainsFold(opts.Query),
				article.CategoryContainsFold(opts.Query),
			))
		}
		if opts.Status != "" {
			query = query.Where(article.StatusEQ(article.Status(opts.Status)))
		}
	}
	entities, err := query.
		Order(ent.Desc(article.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

func (r *articleRepo) ListPublished(ctx context.Context, category string) ([]*model.Article, error) {
	query := r.db.Article.Query().
		Where(article.StatusEQ(article.StatusPublished))
	if category != "" {
		query = query.Where(article.CategoryEQ(category))
	}
	entities, err := query.
		Order(ent.Desc(article.FieldPublishedAt), ent.Desc(article.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

// Search matches title, content and excerpt. Status is deliberately not
// part of the predicate.
func (r *articleRepo) Search(ctx context.Context, query string) ([]*model.Article, error) {
	entities, err := r.db.Article.Query().
		Where(article.Or(
			article.TitleContainsFold(query),
			article.ContentContainsFold(query),
			article.ExcerptContainsFold(query),
		)).
		Order(ent.Desc(article.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

func (r *articleRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.Article.Query().
		Where(
			article.StatusEQ(article.StatusPublished),
			article.CategoryNEQ(""),
		).
		Unique(true).
		Select(article.FieldCategory).
		Scan(ctx, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *articleRepo) IncrementViews(ctx context.Context, id uint) error {
	return translateError(r.db.Article.UpdateOneID(id).AddViews(1).Exec(ctx))
}

func (r *articleRepo) Stats(ctx context.Context) (*model.ArticleStats, error) {
	total, err := r.db.Article.Query().Count(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = r.db.Article.Query().
		GroupBy(article.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	stats := &model.ArticleStats{Total: total}
	for _, row := range rows {
		switch row.Status {
		case model.StatusPublished:
			stats.Published = row.Count
		case model.StatusDraft:
			stats.Draft = row.Count
		case model.StatusArchived:
			stats.Archived = row.Count
		}
	}

	// SUM over an empty table is NULL, hence the pointer.
	var viewRows []struct {
		Sum *int `json:"sum"`
	}
	err = r.db.Article.Query().
		Modify(func(s *entsql.Selector) {
			s.Select(entsql.As(entsql.Sum(s.C(article.FieldViews)), "sum"))
		}).
		Scan(ctx, &viewRows)
	if err != nil {
		return nil, err
	}
	if len(viewRows) > 0 && viewRows[0].Sum != nil {
		stats.TotalViews = *viewRows[0].Sum
	}
	return stats, nil
}
