package article

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
	"github.com/coursewave/coursewave-app/pkg/service/parser"
	"github.com/coursewave/coursewave-app/pkg/slug"
)

// excerptLimit caps auto-derived excerpts, in runes.
const excerptLimit = 200

// Service is the article business layer. Admin operations see every
// article; the public operations only see published ones, except Search,
// which intentionally matches all statuses.
type Service interface {
	Create(ctx context.Context, req *model.CreateArticleRequest, authorID string) (*model.ArticleResponse, error)
	Update(ctx context.Context, publicID string, req *model.UpdateArticleRequest) (*model.ArticleResponse, error)
	Delete(ctx context.Context, publicID string) error
	Get(ctx context.Context, publicID string) (*model.ArticleResponse, error)
	List(ctx context.Context, opts *model.ListArticlesOptions) ([]*model.ArticleResponse, error)
	ListPublished(ctx context.Context, category string) ([]*model.ArticleResponse, error)
	GetBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error)
	Search(ctx context.Context, query string) ([]*model.ArticleResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*model.ArticleStats, error)
}

type serviceImpl struct {
	repo      repository.ArticleRepository
	userRepo  repository.UserRepository
	parserSvc *parser.Service
}

// NewService wires the article service with its repositories and the
// content parser.
func NewService(
	repo repository.ArticleRepository,
	userRepo repository.UserRepository,
	parserSvc *parser.Service,
) Service {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		parserSvc: parserSvc,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req *model.CreateArticleRequest, authorID string) (*model.ArticleResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, constant.NewValidationError("title is required")
	}
	if err := req.Validate(); err != nil {
		return nil, constant.NewValidationError(err.Error())
	}
	if s.parserSvc.IsEmptyContent(req.Content) {
		return nil, constant.NewValidationError("content is required")
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !model.ValidStatus(status) {
		return nil, constant.NewValidationError("unknown status: " + status)
	}

	authorDBID, entityType, err := idgen.DecodePublicID(authorID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.NewValidationError("invalid author ID")
	}

	content := s.parserSvc.SanitizeHTML(req.Content)
	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = s.parserSvc.MakeExcerpt(content, excerptLimit)
	}

	params := &repository.CreateArticleParams{
		Title:      title,
		Slug:       slug.Make(title),
		Content:    content,
		Excerpt:    excerpt,
		CoverImage: req.CoverImage,
		Category:   strings.TrimSpace(req.Category),
		Tags:       model.ParseTags(req.Tags),
		Status:     status,
		AuthorID:   authorDBID,
	}
	if status == model.StatusPublished {
		now := time.Now()
		params.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, created, true), nil
}

func (s *serviceImpl) Update(ctx context.Context, publicID string, req *model.UpdateArticleRequest) (*model.ArticleResponse, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeArticle {
		return nil, constant.NewValidationError("invalid article ID")
	}

	existing, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}

	params := &repository.UpdateArticleParams{
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
	if req.Content != nil {
		if s.parserSvc.IsEmptyContent(*req.Content) {
			return nil, constant.NewValidationError("content is required")
		}
		content := s.parserSvc.SanitizeHTML(*req.Content)
		params.Content = &content
		if req.Excerpt == nil {
			excerpt := s.parserSvc.MakeExcerpt(content, excerptLimit)
			params.Excerpt = &excerpt
		}
	}
	if req.Excerpt != nil {
		excerpt := strings.TrimSpace(*req.Excerpt)
		params.Excerpt = &excerpt
	}
	if req.Tags != nil {
		params.Tags = model.ParseTags(*req.Tags)
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, constant.NewValidationError("unknown status: " + *req.Status)
		}
		params.Status = req.Status
		// The publication timestamp is written exactly once, on the
		// first transition to published.
		if *req.Status == model.StatusPublished && existing.PublishedAt == nil {
			now := time.Now()
			params.PublishedAt = &now
		}
	}

	updated, err := s.repo.Update(ctx, dbID, params)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, updated, true), nil
}

// Delete removes an article permanently. There is no tombstone; deleting a
// missing article reports not-found and leaves the store untouched.
func (s *serviceImpl) Delete(ctx context.Context, publicID string) error {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeArticle {
		return constant.NewValidationError("invalid article ID")
	}
	return s.repo.Delete(ctx, dbID)
}

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.ArticleResponse, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeArticle {
		return nil, constant.ErrNotFound
	}
	entity, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, entity, true), nil
}

func (s *serviceImpl) List(ctx context.Context, opts *model.ListArticlesOptions) ([]*model.ArticleResponse, error) {
	articles, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, articles, false), nil
}

func (s *serviceImpl) ListPublished(ctx context.Context, category string) ([]*model.ArticleResponse, error) {
	articles, err := s.repo.ListPublished(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, articles, false), nil
}

// GetBySlug serves the public article detail. The response carries the view
// count as it was before this read; the increment happens in the background
// and lands on the next read.
func (s *serviceImpl) GetBySlug(ctx context.Context, articleSlug string) (*model.ArticleResponse, error) {
	entity, err := s.repo.FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if entity.Status != model.StatusPublished {
		return nil, constant.ErrNotFound
	}

	dbID, _, err := idgen.DecodePublicID(entity.ID)
	if err == nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.repo.IncrementViews(ctx, dbID); err != nil {
				log.Printf("[article] incrementing views for %q failed: %v", articleSlug, err)
			}
		}()
	}

	return s.toResponse(ctx, entity, true), nil
}

// Search matches articles of any status. Callers that only want published
// results must filter themselves.
func (s *serviceImpl) Search(ctx context.Context, query string) ([]*model.ArticleResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*model.ArticleResponse{}, nil
	}
	articles, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, articles, false), nil
}

func (s *serviceImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (*model.ArticleStats, error) {
	return s.repo.Stats(ctx)
}

// === response assembly ===

// resolveAuthors batch-loads the authors of a set of articles, keyed by
// their public ID. A failed lookup degrades to responses without author
// info rather than failing the read.
func (s *serviceImpl) resolveAuthors(ctx context.Context, articles []*model.Article) map[string]*model.Author {
	idSet := make(map[uint]struct{}, len(articles))
	ids := make([]uint, 0, len(articles))
	for _, a := range articles {
		dbID, entityType, err := idgen.DecodePublicID(a.AuthorID)
		if err != nil || entityType != idgen.EntityTypeUser {
			continue
		}
		if _, seen := idSet[dbID]; !seen {
			idSet[dbID] = struct{}{}
			ids = append(ids, dbID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Printf("[article] resolving %d authors failed: %v", len(ids), err)
		return nil
	}

	authors := make(map[string]*model.Author, len(users))
	for _, u := range users {
		nickname := u.Nickname
		if nickname == "" {
			nickname = u.Username
		}
		authors[u.ID] = &model.Author{ID: u.ID, Nickname: nickname, Avatar: u.Avatar}
	}
	return authors
}

func buildResponse(a *model.Article, author *model.Author, includeContent bool) *model.ArticleResponse {
	resp := &model.ArticleResponse{
		ID:          a.ID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		PublishedAt: a.PublishedAt,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		CoverImage:  a.CoverImage,
		Category:    a.Category,
		Tags:        a.Tags,
		Status:      a.Status,
		Views:       a.Views,
		Author:      author,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if includeContent {
		resp.Content = a.Content
	}
	return resp
}

func (s *serviceImpl) toResponse(ctx context.Context, a *model.Article, includeContent bool) *model.ArticleResponse {
	authors := s.resolveAuthors(ctx, []*model.Article{a})
	return buildResponse(a, authors[a.AuthorID], includeContent)
}

func (s *serviceImpl) toResponses(ctx context.Context, articles []*model.Article, includeContent bool) []*model.ArticleResponse {
	authors := s.resolveAuthors(ctx, articles)
	responses := make([]*model.ArticleResponse, len(articles))
	for i, a := range articles {
		responses[i] = buildResponse(a, authors[a.AuthorID], includeContent)
	}
	return responses
}
