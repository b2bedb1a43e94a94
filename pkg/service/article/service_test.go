package article

import (
	"context"
	"sort"
	"strings"
	"sync"
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

// === in-memory fakes ===

type fakeArticleRepo struct {
	mu          sync.Mutex
	nextID      uint
	articles    map[uint]*model.Article
	incremented chan uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		nextID:      1,
		articles:    make(map[uint]*model.Article),
		incremented: make(chan uint, 16),
	}
}

func (r *fakeArticleRepo) clone(a *model.Article) *model.Article {
	dup := *a
	dup.Tags = append([]string(nil), a.Tags...)
	if a.PublishedAt != nil {
		at := *a.PublishedAt
		dup.PublishedAt = &at
	}
	return &dup
}

func (r *fakeArticleRepo) Create(_ context.Context, params *repository.CreateArticleParams) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		if a.Slug == params.Slug {
			return nil, constant.ErrConflict
		}
	}
	id := r.nextID
	r.nextID++
	publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeArticle)
	authorID, _ := idgen.GeneratePublicID(params.AuthorID, idgen.EntityTypeUser)
	status := params.Status
	if status == "" {
		status = model.StatusDraft
	}
	a := &model.Article{
		ID:          publicID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		PublishedAt: params.PublishedAt,
		Title:       params.Title,
		Slug:        params.Slug,
		Content:     params.Content,
		Excerpt:     params.Excerpt,
		CoverImage:  params.CoverImage,
		Category:    params.Category,
		Tags:        append([]string(nil), params.Tags...),
		Status:      status,
		AuthorID:    authorID,
	}
	r.articles[id] = a
	return r.clone(a), nil
}

func (r *fakeArticleRepo) Update(_ context.Context, id uint, params *repository.UpdateArticleParams) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	if params.Title != nil {
		a.Title = *params.Title
	}
	if params.Content != nil {
		a.Content = *params.Content
	}
	if params.Excerpt != nil {
		a.Excerpt = *params.Excerpt
	}
	if params.CoverImage != nil {
		a.CoverImage = *params.CoverImage
	}
	if params.Category != nil {
		a.Category = *params.Category
	}
	if params.Tags != nil {
		a.Tags = append([]string(nil), params.Tags...)
	}
	if params.Status != nil {
		a.Status = *params.Status
	}
	if params.PublishedAt != nil {
		at := *params.PublishedAt
		a.PublishedAt = &at
	}
	a.UpdatedAt = time.Now()
	return r.clone(a), nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[id]; !ok {
		return constant.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) FindByID(_ context.Context, id uint) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return r.clone(a), nil
}

func (r *fakeArticleRepo) FindBySlug(_ context.Context, slug string) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		if a.Slug == slug {
			return r.clone(a), nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeArticleRepo) sorted() []*model.Article {
	ids := make([]uint, 0, len(r.articles))
	for id := range r.articles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := make([]*model.Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.clone(r.articles[id]))
	}
	return out
}

func (r *fakeArticleRepo) List(_ context.Context, opts *model.ListArticlesOptions) ([]*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Article
	for _, a := range r.sorted() {
		if opts != nil && opts.Status != "" && a.Status != opts.Status {
			continue
		}
		if opts != nil && opts.Query != "" {
			q := strings.ToLower(opts.Query)
			if !strings.Contains(strings.ToLower(a.Title), q) &&
				!strings.Contains(strings.ToLower(a.Category), q) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArticleRepo) ListPublished(_ context.Context, category string) ([]*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Article
	for _, a := range r.sorted() {
		if a.Status != model.StatusPublished {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArticleRepo) Search(_ context.Context, query string) ([]*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	var out []*model.Article
	for _, a := range r.sorted() {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, a := range r.articles {
		if a.Status != model.StatusPublished || a.Category == "" {
			continue
		}
		if _, ok := seen[a.Category]; !ok {
			seen[a.Category] = struct{}{}
			out = append(out, a.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeArticleRepo) IncrementViews(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return constant.ErrNotFound
	}
	a.Views++
	select {
	case r.incremented <- id:
	default:
	}
	return nil
}

func (r *fakeArticleRepo) Stats(_ context.Context) (*model.ArticleStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &model.ArticleStats{}
	for _, a := range r.articles {
		stats.Total++
		stats.TotalViews += a.Views
		switch a.Status {
		case model.StatusPublished:
			stats.Published++
		case model.StatusDraft:
			stats.Draft++
		case model.StatusArchived:
			stats.Archived++
		}
	}
	return stats, nil
}

type fakeUserRepo struct {
	users map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) add(id uint, nickname string) string {
	publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeUser)
	r.users[id] = &model.User{ID: publicID, Username: "user", Nickname: nickname}
	return publicID
}

func (r *fakeUserRepo) Create(context.Context, *repository.CreateUserParams) (*model.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uint) (map[uint]*model.User, error) {
	out := make(map[uint]*model.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByUsername(context.Context, string) (*model.User, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeUserRepo) UpdateLastLogin(context.Context, uint, time.Time) error { return nil }
func (r *fakeUserRepo) UpdateRole(context.Context, uint, string) error         { return nil }
func (r *fakeUserRepo) Count(context.Context) (int, error)                     { return len(r.users), nil }
func (r *fakeUserRepo) List(context.Context) ([]*model.User, error)            { return nil, nil }

// === test setup ===

type fixture struct {
	svc      Service
	repo     *fakeArticleRepo
	users    *fakeUserRepo
	authorID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeArticleRepo()
	users := newFakeUserRepo()
	authorID := users.add(1, "Ada")
	return &fixture{
		svc:      NewService(repo, users, parser.NewService()),
		repo:     repo,
		users:    users,
		authorID: authorID,
	}
}

func (f *fixture) mustCreate(t *testing.T, req *model.CreateArticleRequest) *model.ArticleResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), req, f.authorID)
	require.NoError(t, err)
	return resp
}

// === tests ===

func TestCreateDefaultsToDraft(t *testing.T) {
	f := newFixture(t)

	resp := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Getting Started",
		Content: "<p>welcome</p>",
	})

	assert.Equal(t, model.StatusDraft, resp.Status)
	assert.Nil(t, resp.PublishedAt)
	assert.Equal(t, 0, resp.Views)
	assert.True(t, strings.HasPrefix(resp.Slug, "getting-started-"))
	assert.NotNil(t, resp.Author)
	assert.Equal(t, "Ada", resp.Author.Nickname)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &model.CreateArticleRequest{
		Title:   "   ",
		Content: "<p>body</p>",
	}, f.authorID)

	assert.True(t, constant.IsValidationError(err))
}

func TestCreateRejectsEmptyEditorMarkup(t *testing.T) {
	f := newFixture(t)

	for _, content := range []string{"", "   ", "<p><br></p>"} {
		_, err := f.svc.Create(context.Background(), &model.CreateArticleRequest{
			Title:   "Has Title",
			Content: content,
		}, f.authorID)
		assert.True(t, constant.IsValidationError(err), "content %q", content)
	}
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	f := newFixture(t)

	resp := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Launch Day",
		Content: "<p>live</p>",
		Status:  model.StatusPublished,
	})

	require.NotNil(t, resp.PublishedAt)
	assert.WithinDuration(t, time.Now(), *resp.PublishedAt, time.Minute)
}

func TestPublishedAtSetOnlyOnce(t *testing.T) {
	f := newFixture(t)
	created := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Evergreen",
		Content: "<p>body</p>",
	})

	published := model.StatusPublished
	first, err := f.svc.Update(context.Background(), created.ID, &model.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, first.PublishedAt)
	stamp := *first.PublishedAt

	// Archive, then publish again. The original stamp must survive.
	archived := model.StatusArchived
	_, err = f.svc.Update(context.Background(), created.ID, &model.UpdateArticleRequest{Status: &archived})
	require.NoError(t, err)

	second, err := f.svc.Update(context.Background(), created.ID, &model.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, second.PublishedAt)
	assert.True(t, second.PublishedAt.Equal(stamp))
}

func TestSlugImmutableAcrossTitleUpdates(t *testing.T) {
	f := newFixture(t)
	created := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Original Title",
		Content: "<p>body</p>",
	})

	newTitle := "Renamed Completely"
	updated, err := f.svc.Update(context.Background(), created.ID, &model.UpdateArticleRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Completely", updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestTagsRoundTrip(t *testing.T) {
	f := newFixture(t)

	resp := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Tagged",
		Content: "<p>body</p>",
		Tags:    " go ,  web,, databases ",
	})
	assert.Equal(t, []string{"go", "web", "databases"}, resp.Tags)

	retags := "go, testing"
	updated, err := f.svc.Update(context.Background(), resp.ID, &model.UpdateArticleRequest{Tags: &retags})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "testing"}, updated.Tags)

	// A nil Tags field leaves existing tags alone.
	title := "Tagged Still"
	untouched, err := f.svc.Update(context.Background(), resp.ID, &model.UpdateArticleRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "testing"}, untouched.Tags)
}

func TestDeleteMissingArticleFailsWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{Title: "Keep Me", Content: "<p>body</p>"})

	before, err := f.svc.List(context.Background(), nil)
	require.NoError(t, err)

	missingID, _ := idgen.GeneratePublicID(9999, idgen.EntityTypeArticle)
	err = f.svc.Delete(context.Background(), missingID)
	assert.ErrorIs(t, err, constant.ErrNotFound)

	after, err := f.svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestDeleteRemovesArticle(t *testing.T) {
	f := newFixture(t)
	created := f.mustCreate(t, &model.CreateArticleRequest{Title: "Doomed", Content: "<p>body</p>"})

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))

	_, err := f.svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestGetBySlugReturnsPreIncrementViews(t *testing.T) {
	f := newFixture(t)
	created := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Popular Post",
		Content: "<p>body</p>",
		Status:  model.StatusPublished,
	})

	first, err := f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Views)

	select {
	case <-f.repo.incremented:
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never happened")
	}

	second, err := f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Views)

	select {
	case <-f.repo.incremented:
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never happened")
	}
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	f := newFixture(t)
	created := f.mustCreate(t, &model.CreateArticleRequest{
		Title:   "Unfinished",
		Content: "<p>wip</p>",
	})

	_, err := f.svc.GetBySlug(context.Background(), created.Slug)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestSearchMatchesAllStatuses(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Intro to Go", Content: "<p>body</p>", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Intro to SQL", Content: "<p>body</p>",
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Intro to HTTP", Content: "<p>body</p>", Status: model.StatusArchived,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Unrelated", Content: "<p>body</p>", Status: model.StatusPublished,
	})

	results, err := f.svc.Search(context.Background(), "intro")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchMatchesExcerptAndOrdersNewestFirst(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Intro to X", Content: "<p>body</p>", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Advanced Y", Content: "<p>body</p>", Excerpt: "Quick intro",
	})

	results, err := f.svc.Search(context.Background(), "intro")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Advanced Y", results[0].Title)
	assert.Equal(t, "Intro to X", results[1].Title)
}

func TestSearchBlankQueryReturnsNothing(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{Title: "Anything", Content: "<p>body</p>"})

	results, err := f.svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListPublishedFiltersByCategory(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Go Post", Content: "<p>body</p>", Category: "go", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Rust Post", Content: "<p>body</p>", Category: "rust", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Go Draft", Content: "<p>body</p>", Category: "go",
	})

	results, err := f.svc.ListPublished(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go Post", results[0].Title)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	a := f.mustCreate(t, &model.CreateArticleRequest{
		Title: "P1", Content: "<p>body</p>", Status: model.StatusPublished,
	})
	b := f.mustCreate(t, &model.CreateArticleRequest{
		Title: "P2", Content: "<p>body</p>", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{Title: "D1", Content: "<p>body</p>"})
	c := f.mustCreate(t, &model.CreateArticleRequest{
		Title: "A1", Content: "<p>body</p>", Status: model.StatusArchived,
	})

	// Seed some views directly through the repo.
	for publicID, n := range map[string]int{a.ID: 5, b.ID: 3, c.ID: 2} {
		dbID, _, err := idgen.DecodePublicID(publicID)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			require.NoError(t, f.repo.IncrementViews(context.Background(), dbID))
		}
	}

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.ArticleStats{
		Total:      4,
		Published:  2,
		Draft:      1,
		Archived:   1,
		TotalViews: 10,
	}, stats)
}

func TestCategoriesOnlyFromPublished(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "One", Content: "<p>body</p>", Category: "go", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Two", Content: "<p>body</p>", Category: "go", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Three", Content: "<p>body</p>", Category: "hidden",
	})

	categories, err := f.svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, categories)
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	f.mustCreate(t, &model.CreateArticleRequest{
		Title: "Go Basics", Content: "<p>body</p>", Status: model.StatusPublished,
	})
	f.mustCreate(t, &model.CreateArticleRequest{Title: "Go Advanced", Content: "<p>body</p>"})
	f.mustCreate(t, &model.CreateArticleRequest{Title: "Cooking", Content: "<p>body</p>"})

	all, err := f.svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	drafts, err := f.svc.List(context.Background(), &model.ListArticlesOptions{Status: model.StatusDraft})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	matched, err := f.svc.List(context.Background(), &model.ListArticlesOptions{Query: "go", Status: model.StatusDraft})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Go Advanced", matched[0].Title)
}

func TestUpdateMissingArticle(t *testing.T) {
	f := newFixture(t)

	missingID, _ := idgen.GeneratePublicID(1234, idgen.EntityTypeArticle)
	title := "New Title"
	_, err := f.svc.Update(context.Background(), missingID, &model.UpdateArticleRequest{Title: &title})
	assert.ErrorIs(t, err, constant.ErrNotFound)
}
