package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursewave/coursewave-app/pkg/domain/model"
)

// stubService records the options the handler passes down and returns
// canned results.
type stubService struct {
	lastListOpts *model.ListArticlesOptions
}

func (s *stubService) Create(context.Context, *model.CreateArticleRequest, string) (*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) Update(context.Context, string, *model.UpdateArticleRequest) (*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) Delete(context.Context, string) error { return nil }

func (s *stubService) Get(context.Context, string) (*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) List(_ context.Context, opts *model.ListArticlesOptions) ([]*model.ArticleResponse, error) {
	s.lastListOpts = opts
	return []*model.ArticleResponse{}, nil
}

func (s *stubService) ListPublished(context.Context, string) ([]*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) GetBySlug(context.Context, string) (*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) Search(context.Context, string) ([]*model.ArticleResponse, error) {
	return nil, nil
}

func (s *stubService) Categories(context.Context) ([]string, error) { return nil, nil }

func (s *stubService) Stats(context.Context) (*model.ArticleStats, error) { return nil, nil }

func newListRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/articles", NewHandler(svc).List)
	return engine
}

func TestListStatusFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantCode   int
		wantStatus string
	}{
		{"no filter", "", http.StatusOK, ""},
		{"all means no filter", "?status=all", http.StatusOK, ""},
		{"exact status", "?status=draft", http.StatusOK, model.StatusDraft},
		{"unknown status", "?status=bogus", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			engine := newListRouter(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/articles"+tt.query, nil)
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				require.NotNil(t, svc.lastListOpts)
				assert.Equal(t, tt.wantStatus, svc.lastListOpts.Status)
			} else {
				assert.Nil(t, svc.lastListOpts, "a rejected filter must not reach the service")
			}
		})
	}
}
