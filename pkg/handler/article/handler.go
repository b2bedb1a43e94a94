package article

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/internal/pkg/metrics"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/response"
	articleSvc "github.com/coursewave/coursewave-app/pkg/service/article"
)

// Handler bundles the article HTTP endpoints, admin and public.
type Handler struct {
	svc articleSvc.Service
}

func NewHandler(svc articleSvc.Service) *Handler {
	return &Handler{svc: svc}
}

// fail translates service errors onto the response taxonomy. Validation
// problems and missing resources are the caller's fault and not logged;
// anything else is a server fault.
func fail(c *gin.Context, err error) {
	var ve *constant.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "article not found")
	default:
		log.Printf("[article] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// === admin endpoints ===

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing user credentials")
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &req, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, created, "article created")
}

func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, updated, "article updated")
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "article deleted")
}

func (h *Handler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, article, "ok")
}

// List serves the admin listing. Both filters are optional; q matches
// title and category, status is exact-match with "all" meaning no filter.
func (h *Handler) List(c *gin.Context) {
	opts := &model.ListArticlesOptions{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}
	if opts.Status == "all" {
		opts.Status = ""
	}
	if opts.Status != "" && !model.ValidStatus(opts.Status) {
		response.Fail(c, http.StatusBadRequest, "unknown status: "+opts.Status)
		return
	}

	articles, err := h.svc.List(c.Request.Context(), opts)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, articles, "ok")
}

// === public endpoints ===

func (h *Handler) ListPublished(c *gin.Context) {
	articles, err := h.svc.ListPublished(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, articles, "ok")
}

func (h *Handler) GetBySlug(c *gin.Context) {
	article, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	metrics.ArticleViews.Inc()
	response.Success(c, article, "ok")
}

func (h *Handler) Search(c *gin.Context) {
	results, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, results, "ok")
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, categories, "ok")
}
