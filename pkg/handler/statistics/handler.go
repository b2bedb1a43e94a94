package statistics

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/pkg/response"
	statsSvc "github.com/coursewave/coursewave-app/pkg/service/statistics"
)

// Handler serves the admin dashboard numbers.
type Handler struct {
	svc *statsSvc.Service
}

func NewHandler(svc *statsSvc.Service) *Handler {
	return &Handler{svc: svc}
}

// ArticleStats returns the article counters snapshot.
func (h *Handler) ArticleStats(c *gin.Context) {
	stats, err := h.svc.ArticleStats(c.Request.Context())
	if err != nil {
		log.Printf("[stats] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.Success(c, stats, "ok")
}
