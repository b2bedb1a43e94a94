package course

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/response"
	courseSvc "github.com/coursewave/coursewave-app/pkg/service/course"
)

// Handler answers both the catalog management endpoints and the public
// browsing plus enrollment surface.
type Handler struct {
	svc courseSvc.Service
}

func NewHandler(svc courseSvc.Service) *Handler {
	return &Handler{svc: svc}
}

func fail(c *gin.Context, err error) {
	var ve *constant.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "course not found")
	default:
		log.Printf("[course] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// Create handles the admin "create course" endpoint.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	course, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, course, "course created")
}

func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	course, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, course, "course updated")
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "course deleted")
}

func (h *Handler) Get(c *gin.Context) {
	course, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, course, "ok")
}

// List handles the admin listing, optionally filtered by status. "all"
// means no filter.
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	if status == "all" {
		status = ""
	}
	if status != "" && !model.ValidStatus(status) {
		response.Fail(c, http.StatusBadRequest, "invalid status filter: "+status)
		return
	}

	courses, err := h.svc.List(c.Request.Context(), status)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, courses, "ok")
}

// ListPublished is the public catalog listing.
func (h *Handler) ListPublished(c *gin.Context) {
	courses, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, courses, "ok")
}

// GetBySlug serves the public course page. Drafts are invisible here.
func (h *Handler) GetBySlug(c *gin.Context) {
	course, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, course, "ok")
}

func (h *Handler) Enroll(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing user credentials")
		return
	}

	enrollment, err := h.svc.Enroll(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, enrollment, "enrolled")
}

func (h *Handler) Unenroll(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing user credentials")
		return
	}

	if err := h.svc.Unenroll(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "enrollment removed")
}

// ListEnrollments returns the authenticated user's enrollments.
func (h *Handler) ListEnrollments(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing user credentials")
		return
	}

	enrollments, err := h.svc.ListEnrollments(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, enrollments, "ok")
}
