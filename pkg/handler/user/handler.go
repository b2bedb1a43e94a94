package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/response"
	userSvc "github.com/coursewave/coursewave-app/pkg/service/user"
)

// Handler exposes the admin account endpoints.
type Handler struct {
	svc userSvc.Service
}

func NewHandler(svc userSvc.Service) *Handler {
	return &Handler{svc: svc}
}

func fail(c *gin.Context, err error) {
	var ve *constant.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "user not found")
	default:
		log.Printf("[user] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) Get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user, "ok")
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, users, "ok")
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "role updated")
}
