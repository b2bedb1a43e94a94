package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/response"
	authSvc "github.com/coursewave/coursewave-app/pkg/service/auth"
	userSvc "github.com/coursewave/coursewave-app/pkg/service/user"
)

// Handler bundles registration, login and token endpoints.
type Handler struct {
	svc        authSvc.AuthService
	userSvc    userSvc.Service
	captchaSvc authSvc.CaptchaService
}

func NewHandler(svc authSvc.AuthService, userSvc userSvc.Service, captchaSvc authSvc.CaptchaService) *Handler {
	return &Handler{svc: svc, userSvc: userSvc, captchaSvc: captchaSvc}
}

func fail(c *gin.Context, err error) {
	var ve *constant.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, authSvc.ErrBadCredentials):
		response.Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authSvc.ErrInvalidToken):
		response.Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "not found")
	default:
		log.Printf("[auth] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user, "registered")
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result, "logged in")
}

func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, pair, "token refreshed")
}

func (h *Handler) Logout(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "logged out")
}

// Captcha issues a captcha challenge for registration.
func (h *Handler) Captcha(c *gin.Context) {
	id, image, err := h.captchaSvc.Generate()
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"captcha_id": id, "image": image}, "ok")
}

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing user credentials")
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user, "ok")
}
