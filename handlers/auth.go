package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/users"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	usersSvc *users.Service
}

func NewAuthHandler(u *users.Service) *AuthHandler {
	return &AuthHandler{usersSvc: u}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
}

// Login compares the given credentials with the stored user. Any mismatch is
// the same 401, whether the user exists or not.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, "Login", errs.Validation("%v", err))
		return
	}
	u, err := h.usersSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			logger.Infof("login rejected for %q", req.Username)
		}
		fail(c, "Login", err)
		return
	}
	logger.Infof("login ok for %q", u.Username)
	c.JSON(http.StatusOK, u)
}
