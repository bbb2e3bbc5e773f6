package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/users"
)

const userName = "User"

// UserHandler manages CMS accounts. Passwords never appear in responses.
type UserHandler struct {
	svc       *users.Service
	maxMemory int64
}

func NewUserHandler(svc *users.Service, maxMemory int64) *UserHandler {
	return &UserHandler{svc: svc, maxMemory: maxMemory}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func userInput(in *input) users.Input {
	return users.Input{
		Username: in.ptr("username"),
		Password: in.ptr("password"),
		Role:     in.ptr("role"),
		Email:    in.ptr("email"),
	}
}

func (h *UserHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, userName, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, userName, err)
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, userName, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, userName, err)
		return
	}
	u, err := h.svc.Create(c.Request.Context(), userInput(in))
	if err != nil {
		fail(c, userName, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, userName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, userName, err)
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, userInput(in))
	if err != nil {
		fail(c, userName, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, userName, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, userName, err)
		return
	}
	deleted(c, userName, id)
}
