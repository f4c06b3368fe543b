package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/store"
)

type UserProfileRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	PreferredSubjects []string `json:"preferredSubjects"`
}

func (r UserProfileRequest) validate() error {
	for _, s := range r.PreferredSubjects {
		if !classify.Subject(s).Valid() {
			return fmt.Errorf("invalid preferred subject: %s", s)
		}
	}
	return nil
}

func parseUserProfileRequest(c *gin.Context) (UserProfileRequest, error) {
	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *Handler) ListUsersHandler(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("list users: %v", err))
		return
	}
	if users == nil {
		users = []store.UserProfile{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUserHandler(c *gin.Context) {
	req, err := parseUserProfileRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	p := &store.UserProfile{
		Name:              req.Name,
		Email:             req.Email,
		PreferredSubjects: req.PreferredSubjects,
	}
	if err := h.users.Create(c.Request.Context(), p); err != nil {
		Internal(c, fmt.Sprintf("create user: %v", err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetUserHandler(c *gin.Context) {
	p, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "user not found")
		return
	}
	if err != nil {
		Internal(c, fmt.Sprintf("get user: %v", err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateUserHandler(c *gin.Context) {
	req, err := parseUserProfileRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	p := &store.UserProfile{
		ID:                c.Param("id"),
		Name:              req.Name,
		Email:             req.Email,
		PreferredSubjects: req.PreferredSubjects,
	}
	err = h.users.Update(c.Request.Context(), p)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "user not found")
		return
	}
	if err != nil {
		Internal(c, fmt.Sprintf("update user: %v", err))
		return
	}
	c.JSON(http.StatusOK, p)
}
