package http

import (
	"fmt"
	"strconv"
	"strings"

	"blog-backend/internal/entity"
	"blog-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
}

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

type UpdatePostRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

type EngagementRequest struct {
	PostID uint `json:"postId" binding:"required,gt=0"`
	UserID uint `json:"userId" binding:"required,gt=0"`
}

type CommentRequest struct {
	PostID  uint   `json:"postId" binding:"required,gt=0"`
	UserID  uint   `json:"userId" binding:"required,gt=0"`
	Content string `json:"content" binding:"required,max=5000"`
}

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return uint(id), nil
}

func parseOptionalID(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(raw, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &v, nil
}

// parsePage reads page and limit; range checks happen in the use cases.
func parsePage(c *gin.Context) (entity.PageRequest, error) {
	page := entity.PageRequest{Page: entity.DefaultPage, Limit: entity.DefaultLimit}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, fmt.Errorf("page must be an integer")
		}
		page.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, fmt.Errorf("limit must be an integer")
		}
		page.Limit = n
	}
	return page, nil
}

// viewerID prefers an explicit ?userId= and falls back to the caller.
func viewerID(c *gin.Context) (uint, error) {
	id, err := parseOptionalID(c, "userId")
	if err != nil {
		return 0, err
	}
	if id != nil {
		return *id, nil
	}
	caller, _ := middleware.CurrentUserID(c)
	return caller, nil
}
