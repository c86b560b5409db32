package http

import (
	"fmt"
	"net/http"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementUseCase usecase.EngagementUseCase
	respond           *Responder
}

func NewEngagementHandler(engagementUseCase usecase.EngagementUseCase, respond *Responder) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
		respond:           respond,
	}
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Description  Toggles the caller's like; the response carries the new state and the post's like total
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EngagementRequest true "Post and user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/like [post]
func (h *EngagementHandler) LikePost(c *gin.Context) {
	h.engage(c, entity.EngagementLike)
}

// SavePost godoc
// @Summary      Save or unsave a post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EngagementRequest true "Post and user"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/save [post]
func (h *EngagementHandler) SavePost(c *gin.Context) {
	h.engage(c, entity.EngagementSave)
}

// SharePost godoc
// @Summary      Share a post
// @Description  Recorded once per user; repeating keeps it shared
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EngagementRequest true "Post and user"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/share [post]
func (h *EngagementHandler) SharePost(c *gin.Context) {
	h.engage(c, entity.EngagementShare)
}

// ReadPost godoc
// @Summary      Mark a post as read
// @Description  Recorded once per user; repeating refreshes the read time
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EngagementRequest true "Post and user"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/read [post]
func (h *EngagementHandler) ReadPost(c *gin.Context) {
	h.engage(c, entity.EngagementRead)
}

func (h *EngagementHandler) engage(c *gin.Context, kind entity.EngagementKind) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}
	if req.UserID != callerID {
		h.respond.Error(c, apperr.Forbidden(fmt.Sprintf("You can only %s posts as yourself", kind)))
		return
	}

	var (
		result *entity.EngagementResult
		err    error
	)
	if kind.Mode() == entity.ModeToggle {
		result, err = h.engagementUseCase.Toggle(c.Request.Context(), kind, callerID, req.PostID)
	} else {
		result, err = h.engagementUseCase.Record(c.Request.Context(), kind, callerID, req.PostID)
	}
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    engagementMessage(kind, result.Active),
		"active":     result.Active,
		"totalCount": result.TotalCount,
	})
}

func engagementMessage(kind entity.EngagementKind, active bool) string {
	switch kind {
	case entity.EngagementLike:
		if active {
			return "Post liked"
		}
		return "Post unliked"
	case entity.EngagementSave:
		if active {
			return "Post saved"
		}
		return "Post unsaved"
	case entity.EngagementShare:
		return "Post shared"
	default:
		return "Post marked as read"
	}
}

// GetLikeStatus godoc
// @Summary      Like status
// @Tags         engagement
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        userId query int false "User ID (defaults to the caller)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like-status [get]
func (h *EngagementHandler) GetLikeStatus(c *gin.Context) {
	h.status(c, entity.EngagementLike)
}

// GetSaveStatus godoc
// @Summary      Save status
// @Tags         engagement
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        userId query int false "User ID (defaults to the caller)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/save-status [get]
func (h *EngagementHandler) GetSaveStatus(c *gin.Context) {
	h.status(c, entity.EngagementSave)
}

// GetShareStatus godoc
// @Summary      Share status
// @Tags         engagement
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        userId query int false "User ID (defaults to the caller)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/share-status [get]
func (h *EngagementHandler) GetShareStatus(c *gin.Context) {
	h.status(c, entity.EngagementShare)
}

// GetReadStatus godoc
// @Summary      Read status
// @Tags         engagement
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        userId query int false "User ID (defaults to the caller)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/read [get]
func (h *EngagementHandler) GetReadStatus(c *gin.Context) {
	h.status(c, entity.EngagementRead)
}

func (h *EngagementHandler) status(c *gin.Context, kind entity.EngagementKind) {
	postID, err := parseID(c.Param("id"), "id")
	if err != nil {
		h.respond.BadRequest(c, "Invalid post ID", err)
		return
	}
	userID, err := viewerID(c)
	if err != nil {
		h.respond.BadRequest(c, "Invalid user ID", err)
		return
	}

	result, err := h.engagementUseCase.Status(c.Request.Context(), kind, postID, userID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postId":     postID,
		"active":     result.Active,
		"totalCount": result.TotalCount,
	})
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/comment [post]
func (h *EngagementHandler) AddComment(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}
	if req.UserID != callerID {
		h.respond.Error(c, apperr.Forbidden("You can only comment as yourself"))
		return
	}

	comment, err := h.engagementUseCase.AddComment(c.Request.Context(), callerID, req.PostID, req.Content)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "comment": comment})
}

// GetComments godoc
// @Summary      Comments on a post
// @Description  Newest first; commented reports whether userId has commented
// @Tags         engagement
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        userId query int false "User ID (defaults to the caller)"
// @Success      200  {object}  entity.CommentList
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *EngagementHandler) GetComments(c *gin.Context) {
	postID, err := parseID(c.Param("id"), "id")
	if err != nil {
		h.respond.BadRequest(c, "Invalid post ID", err)
		return
	}
	userID, err := viewerID(c)
	if err != nil {
		h.respond.BadRequest(c, "Invalid user ID", err)
		return
	}

	list, err := h.engagementUseCase.ListComments(c.Request.Context(), postID, userID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
