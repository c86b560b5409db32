package http

import (
	"net/http"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	respond     *Responder
}

func NewPostHandler(postUseCase usecase.PostUseCase, respond *Responder) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		respond:     respond,
	}
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post owned by the authenticated user; published defaults to false
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, usecase.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": post})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Post with author, engagement totals and, for authenticated callers, their own engagement flags
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseID(c.Param("id"), "id")
	if err != nil {
		h.respond.BadRequest(c, "Invalid post ID", err)
		return
	}

	viewer, _ := middleware.CurrentUserID(c)
	post, err := h.postUseCase.GetPost(c.Request.Context(), postID, viewer)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// ListPosts godoc
// @Summary      List posts
// @Description  Newest first, paginated
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page (default 1)"
// @Param        limit query int false "Page size (1-100, default 10)"
// @Param        published query bool false "Published filter"
// @Param        authorId query int false "Author filter"
// @Success      200  {object}  entity.PostPage
// @Failure      400  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		h.respond.BadRequest(c, "Invalid pagination", err)
		return
	}

	var filter entity.PostFilter
	if filter.Published, err = parseOptionalBool(c, "published"); err != nil {
		h.respond.BadRequest(c, "Invalid published filter", err)
		return
	}
	if filter.AuthorID, err = parseOptionalID(c, "authorId"); err != nil {
		h.respond.BadRequest(c, "Invalid author ID", err)
		return
	}

	result, err := h.postUseCase.ListPosts(c.Request.Context(), filter, page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  Case-insensitive match on title, content and author username or names
// @Tags         posts
// @Produce      json
// @Param        q query string true "Search text"
// @Param        author query string false "Author username (partial)"
// @Param        published query bool false "Published filter"
// @Param        sortBy query string false "createdAt, updatedAt or title"
// @Param        order query string false "asc or desc"
// @Param        page query int false "Page (default 1)"
// @Param        limit query int false "Page size (1-100, default 10)"
// @Success      200  {object}  entity.PostPage
// @Failure      400  {object}  map[string]string
// @Router       /posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		h.respond.BadRequest(c, "Invalid pagination", err)
		return
	}

	input := usecase.SearchPostsInput{
		Query:  c.Query("q"),
		Author: c.Query("author"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}
	if input.Published, err = parseOptionalBool(c, "published"); err != nil {
		h.respond.BadRequest(c, "Invalid published filter", err)
		return
	}

	result, err := h.postUseCase.SearchPosts(c.Request.Context(), input, page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partial update; only the author may update
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	postID, err := parseID(c.Param("id"), "id")
	if err != nil {
		h.respond.BadRequest(c, "Invalid post ID", err)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), postID, userID, entity.PostUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": post})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Only the author may delete; likes, saves, shares, reads and comments go with it
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	postID, err := parseID(c.Param("id"), "id")
	if err != nil {
		h.respond.BadRequest(c, "Invalid post ID", err)
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID, userID); err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetLikedPosts godoc
// @Summary      Posts liked by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        page query int false "Page (default 1)"
// @Param        limit query int false "Page size (1-100, default 10)"
// @Success      200  {object}  entity.PostPage
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/liked-posts [get]
func (h *PostHandler) GetLikedPosts(c *gin.Context) {
	h.listUserPosts(c, entity.RelationLiked)
}

// GetSavedPosts godoc
// @Summary      Posts saved by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        page query int false "Page (default 1)"
// @Param        limit query int false "Page size (1-100, default 10)"
// @Success      200  {object}  entity.PostPage
// @Router       /users/{userId}/saved-posts [get]
func (h *PostHandler) GetSavedPosts(c *gin.Context) {
	h.listUserPosts(c, entity.RelationSaved)
}

// GetSharedPosts godoc
// @Summary      Posts shared by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  entity.PostPage
// @Router       /users/{userId}/shared-posts [get]
func (h *PostHandler) GetSharedPosts(c *gin.Context) {
	h.listUserPosts(c, entity.RelationShared)
}

// GetCommentedPosts godoc
// @Summary      Posts a user commented on
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  entity.PostPage
// @Router       /users/{userId}/commented-posts [get]
func (h *PostHandler) GetCommentedPosts(c *gin.Context) {
	h.listUserPosts(c, entity.RelationCommented)
}

// GetReadPosts godoc
// @Summary      Posts read by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  entity.PostPage
// @Router       /users/{userId}/read-posts [get]
func (h *PostHandler) GetReadPosts(c *gin.Context) {
	h.listUserPosts(c, entity.RelationRead)
}

func (h *PostHandler) listUserPosts(c *gin.Context, relation entity.UserRelation) {
	userID, err := parseID(c.Param("userId"), "userId")
	if err != nil {
		h.respond.BadRequest(c, "Invalid user ID", err)
		return
	}

	page, err := parsePage(c)
	if err != nil {
		h.respond.BadRequest(c, "Invalid pagination", err)
		return
	}

	result, err := h.postUseCase.ListUserPosts(c.Request.Context(), userID, relation, page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
