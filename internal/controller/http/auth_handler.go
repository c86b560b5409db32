package http

import (
	"net/http"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	respond     *Responder
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, respond *Responder) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		respond:     respond,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and receive a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    result.User,
		"token":   result.Token,
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password and receive a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

// GetProfile godoc
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	user, err := h.authUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary      Update current user profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Profile fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BadRequest(c, "Invalid input", err)
		return
	}

	user, err := h.authUseCase.UpdateProfile(c.Request.Context(), userID, entity.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Description  Upload a jpg, jpeg, png or gif avatar (max 5MB)
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/avatar [post]
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.respond.Error(c, apperr.Unauthenticated("Authentication required"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.respond.BadRequest(c, "Avatar file is required", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respond.BadRequest(c, "Failed to read avatar", err)
		return
	}
	defer file.Close()

	user, err := h.authUseCase.UploadAvatar(c.Request.Context(), userID, usecase.AvatarFile{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Avatar uploaded successfully", "user": user})
}
