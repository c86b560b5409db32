package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/logger"

	"github.com/google/uuid"
)

const MaxAvatarSize = 5 << 20

var allowedAvatarTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

var ErrAvatarStorageDisabled = errors.New("avatar storage is not configured")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	GenerateToken(userID uint, username string) (string, error)
}

type AvatarStorage interface {
	Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

type AvatarFile struct {
	Filename string
	Size     int64
	Body     io.ReadSeeker
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.AuthResult, error)
	Login(ctx context.Context, email, password string) (*entity.AuthResult, error)
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, update entity.ProfileUpdate) (*entity.User, error)
	UploadAvatar(ctx context.Context, userID uint, file AvatarFile) (*entity.User, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	avatars  AvatarStorage
	logger   *logger.Logger
}

// NewAuthUseCase accepts a nil avatars storage; avatar uploads then fail.
func NewAuthUseCase(
	userRepo persistent.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	avatars AvatarStorage,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		avatars:  avatars,
		logger:   logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.AuthResult, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	taken, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("Failed to check email", err)
	}
	if taken {
		return nil, apperr.Conflict("User already exists", "email is already registered")
	}

	taken, err = uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal("Failed to check username", err)
	}
	if taken {
		return nil, apperr.Conflict("User already exists", "username is already taken")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FirstName:    trimOptional(input.FirstName),
		LastName:     trimOptional(input.LastName),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Internal("Failed to create user", err)
	}

	uc.logger.Info("User registered: id=%d username=%s", user.ID, user.Username)
	return uc.issue(user)
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.InvalidCredential("Invalid email or password")
		}
		return nil, apperr.Internal("Failed to load user", err)
	}

	if !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.InvalidCredential("Invalid email or password")
	}

	return uc.issue(user)
}

func (uc *authUseCase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to load user", err)
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, userID uint, update entity.ProfileUpdate) (*entity.User, error) {
	if update.Empty() {
		return nil, apperr.Validation("At least one field must be provided")
	}
	update.FirstName = trimOptional(update.FirstName)
	update.LastName = trimOptional(update.LastName)

	if err := uc.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to update profile", err)
	}
	return uc.GetProfile(ctx, userID)
}

func (uc *authUseCase) UploadAvatar(ctx context.Context, userID uint, file AvatarFile) (*entity.User, error) {
	if uc.avatars == nil {
		return nil, apperr.Internal("Avatar upload is unavailable", ErrAvatarStorageDisabled)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedAvatarTypes[ext]
	if !ok {
		return nil, apperr.Validation("Invalid file type", "only jpg, jpeg, png and gif images are allowed")
	}
	if file.Size > MaxAvatarSize {
		return nil, apperr.Validation("File too large", fmt.Sprintf("avatar must be at most %d bytes", MaxAvatarSize))
	}

	current, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s%s", avatarPrefix(userID), uuid.New().String(), ext)
	url, err := uc.avatars.Upload(ctx, key, file.Body, contentType)
	if err != nil {
		return nil, apperr.Internal("Failed to upload avatar", err)
	}

	if err := uc.userRepo.UpdateAvatar(ctx, userID, url); err != nil {
		uc.removeAvatar(ctx, key)
		return nil, apperr.Internal("Failed to save avatar", err)
	}

	if current.AvatarURL != nil {
		if oldKey, ok := avatarKey(userID, *current.AvatarURL); ok && oldKey != key {
			uc.removeAvatar(ctx, oldKey)
		}
	}

	uc.logger.Info("Avatar updated: user=%d key=%s", userID, key)
	return uc.GetProfile(ctx, userID)
}

// removeAvatar deletes an object no user row points at. Failures only leave
// an orphan behind, so they are logged and swallowed.
func (uc *authUseCase) removeAvatar(ctx context.Context, key string) {
	if err := uc.avatars.Delete(ctx, key); err != nil {
		uc.logger.Warn("Failed to delete avatar %s: %v", key, err)
	}
}

func avatarPrefix(userID uint) string {
	return fmt.Sprintf("avatars/%d/", userID)
}

// avatarKey recovers the object key from a stored avatar URL. Only keys under
// the user's own prefix are returned.
func avatarKey(userID uint, url string) (string, bool) {
	prefix := avatarPrefix(userID)
	i := strings.LastIndex(url, prefix)
	if i < 0 {
		return "", false
	}
	key := url[i:]
	if name := key[len(prefix):]; name == "" || strings.ContainsAny(name, "/?#") {
		return "", false
	}
	return key, true
}

func (uc *authUseCase) issue(user *entity.User) (*entity.AuthResult, error) {
	token, err := uc.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token", err)
	}
	return &entity.AuthResult{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
