package usecase

import (
	"context"
	"io"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return logger.NewFromZap(zap.NewNop())
}

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, update entity.ProfileUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id uint, avatarURL string) error {
	args := m.Called(ctx, id, avatarURL)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	if args.Error(0) == nil {
		post.ID = 10
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id uint, update entity.PostUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) ([]entity.Post, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Search(ctx context.Context, filter entity.SearchFilter, page entity.PageRequest) ([]entity.Post, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByRelation(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) ([]entity.Post, int64, error) {
	args := m.Called(ctx, userID, relation, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Post), args.Get(1).(int64), args.Error(2)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockEngagementRepository is a mock implementation of persistent.EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error) {
	args := m.Called(ctx, kind, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) error {
	args := m.Called(ctx, kind, userID, postID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Exists(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error) {
	args := m.Called(ctx, kind, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) Count(ctx context.Context, kind entity.EngagementKind, postID uint) (int64, error) {
	args := m.Called(ctx, kind, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CountByPosts(ctx context.Context, kind entity.EngagementKind, postIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, kind, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

var _ persistent.EngagementRepository = (*MockEngagementRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil {
		comment.ID = 100
	}
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func (m *MockCommentRepository) HasCommented(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID uint, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

type MockAvatarStorage struct {
	mock.Mock
}

func (m *MockAvatarStorage) Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAvatarStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var (
	_ PasswordHasher = (*MockHasher)(nil)
	_ TokenIssuer    = (*MockTokenIssuer)(nil)
	_ AvatarStorage  = (*MockAvatarStorage)(nil)
)
