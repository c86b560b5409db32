package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"blog-backend/internal/entity"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthResult), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthResult), args.Error(1)
}

func (m *MockAuthUseCase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(ctx context.Context, userID uint, update entity.ProfileUpdate) (*entity.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadAvatar(ctx context.Context, userID uint, file usecase.AvatarFile) (*entity.User, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID uint, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, id, viewerID uint) (*entity.Post, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) (*entity.PostPage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

func (m *MockPostUseCase) SearchPosts(ctx context.Context, input usecase.SearchPostsInput, page entity.PageRequest) (*entity.PostPage, error) {
	args := m.Called(ctx, input, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, id, callerID uint, update entity.PostUpdate) (*entity.Post, error) {
	args := m.Called(ctx, id, callerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, id, callerID uint) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}

func (m *MockPostUseCase) ListUserPosts(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) (*entity.PostPage, error) {
	args := m.Called(ctx, userID, relation, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error) {
	args := m.Called(ctx, kind, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EngagementResult), args.Error(1)
}

func (m *MockEngagementUseCase) Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error) {
	args := m.Called(ctx, kind, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EngagementResult), args.Error(1)
}

func (m *MockEngagementUseCase) Status(ctx context.Context, kind entity.EngagementKind, postID, userID uint) (*entity.EngagementResult, error) {
	args := m.Called(ctx, kind, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EngagementResult), args.Error(1)
}

func (m *MockEngagementUseCase) AddComment(ctx context.Context, userID, postID uint, content string) (*entity.Comment, error) {
	args := m.Called(ctx, userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockEngagementUseCase) ListComments(ctx context.Context, postID, userID uint) (*entity.CommentList, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentList), args.Error(1)
}

var _ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)

const testSecret = "handler-test-secret"

var testJWT = jwt.NewService(testSecret)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testResponder() *Responder {
	return NewResponder(logger.NewFromZap(zap.NewNop()), false)
}

func authHeader(t *testing.T, userID uint) string {
	t.Helper()
	token, err := testJWT.GenerateToken(userID, fmt.Sprintf("user%d", userID))
	require.NoError(t, err)
	return "Bearer " + token
}

func withAuth(t *testing.T, req *http.Request, userID uint) *http.Request {
	req.Header.Set("Authorization", authHeader(t, userID))
	return req
}
