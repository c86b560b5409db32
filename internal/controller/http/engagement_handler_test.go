package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEngagementTestRouter(uc usecase.EngagementUseCase) *gin.Engine {
	handler := NewEngagementHandler(uc, testResponder())
	router := setupTestRouter()

	protected := router.Group("/posts", middleware.AuthMiddleware(testJWT))
	protected.POST("/like", handler.LikePost)
	protected.POST("/save", handler.SavePost)
	protected.POST("/share", handler.SharePost)
	protected.POST("/read", handler.ReadPost)
	protected.POST("/comment", handler.AddComment)

	public := router.Group("/posts", middleware.OptionalAuthMiddleware(testJWT))
	public.GET("/:id/like-status", handler.GetLikeStatus)
	public.GET("/:id/save-status", handler.GetSaveStatus)
	public.GET("/:id/share-status", handler.GetShareStatus)
	public.GET("/:id/read", handler.GetReadStatus)
	public.GET("/:id/comments", handler.GetComments)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req = withAuth(t, req, userID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestLikePost_Toggle(t *testing.T) {
	tests := []struct {
		name        string
		active      bool
		total       int64
		wantMessage string
	}{
		{"like", true, 1, "Post liked"},
		{"unlike", false, 0, "Post unliked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockEngagementUseCase)
			router := newEngagementTestRouter(mockUseCase)

			mockUseCase.On("Toggle", mock.Anything, entity.EngagementLike, uint(2), uint(5)).
				Return(&entity.EngagementResult{Active: tt.active, TotalCount: tt.total}, nil)

			w := postJSON(t, router, "/posts/like", `{"postId":5,"userId":2}`, 2)

			assert.Equal(t, http.StatusOK, w.Code)
			response := decode(t, w)
			assert.Equal(t, tt.wantMessage, response["message"])
			assert.Equal(t, tt.active, response["active"])
			assert.Equal(t, float64(tt.total), response["totalCount"])
			mockUseCase.AssertExpectations(t)
		})
	}
}

func TestSavePost_Toggle(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("Toggle", mock.Anything, entity.EngagementSave, uint(2), uint(5)).
		Return(&entity.EngagementResult{Active: true, TotalCount: 3}, nil)

	w := postJSON(t, router, "/posts/save", `{"postId":5,"userId":2}`, 2)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post saved", decode(t, w)["message"])
}

func TestRecordEngagements(t *testing.T) {
	tests := []struct {
		path        string
		kind        entity.EngagementKind
		wantMessage string
	}{
		{"/posts/share", entity.EngagementShare, "Post shared"},
		{"/posts/read", entity.EngagementRead, "Post marked as read"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mockUseCase := new(MockEngagementUseCase)
			router := newEngagementTestRouter(mockUseCase)

			mockUseCase.On("Record", mock.Anything, tt.kind, uint(2), uint(5)).
				Return(&entity.EngagementResult{Active: true, TotalCount: 1}, nil)

			w := postJSON(t, router, tt.path, `{"postId":5,"userId":2}`, 2)

			assert.Equal(t, http.StatusOK, w.Code)
			response := decode(t, w)
			assert.Equal(t, tt.wantMessage, response["message"])
			assert.Equal(t, true, response["active"])
			mockUseCase.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestEngage_UserMismatch(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	w := postJSON(t, router, "/posts/like", `{"postId":5,"userId":3}`, 2)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngage_InvalidBody(t *testing.T) {
	for _, body := range []string{`{}`, `{"postId":5}`, `{"postId":0,"userId":2}`, `{"postId":"x","userId":2}`} {
		t.Run(body, func(t *testing.T) {
			mockUseCase := new(MockEngagementUseCase)
			router := newEngagementTestRouter(mockUseCase)

			w := postJSON(t, router, "/posts/like", body, 2)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEngage_Unauthenticated(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	w := postJSON(t, router, "/posts/like", `{"postId":5,"userId":2}`, 0)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEngage_PostNotFound(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("Toggle", mock.Anything, entity.EngagementLike, uint(2), uint(99)).
		Return(nil, apperr.NotFound("Post not found"))

	w := postJSON(t, router, "/posts/like", `{"postId":99,"userId":2}`, 2)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusEndpoints(t *testing.T) {
	tests := []struct {
		path string
		kind entity.EngagementKind
	}{
		{"/posts/5/like-status", entity.EngagementLike},
		{"/posts/5/save-status", entity.EngagementSave},
		{"/posts/5/share-status", entity.EngagementShare},
		{"/posts/5/read", entity.EngagementRead},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mockUseCase := new(MockEngagementUseCase)
			router := newEngagementTestRouter(mockUseCase)

			mockUseCase.On("Status", mock.Anything, tt.kind, uint(5), uint(4)).
				Return(&entity.EngagementResult{Active: true, TotalCount: 2}, nil)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path+"?userId=4", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			response := decode(t, w)
			assert.Equal(t, float64(5), response["postId"])
			assert.Equal(t, true, response["active"])
			assert.Equal(t, float64(2), response["totalCount"])
			mockUseCase.AssertExpectations(t)
		})
	}
}

func TestStatus_FallsBackToCaller(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("Status", mock.Anything, entity.EngagementLike, uint(5), uint(9)).
		Return(&entity.EngagementResult{Active: false, TotalCount: 0}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/5/like-status", nil)
	router.ServeHTTP(w, withAuth(t, req, 9))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestStatus_Anonymous(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("Status", mock.Anything, entity.EngagementSave, uint(5), uint(0)).
		Return(&entity.EngagementResult{Active: false, TotalCount: 7}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/5/save-status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["active"])
}

func TestStatus_InvalidUserID(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/5/like-status?userId=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddComment(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("AddComment", mock.Anything, uint(2), uint(5), "Nice post").
		Return(&entity.Comment{ID: 1, PostID: 5, UserID: 2, Content: "Nice post"}, nil)

	w := postJSON(t, router, "/posts/comment", `{"postId":5,"userId":2,"content":"Nice post"}`, 2)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(t, w)
	assert.Equal(t, "Comment added successfully", response["message"])
	assert.Equal(t, "Nice post", response["comment"].(map[string]interface{})["content"])
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		caller     uint
		wantStatus int
	}{
		{"empty content", `{"postId":5,"userId":2,"content":""}`, 2, http.StatusBadRequest},
		{"other user", `{"postId":5,"userId":3,"content":"hi"}`, 2, http.StatusForbidden},
		{"anonymous", `{"postId":5,"userId":2,"content":"hi"}`, 0, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockEngagementUseCase)
			router := newEngagementTestRouter(mockUseCase)

			w := postJSON(t, router, "/posts/comment", tt.body, tt.caller)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockUseCase.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetComments(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	router := newEngagementTestRouter(mockUseCase)

	mockUseCase.On("ListComments", mock.Anything, uint(5), uint(2)).Return(&entity.CommentList{
		Comments:   []entity.Comment{{ID: 1, PostID: 5, UserID: 2, Content: "hi"}},
		TotalCount: 1,
		Commented:  true,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/5/comments?userId=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.Equal(t, float64(1), response["totalCount"])
	assert.Equal(t, true, response["commented"])
	assert.Len(t, response["comments"], 1)
}
