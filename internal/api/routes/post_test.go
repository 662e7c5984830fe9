package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gophertalk/internal/api/middleware"
	"gophertalk/internal/core/posts"
)

const testSecret = "routes-test-secret"

type mockService struct {
	mock.Mock
}

func (m *mockService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockService) ListPosts(ctx context.Context, req posts.ListPostsRequest) ([]*posts.PostView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func (m *mockService) GetPost(ctx context.Context, postID, viewerID int64) (*posts.PostView, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.PostView), args.Error(1)
}

func (m *mockService) DeletePost(ctx context.Context, postID, userID int64) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func (m *mockService) ViewPost(ctx context.Context, postID, userID int64) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func (m *mockService) LikePost(ctx context.Context, postID, userID int64) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func (m *mockService) DislikePost(ctx context.Context, postID, userID int64) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func newTestRouter(service posts.Service) http.Handler {
	r := chi.NewRouter()
	RegisterPostRoutes(r, service, middleware.NewJWTAuthMiddleware(testSecret), nil)
	return r
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRegisterPostRoutes_Table(t *testing.T) {
	ctx := mock.Anything
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(m *mockService)
		wantStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/posts?limit=2",
			setup: func(m *mockService) {
				m.On("ListPosts", ctx, posts.ListPostsRequest{ViewerID: 3, Limit: 2}).Return([]*posts.PostView{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/posts",
			body:   `{"text":"hi"}`,
			setup: func(m *mockService) {
				m.On("CreatePost", ctx, posts.CreatePostRequest{Text: "hi", UserID: 3}).Return(&posts.Post{ID: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/posts/8",
			setup: func(m *mockService) {
				m.On("GetPost", ctx, int64(8), int64(3)).Return(&posts.PostView{ID: 8}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/posts/8",
			setup: func(m *mockService) {
				m.On("DeletePost", ctx, int64(8), int64(3)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "view",
			method: http.MethodPost,
			path:   "/posts/8/view",
			setup: func(m *mockService) {
				m.On("ViewPost", ctx, int64(8), int64(3)).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "like",
			method: http.MethodPost,
			path:   "/posts/8/like",
			setup: func(m *mockService) {
				m.On("LikePost", ctx, int64(8), int64(3)).Return(posts.ErrAlreadyLiked)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "dislike",
			method: http.MethodDelete,
			path:   "/posts/8/like",
			setup: func(m *mockService) {
				m.On("DislikePost", ctx, int64(8), int64(3)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockService)
			tt.setup(service)

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			req.Header.Set("Authorization", bearer(t, "3"))
			w := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			service.AssertExpectations(t)
		})
	}
}

func TestRegisterPostRoutes_RequireAuth(t *testing.T) {
	service := new(mockService)

	for _, path := range []string{"/posts", "/posts/1"} {
		w := httptest.NewRecorder()
		newTestRouter(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	service.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
	service.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterPostRoutes_RateLimitedPerUser(t *testing.T) {
	service := new(mockService)
	service.On("GetPost", mock.Anything, int64(1), mock.Anything).Return(&posts.PostView{ID: 1}, nil)

	limiter := middleware.NewRateLimiter(1, time.Hour)
	t.Cleanup(limiter.Stop)

	r := chi.NewRouter()
	RegisterPostRoutes(r, service, middleware.NewJWTAuthMiddleware(testSecret), limiter.Middleware)

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
		req.Header.Set("Authorization", bearer(t, user))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("1"))
	assert.Equal(t, http.StatusTooManyRequests, send("1"))
	assert.Equal(t, http.StatusOK, send("2"))
}
