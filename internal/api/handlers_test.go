package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hermesoftware/byklab-api/internal/config"
	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"
	"hermesoftware/byklab-api/internal/security"
	"hermesoftware/byklab-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testDeps struct {
	auth      *MockAuthService
	exercises *MockExerciseService
	blog      *MockBlogService
	seed      *MockSeedService
	store     *MockPinger
}

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()

	deps := &testDeps{
		auth:      new(MockAuthService),
		exercises: new(MockExerciseService),
		blog:      new(MockBlogService),
		seed:      new(MockSeedService),
		store:     new(MockPinger),
	}
	router := NewRouter(cfg, Services{
		Auth:          deps.auth,
		Subscriptions: service.NewSubscriptionService(log),
		Exercises:     deps.exercises,
		Blog:          deps.blog,
		Dashboard:     service.NewDashboardService(),
		Seed:          deps.seed,
		Store:         deps.store,
	}, log)
	return router, deps
}

func defaultTestConfig() config.Config {
	return config.Config{CORS: config.CORSConfig{Origins: "*"}}
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["detail"]
}

func TestAuthHandler_Signup(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
		wantDetail string
	}{
		{
			name: "created",
			body: `{"email":"ayse@byklab.com","password":"gizli","full_name":"Ayşe"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "ayse@byklab.com", "gizli", "Ayşe").Return(&domain.User{
					ID: "u-1", Email: "ayse@byklab.com", FullName: "Ayşe",
					CreatedAt: domain.NewTimestamp(created), SubscriptionPlan: "Ücretsiz",
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty full name is accepted",
			body: `{"email":"b@byklab.com","password":"x","full_name":""}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "b@byklab.com", "x", "").Return(&domain.User{ID: "u-2", Email: "b@byklab.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "email taken",
			body: `{"email":"taken@byklab.com","password":"gizli","full_name":"X"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "taken@byklab.com", "gizli", "X").Return(nil, service.ErrEmailAlreadyRegistered)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Email already registered",
		},
		{
			name:       "invalid email",
			body:       `{"email":"not-an-email","password":"gizli","full_name":"X"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "email must be a valid email address",
		},
		{
			name:       "missing full name",
			body:       `{"email":"a@byklab.com","password":"gizli"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "full_name is required",
		},
		{
			name:      "password at the byte limit",
			body:      `{"email":"d@byklab.com","password":"` + strings.Repeat("a", 72) + `","full_name":"X"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "d@byklab.com", strings.Repeat("a", 72), "X").Return(&domain.User{ID: "u-3", Email: "d@byklab.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "ascii password over the byte limit",
			body:       `{"email":"e@byklab.com","password":"` + strings.Repeat("a", 73) + `","full_name":"X"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "password must be at most 72 bytes",
		},
		{
			name:       "72 turkish characters exceed the byte limit",
			body:       `{"email":"f@byklab.com","password":"` + strings.Repeat("ş", 72) + `","full_name":"X"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "password must be at most 72 bytes",
		},
		{
			name: "service rejects long password",
			body: `{"email":"g@byklab.com","password":"gizli","full_name":"X"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "g@byklab.com", "gizli", "X").Return(nil, service.ErrPasswordTooLong)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "password must be at most 72 bytes",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid request body",
		},
		{
			name: "store failure is hidden",
			body: `{"email":"c@byklab.com","password":"gizli","full_name":"X"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "c@byklab.com", "gizli", "X").Return(nil, errors.New("mongo: no reachable servers"))
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, defaultTestConfig())
			tt.setupMock(deps.auth)

			w := doRequest(router, http.MethodPost, "/api/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
			} else {
				assert.NotContains(t, w.Body.String(), "password")
				var user UserResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, "Ücretsiz", user.SubscriptionPlan)
			}
			deps.auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
	}{
		{
			name: "ok",
			body: `{"email":"a@byklab.com","password":"gizli"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@byklab.com", "gizli").Return(&domain.User{ID: "u-1", Email: "a@byklab.com", SubscriptionPlan: "Temel"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@byklab.com","password":"yanlis"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@byklab.com", "yanlis").Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"email":"a@byklab.com"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, defaultTestConfig())
			tt.setupMock(deps.auth)

			w := doRequest(router, http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Invalid credentials", decodeDetail(t, w))
			}
			deps.auth.AssertExpectations(t)
		})
	}
}

func TestSubscriptionRoutes(t *testing.T) {
	router, _ := newTestRouter(t, defaultTestConfig())

	w := doRequest(router, http.MethodGet, "/api/subscriptions/plans", "")
	require.Equal(t, http.StatusOK, w.Code)
	var plans []domain.SubscriptionPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 4)
	assert.Equal(t, "comprehensive", plans[3].ID)
	assert.Equal(t, 500, plans[3].Price)

	w = doRequest(router, http.MethodPost, "/api/subscriptions/activate", `{"plan_name":"Temel","card_number":"zzz","card_name":"","expiry":"??","cvv":"-"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var result domain.ActivationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Temel", result.Plan)

	w = doRequest(router, http.MethodPost, "/api/subscriptions/activate", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 42, stats.TotalWorkouts)
	assert.Len(t, stats.WeeklyProgress, 7)
}

func TestExerciseRoutes(t *testing.T) {
	router, deps := newTestRouter(t, defaultTestConfig())
	deps.exercises.On("ListExercises", mock.Anything).Return([]domain.Exercise{{ID: "e1", Name: "Squat", MuscleGroup: "Bacak"}}, nil)
	deps.exercises.On("ListByMuscleGroup", mock.Anything, "Göğüs").Return([]domain.Exercise{}, nil)
	deps.exercises.On("ListByMuscleGroup", mock.Anything, "Kol").Return(nil, errors.New("timeout"))

	w := doRequest(router, http.MethodGet, "/api/exercises", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"muscle_group":"Bacak"`)
	assert.NotContains(t, w.Body.String(), "_id")

	w = doRequest(router, http.MethodGet, "/api/exercises/by-muscle/G%C3%B6%C4%9F%C3%BCs", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/exercises/by-muscle/Kol", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeDetail(t, w))

	deps.exercises.AssertExpectations(t)
}

func TestBlogRoutes(t *testing.T) {
	published := domain.NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	router, deps := newTestRouter(t, defaultTestConfig())
	deps.blog.On("ListPosts", mock.Anything).Return([]domain.BlogPost{{ID: "p1", Title: "Spor", PublishedAt: published}}, nil)
	deps.blog.On("GetPost", mock.Anything, "p1").Return(&domain.BlogPost{ID: "p1", Title: "Spor", PublishedAt: published}, nil)
	deps.blog.On("GetPost", mock.Anything, "missing").Return(nil, service.ErrPostNotFound)

	w := doRequest(router, http.MethodGet, "/api/blog/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"published_at":"2025-01-02T03:04:05Z"`)

	w = doRequest(router, http.MethodGet, "/api/blog/post/p1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/blog/post/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decodeDetail(t, w))

	deps.blog.AssertExpectations(t)
}

func TestSeedRoute(t *testing.T) {
	router, deps := newTestRouter(t, defaultTestConfig())
	deps.seed.On("Seed", mock.Anything).Return(&service.SeedResult{Message: service.SeedMessage, Exercises: 6, BlogPosts: 4}, nil).Once()
	deps.seed.On("Seed", mock.Anything).Return(nil, errors.New("write failed")).Once()

	w := doRequest(router, http.MethodPost, "/api/seed-data", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Database seeded successfully","exercises":6,"blog_posts":4}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/seed-data", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	deps.seed.AssertExpectations(t)
}

func TestHealthRoutes(t *testing.T) {
	router, deps := newTestRouter(t, defaultTestConfig())
	deps.store.On("Ping", mock.Anything).Return(nil).Once()
	deps.store.On("Ping", mock.Anything).Return(errors.New("server selection timeout")).Once()

	w := doRequest(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	deps.store.AssertExpectations(t)
}

func TestMetricsRoute(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Metrics.Enabled = true
	router, _ := newTestRouter(t, cfg)

	doRequest(router, http.MethodGet, "/ping", "")
	w := doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "byklab_http_requests_total")

	disabled, _ := newTestRouter(t, defaultTestConfig())
	w = doRequest(disabled, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// emptyUserRepo has no users and accepts every insert.
type emptyUserRepo struct{}

func (emptyUserRepo) Create(context.Context, *domain.User) error { return nil }

func (emptyUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func TestSignup_MultiByteOverlongPasswordWithRealHasher(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()
	router := NewRouter(defaultTestConfig(), Services{
		Auth: service.NewAuthService(emptyUserRepo{}, security.NewBcryptHasher(bcrypt.MinCost), log),
	}, log)

	tests := []struct {
		name       string
		password   string
		wantStatus int
	}{
		{name: "36 two-byte characters fit", password: strings.Repeat("ş", 36), wantStatus: http.StatusOK},
		{name: "37 two-byte characters do not", password: strings.Repeat("ş", 37), wantStatus: http.StatusBadRequest},
		{name: "72 two-byte characters do not", password: strings.Repeat("ş", 72), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/auth/signup",
				`{"email":"uzun@byklab.com","password":"`+tt.password+`","full_name":"Uzun"}`)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
