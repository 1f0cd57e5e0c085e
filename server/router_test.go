package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"blog-cms/config"
	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/server"
	"blog-cms/services"
	"blog-cms/services/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users    *mocks.MockUserService
	articles *mocks.MockArticleService
	tokens   *services.TokenManager
	router   *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserService(s.ctrl)
	s.articles = mocks.NewMockArticleService(s.ctrl)
	s.tokens = services.NewTokenManager(config.JWTConfig{Secret: "test-secret", Expiration: time.Hour})

	h := helper.NewHTTPHelper()
	s.router = server.NewRouter(
		zap.NewNop(),
		h,
		s.tokens,
		s.users,
		handlers.NewUserHandler(s.users, h),
		handlers.NewArticleHandler(s.articles, h),
	)
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) serve(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.serve(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"healthy"}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestGuardedRoutesRejectAnonymous() {
	routes := []struct{ method, path string }{
		{http.MethodGet, "/articles"},
		{http.MethodPost, "/articles"},
		{http.MethodPut, "/articles/some-slug"},
		{http.MethodDelete, "/articles/some-slug"},
		{http.MethodGet, "/user"},
		{http.MethodPut, "/user"},
	}

	for _, route := range routes {
		rec := s.serve(route.method, route.path, "")

		s.Equal(http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
		s.Contains(rec.Body.String(), "Not authorized")
	}
}

func (s *RouterTestSuite) TestPublicRoutes() {
	s.articles.EXPECT().GetFilteredArticles(gomock.Any(), gomock.Any()).
		Return(models.NewPaginatedList[models.Article](nil, 0, 0, 1), nil)
	s.articles.EXPECT().GetArticle(gomock.Any(), "some-slug").
		Return(&models.Article{Slug: "some-slug"}, nil)

	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/articles/filtered", "").Code)
	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/articles/some-slug", "").Code)
}

func (s *RouterTestSuite) TestAuthenticatedRequest() {
	user := &models.User{ID: 3, Name: "jake"}
	token, err := s.tokens.Generate(user)
	s.Require().NoError(err)

	s.users.EXPECT().GetUserByID(gomock.Any(), uint(3)).Return(user, nil)
	s.articles.EXPECT().GetArticles(gomock.Any()).Return([]models.Article{}, nil)

	rec := s.serve(http.MethodGet, "/articles", token)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}
