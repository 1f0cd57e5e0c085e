package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/services"
)

func NewRouter(
	logger *zap.Logger,
	h *helper.HTTPHelper,
	tokens *services.TokenManager,
	userService services.UserService,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Authenticate(tokens, userService))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	requireAuth := middleware.RequireAuth(h)

	// Users
	router.POST("/users", userHandler.Register)
	router.GET("/users", userHandler.GetUsers)
	router.POST("/user/login", userHandler.Login)

	user := router.Group("/user", requireAuth)
	{
		user.GET("", userHandler.GetCurrentUser)
		user.PUT("", userHandler.UpdateCurrentUser)
	}

	// Articles
	articles := router.Group("/articles")
	{
		articles.GET("/filtered", articleHandler.GetFilteredArticles)
		articles.GET("/:slug", articleHandler.GetArticle)

		articles.POST("", requireAuth, articleHandler.CreateArticle)
		articles.GET("", requireAuth, articleHandler.GetArticles)
		articles.PUT("/:slug", requireAuth, articleHandler.UpdateArticle)
		articles.DELETE("/:slug", requireAuth, articleHandler.DeleteArticle)
	}

	return router
}
