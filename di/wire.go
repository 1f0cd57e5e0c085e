//go:build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"blog-cms/config"
	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/repositories"
	"blog-cms/server"
	"blog-cms/services"
)

// InitializeServer wires the application components together.
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(
		provideDatabase,
		providePublisher,
		provideJWTConfig,
		provideServerConfig,
		repositories.NewUserRepository,
		repositories.NewArticleRepository,
		repositories.NewTransactionManager,
		services.NewTokenManager,
		services.NewUserService,
		services.NewArticleService,
		helper.NewHTTPHelper,
		handlers.NewUserHandler,
		handlers.NewArticleHandler,
		server.NewRouter,
		server.New,
	)
	return nil, nil, nil
}
