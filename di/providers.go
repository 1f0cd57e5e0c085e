package di

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-cms/config"
	"blog-cms/events"
	"blog-cms/services"
)

func provideDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := config.InitDB(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return db, cleanup, nil
}

func providePublisher(cfg *config.Config, logger *zap.Logger) (services.EventPublisher, func(), error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("rabbitmq url not set, article events disabled")
		return events.Nop{}, func() {}, nil
	}

	publisher, err := events.NewRabbitMQ(events.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return publisher, func() { _ = publisher.Close() }, nil
}

func provideJWTConfig(cfg *config.Config) config.JWTConfig {
	return cfg.JWT
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}
