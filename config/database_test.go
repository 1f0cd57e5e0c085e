package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewGormLogger(zap.New(core))
	ctx := context.Background()
	query := func() (string, int64) { return "SELECT 1", 1 }

	logger.Trace(ctx, time.Now(), query, errors.New("relation does not exist"))
	logger.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	logger.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	logger.Trace(ctx, time.Now(), query, nil)

	assert.Equal(t, 1, logs.FilterMessage("query failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("slow query").Len())
	assert.Equal(t, 0, logs.FilterMessage("query").Len())
}

func TestGormLogger_LogMode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := NewGormLogger(zap.New(core))
	query := func() (string, int64) { return "SELECT 1", 1 }

	base.LogMode(gormlogger.Info).Trace(context.Background(), time.Now(), query, nil)
	base.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))

	assert.Equal(t, 1, logs.FilterMessage("query").Len())
	assert.Equal(t, 0, logs.FilterMessage("query failed").Len())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "blog", SSLMode: "require"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=blog sslmode=require", cfg.DSN())
}
