package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog-cms/config"
)

func TestServer_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := New(config.ServerConfig{Port: "0", ShutdownTimeout: time.Second}, gin.New(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	srv := New(config.ServerConfig{Port: "not-a-port", ShutdownTimeout: time.Second}, gin.New(), zap.NewNop())

	err := srv.Run(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, http.ErrServerClosed)
}
