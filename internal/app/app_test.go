package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"mug-store/internal/config"
	"mug-store/internal/lib/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func TestApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log, zapLog := logger.Discard()
	address := freeAddress(t)

	application := New(log, zapLog, &config.Config{
		Server: config.ServerConfig{
			Env:         config.EnvLocal,
			Address:     address,
			Timeout:     5 * time.Second,
			CORSOrigins: []string{"*"},
		},
		Store: config.StoreConfig{URL: ":memory:", AuthToken: "unused"},
	})

	runErr := make(chan error, 1)
	go func() {
		runErr <- application.HTTPServer.Run()
	}()

	baseURL := "http://" + address
	client := &http.Client{Timeout: 5 * time.Second}

	require.Eventually(t, func() bool {
		resp, err := client.Get(baseURL + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	t.Run("Create_category", func(t *testing.T) {
		resp, err := client.Post(baseURL+"/category", "application/json", strings.NewReader(`{"name":"Cool Mugs"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
		require.Contains(t, string(body), `"name":"Cool Mugs"`)
	})

	t.Run("Unknown_mug", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/mug/nonexistent-id")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, application.Stop(ctx))
	require.NoError(t, <-runErr)

	_, err := client.Get(fmt.Sprintf("%s/", baseURL))
	require.Error(t, err)
}

func TestNew_PanicsOnBadStore(t *testing.T) {
	log, zapLog := logger.Discard()

	require.Panics(t, func() {
		New(log, zapLog, &config.Config{
			Server: config.ServerConfig{Address: "127.0.0.1:0", Timeout: time.Second},
			Store:  config.StoreConfig{URL: "mysql://localhost/mugs", AuthToken: "token"},
		})
	})
}
