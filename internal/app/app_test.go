package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/league-insights/internal/config"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
)

func memoryConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":8080",
		StorageDriver:      config.StorageMemory,
		SeedDemoData:       true,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       10 * time.Second,
		ExportOutputDir:    t.TempDir(),
		ExportMaxWorkers:   4,
		InternalJobToken:   "test-token",
	}
}

func TestNewHTTPServer_MemoryDriver(t *testing.T) {
	cfg := memoryConfig(t)

	server, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup()) })

	require.Equal(t, cfg.HTTPAddr, server.Addr)
	require.Equal(t, cfg.ReadTimeout, server.ReadTimeout)
	require.Equal(t, cfg.WriteTimeout, server.WriteTimeout)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Memory storage installs no readiness probe, so /readyz is always ready.
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPServer_UnseededMemoryDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.SeedDemoData = false

	server, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup()) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/449.l.100100", nil)
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
