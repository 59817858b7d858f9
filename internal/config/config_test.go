package config_test

import (
	"estimator/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: test\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 20*time.Second, cfg.Analysis.SyncFallbackAfter)
	require.Equal(t, "auto", cfg.Analysis.DefaultMachineProfile)
	require.Equal(t, 60*time.Second, cfg.Client.Timeout)
	require.Equal(t, 1800*time.Millisecond, cfg.Client.PollInterval)
	require.Equal(t, "step-raw", cfg.Storage.RawBucket)
	require.Equal(t, "step-model", cfg.Storage.ModelBucket)
	require.Equal(t, config.OrdersBackendLocal, cfg.Orders.Backend)
	require.Empty(t, cfg.JWT.PublicKey)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	require.True(t, cfg.HTTP.Pprof)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
http:
  addr: ":9090"
analysis:
  maxAttempts: 5
  syncFallbackAfter: 45s
orders:
  backend: postgres
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ANALYSIS_WORKERS", "4")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 5, cfg.Analysis.MaxAttempts)
	require.Equal(t, 4, cfg.Analysis.Workers)
	require.Equal(t, 45*time.Second, cfg.Analysis.SyncFallbackAfter)
	require.Equal(t, config.OrdersBackendPostgres, cfg.Orders.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CLIENT_BASE_URL", "http://estimator.local:8080")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "http://estimator.local:8080", cfg.Client.BaseURL)
}
