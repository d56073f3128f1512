package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverSQLite, cfg.Warehouse.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 7, cfg.Forecast.HorizonDays)
	assert.Equal(t, 20, cfg.Actions.RecentLimit)
	assert.Equal(t, "STOCK_HEALTH_DT", cfg.Warehouse.StockTable)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carestock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /tmp/carestock-test.db
warehouse:
  driver: MySQL
  dsn: "ro:secret@tcp(wh:3306)/health?parseTime=true"
  stock_table: HOSPITAL_STOCK
cache:
  ttl: 90s
  redis_addr: "localhost:6379"
actions:
  recent_limit: 50
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/carestock-test.db", cfg.DB.Path)
	assert.Equal(t, DriverMySQL, cfg.Warehouse.Driver)
	assert.Equal(t, "HOSPITAL_STOCK", cfg.Warehouse.StockTable)
	assert.Equal(t, "ACTION_LOG", cfg.Warehouse.ActionTable, "unset keys keep defaults")
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 50, cfg.Actions.RecentLimit)
	assert.Equal(t, 7, cfg.Forecast.HorizonDays)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carestock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("CARESTOCK_LOG_LEVEL", "debug")
	t.Setenv("CARESTOCK_FORECAST_HORIZON_DAYS", "14")
	t.Setenv("CARESTOCK_CACHE_TTL", "10m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 14, cfg.Forecast.HorizonDays)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown driver", map[string]string{"CARESTOCK_WAREHOUSE_DRIVER": "postgres"}, "unknown warehouse.driver"},
		{"mysql without dsn", map[string]string{"CARESTOCK_WAREHOUSE_DRIVER": "mysql"}, "warehouse.dsn is required"},
		{"zero horizon", map[string]string{"CARESTOCK_FORECAST_HORIZON_DAYS": "0"}, "forecast.horizon_days"},
		{"negative limit", map[string]string{"CARESTOCK_ACTIONS_RECENT_LIMIT": "-1"}, "actions.recent_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARESTOCK_CACHE_KEY=from-dotenv\n"), 0o644))
	t.Setenv("CARESTOCK_CACHE_KEY", "")
	os.Unsetenv("CARESTOCK_CACHE_KEY")

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv("CARESTOCK_CACHE_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Cache.Key)
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
