// Package config loads runtime settings from an optional YAML file, a .env
// file and CARESTOCK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CARESTOCK_WAREHOUSE_DSN for warehouse.dsn.
const EnvPrefix = "CARESTOCK"

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	DB        DBConfig        `mapstructure:"db"`
	Warehouse WarehouseConfig `mapstructure:"warehouse"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`
	Forecast  ForecastConfig  `mapstructure:"forecast"`
	Actions   ActionsConfig   `mapstructure:"actions"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// WarehouseConfig selects where the stock-health feed and action log live.
// The sqlite driver uses the local database; mysql reads the named tables
// through DSN.
type WarehouseConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	StockTable  string `mapstructure:"stock_table"`
	ActionTable string `mapstructure:"action_table"`
}

// CacheConfig controls the feed snapshot. An empty RedisAddr keeps the
// snapshot in memory.
type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	Key           string        `mapstructure:"key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type ForecastConfig struct {
	HorizonDays int `mapstructure:"horizon_days"`
}

type ActionsConfig struct {
	RecentLimit int `mapstructure:"recent_limit"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DB: DBConfig{Path: defaultDBPath()},
		Warehouse: WarehouseConfig{
			Driver:      DriverSQLite,
			StockTable:  "STOCK_HEALTH_DT",
			ActionTable: "ACTION_LOG",
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
			Key: "carestock:stock_health:snapshot",
		},
		Log:      LogConfig{Level: "info"},
		Forecast: ForecastConfig{HorizonDays: 7},
		Actions:  ActionsConfig{RecentLimit: 20},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".carestock", "carestock.db")
	}
	return filepath.Join(home, ".carestock", "carestock.db")
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and CARESTOCK_* environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Warehouse.Driver = strings.ToLower(strings.TrimSpace(cfg.Warehouse.Driver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("warehouse.driver", d.Warehouse.Driver)
	v.SetDefault("warehouse.dsn", d.Warehouse.DSN)
	v.SetDefault("warehouse.stock_table", d.Warehouse.StockTable)
	v.SetDefault("warehouse.action_table", d.Warehouse.ActionTable)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.redis_addr", d.Cache.RedisAddr)
	v.SetDefault("cache.redis_password", d.Cache.RedisPassword)
	v.SetDefault("cache.redis_db", d.Cache.RedisDB)
	v.SetDefault("cache.key", d.Cache.Key)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("forecast.horizon_days", d.Forecast.HorizonDays)
	v.SetDefault("actions.recent_limit", d.Actions.RecentLimit)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Warehouse.Driver {
	case DriverSQLite:
	case DriverMySQL:
		if c.Warehouse.DSN == "" {
			return fmt.Errorf("warehouse.dsn is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unknown warehouse.driver %q (want %s or %s)", c.Warehouse.Driver, DriverSQLite, DriverMySQL)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Forecast.HorizonDays <= 0 {
		return fmt.Errorf("forecast.horizon_days must be positive, got %d", c.Forecast.HorizonDays)
	}
	if c.Actions.RecentLimit <= 0 {
		return fmt.Errorf("actions.recent_limit must be positive, got %d", c.Actions.RecentLimit)
	}
	return nil
}
