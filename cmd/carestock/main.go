package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/carestock/internal/cache"
	"github.com/alexanderramin/carestock/internal/cli"
	"github.com/alexanderramin/carestock/internal/config"
	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/logging"
	"github.com/alexanderramin/carestock/internal/repository"
	"github.com/alexanderramin/carestock/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run() error {
	ctx := context.Background()

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(os.Getenv("CARESTOCK_CONFIG"))
	if err != nil {
		return err
	}

	// JSON lines on stderr would tear the alt-screen dashboard.
	logFile := cfg.Log.File
	if logFile == "" && isInteractive() {
		logFile = filepath.Join(filepath.Dir(cfg.DB.Path), "carestock.log")
	}
	logger, err := logging.New(cfg.Log.Level, logFile)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the feed and action log: the local mirror by default, the MySQL
	// warehouse when configured.
	var (
		feed    repository.StockHealthReader = repository.NewSQLiteStockHealthRepo(database)
		actions repository.ActionLogRepo     = repository.NewSQLiteActionLogRepo(database)
	)
	if cfg.Warehouse.Driver == config.DriverMySQL {
		wh, err := repository.OpenGormWarehouse(cfg.Warehouse.DSN, repository.WarehouseTables{
			Stock:  cfg.Warehouse.StockTable,
			Action: cfg.Warehouse.ActionTable,
		})
		if err != nil {
			return err
		}
		defer wh.Close()
		feed, actions = wh, wh
	}

	snapshotCache := openCache(ctx, cfg.Cache, logger)
	defer func() {
		st := snapshotCache.Stats()
		logger.Debug("snapshot cache", zap.Int64("hits", st.Hits), zap.Int64("misses", st.Misses))
	}()
	observer := service.NewLogUseCaseObserver(logger)
	loader := service.NewSnapshotLoader(feed, snapshotCache)
	session := service.NewSession()

	settings := service.NewSettingsService(session, repository.NewSQLitePreferencesRepo(database), observer)
	if err := settings.Load(ctx); err != nil {
		logger.Warn("alert preferences not loaded, using defaults", zap.Error(err))
	}

	app := &cli.App{
		Inventory:     service.NewInventoryService(loader, cfg.Forecast.HorizonDays, observer),
		Analytics:     service.NewAnalyticsService(loader, session, cfg.Forecast.HorizonDays, observer),
		Actions:       service.NewActionService(actions, cfg.Actions.RecentLimit, observer),
		Settings:      settings,
		Import:        service.NewImportService(db.NewSQLiteUnitOfWork(database), loader, observer),
		WarehouseFeed: cfg.Warehouse.Driver == config.DriverMySQL,
		IsInteractive: isInteractive,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// openCache prefers Redis when an address is configured and falls back to
// an in-process cache when the server cannot be reached.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) cache.SnapshotCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.TTL)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Key:      cfg.Key,
		TTL:      cfg.TTL,
	})
	if err != nil {
		logger.Warn("redis cache unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return cache.NewMemoryCache(cfg.TTL)
	}
	return rc
}
