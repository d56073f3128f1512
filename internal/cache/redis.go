package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the snapshot is stored under.
const DefaultRedisKey = "carestock:stock_health:snapshot"

// RedisOptions configures a RedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

// RedisCache shares the snapshot between processes through Redis. Entries
// expire server-side via SET ... EX.
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	counters
}

// NewRedisCache connects and pings the server.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 2 * time.Second,
		MaxRetries:  1,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	return newRedisCache(client, opts), nil
}

func newRedisCache(client *redis.Client, opts RedisOptions) *RedisCache {
	if opts.Key == "" {
		opts.Key = DefaultRedisKey
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &RedisCache{client: client, key: opts.Key, ttl: opts.TTL, counters: newCounters()}
}

func (c *RedisCache) Get(ctx context.Context) ([]domain.InventoryRecord, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.record(false)
		return nil, false, nil
	}
	if err != nil {
		c.record(false)
		return nil, false, fmt.Errorf("reading snapshot from redis: %w", err)
	}

	records, err := decodeSnapshot(raw)
	if err != nil {
		c.record(false)
		return nil, false, err
	}
	c.record(true)
	return records, true, nil
}

func (c *RedisCache) Set(ctx context.Context, records []domain.InventoryRecord) error {
	raw, err := encodeSnapshot(records, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing snapshot to redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("deleting snapshot from redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Stats() Stats {
	return c.snapshot()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// wireRecord is the JSON form of an InventoryRecord. JSON has no infinity,
// so an absent days_to_stockout means +Inf.
type wireRecord struct {
	Location       string   `json:"location"`
	Item           string   `json:"item"`
	ClosingStock   float64  `json:"closing_stock"`
	AvgDailyDemand float64  `json:"avg_daily_demand"`
	DaysToStockout *float64 `json:"days_to_stockout,omitempty"`
	StockStatus    string   `json:"stock_status"`
	LeadTimeDays   float64  `json:"lead_time_days"`
}

type wireSnapshot struct {
	CachedAt time.Time    `json:"cached_at"`
	Records  []wireRecord `json:"records"`
}

func encodeSnapshot(records []domain.InventoryRecord, at time.Time) ([]byte, error) {
	snap := wireSnapshot{CachedAt: at, Records: make([]wireRecord, len(records))}
	for i, r := range records {
		w := wireRecord{
			Location:       r.Location,
			Item:           r.Item,
			ClosingStock:   r.ClosingStock,
			AvgDailyDemand: r.AvgDailyDemand,
			StockStatus:    string(r.StockStatus),
			LeadTimeDays:   r.LeadTimeDays,
		}
		if r.HasStockoutEstimate() {
			d := r.DaysToStockout
			w.DaysToStockout = &d
		}
		snap.Records[i] = w
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return raw, nil
}

func decodeSnapshot(raw []byte) ([]domain.InventoryRecord, error) {
	var snap wireSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	out := make([]domain.InventoryRecord, len(snap.Records))
	for i, w := range snap.Records {
		days := math.Inf(1)
		if w.DaysToStockout != nil {
			days = *w.DaysToStockout
		}
		out[i] = domain.InventoryRecord{
			Location:       w.Location,
			Item:           w.Item,
			ClosingStock:   w.ClosingStock,
			AvgDailyDemand: w.AvgDailyDemand,
			DaysToStockout: days,
			StockStatus:    domain.StockStatus(w.StockStatus),
			LeadTimeDays:   w.LeadTimeDays,
		}
	}
	return out, nil
}
