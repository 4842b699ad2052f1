package report_cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/service/report"

	"github.com/redis/go-redis/v9"
)

const (
	versionKey = "reports:version"
	keyPrefix  = "reports:summary"
)

// Cache сводки лежат под ключом с номером версии. Инвалидация увеличивает
// версию, старые ключи никто больше не читает и они истекают по TTL.
type Cache struct {
	client Client
	ttl    time.Duration
}

func New(client Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetSummary(ctx context.Context, filter entities.OrderFilter) (*entities.ReportSummary, error) {
	key, err := c.summaryKey(ctx, filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, report.ErrCacheMiss
		}
		return nil, fmt.Errorf("unexpected report cache get error: %w", err)
	}

	var model SummaryCache
	if err := json.Unmarshal(raw, &model); err != nil {
		// битая запись равносильна промаху, следующий Set ее перезапишет
		return nil, fmt.Errorf("%w: decode: %w", report.ErrCacheMiss, err)
	}

	return ToDomain(&model), nil
}

func (c *Cache) SetSummary(ctx context.Context, filter entities.OrderFilter, summary *entities.ReportSummary) error {
	key, err := c.summaryKey(ctx, filter)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(FromDomain(summary))
	if err != nil {
		return fmt.Errorf("unexpected report cache encode error: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("unexpected report cache set error: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("unexpected report cache invalidate error: %w", err)
	}
	return nil
}

func (c *Cache) summaryKey(ctx context.Context, filter entities.OrderFilter) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("unexpected report cache version error: %w", err)
	}

	hash, err := FilterHash(filter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, version, hash), nil
}

// FilterHash одинаковые по смыслу фильтры дают один хэш: списки сортируются,
// время приводится к UTC, пагинация не учитывается.
func FilterHash(filter entities.OrderFilter) (string, error) {
	key := toFilterKey(filter)
	key.IDs = sortedCopy(key.IDs)
	key.CourierIDs = sortedCopy(key.CourierIDs)
	key.Statuses = sortedCopy(key.Statuses)

	raw, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("unexpected report cache filter encode error: %w", err)
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func sortedCopy[T int64 | string](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := slices.Clone(items)
	slices.Sort(out)
	return slices.Compact(out)
}
