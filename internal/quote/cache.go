package quote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard-service/internal/models"
)

// Cache wraps a Quoter with a Redis-backed TTL cache. Cache failures fall
// through to the inner quoter; they never fail the lookup.
type Cache struct {
	inner Quoter
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching decorator around inner.
func NewCache(inner Quoter, rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *Cache) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	key := "quote:" + sym

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var q models.Quote
		if jsonErr := json.Unmarshal(data, &q); jsonErr == nil {
			return &q, nil
		}
	} else if err != redis.Nil {
		logrus.WithError(err).WithField("symbol", sym).Warn("quote cache read failed")
	}

	q, err := c.inner.Quote(ctx, sym)
	if err != nil || q == nil {
		return q, err
	}

	if data, jsonErr := json.Marshal(q); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			logrus.WithError(setErr).WithField("symbol", sym).Warn("quote cache write failed")
		}
	}

	return q, nil
}
