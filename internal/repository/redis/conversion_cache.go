package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func conversionKey(digest string) string { return "datc:conversion:" + digest }

// GetConversion returns the cached conversion for a notation digest, or nil
// when nothing is cached.
func (c *Client) GetConversion(ctx context.Context, digest string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, conversionKey(digest)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get conversion: %w", err)
	}
	return data, nil
}

// SetConversion caches a conversion for ttl. A zero ttl keeps it until evicted.
func (c *Client) SetConversion(ctx context.Context, digest string, data []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, conversionKey(digest), data, ttl).Err(); err != nil {
		return fmt.Errorf("set conversion: %w", err)
	}
	return nil
}
