package services

import (
	"context"
	"encoding/json"
	"time"

	"deoghar-kitab/models"

	"github.com/redis/go-redis/v9"
)

const bookListKey = "books:available"

// BookCache is a read-through Redis cache for the unfiltered public book
// listing. A nil *BookCache is valid and behaves as a permanent miss, so
// the service runs without Redis.
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

type cachedListing struct {
	Books []models.Book `json:"books"`
	Total int64         `json:"total"`
}

func NewBookCache(addr, password string, ttl time.Duration) *BookCache {
	return &BookCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

func (c *BookCache) GetListing() ([]models.Book, int64, bool) {
	if c == nil {
		return nil, 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	val, err := c.client.Get(ctx, bookListKey).Result()
	if err != nil {
		return nil, 0, false
	}
	var listing cachedListing
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		return nil, 0, false
	}
	return listing.Books, listing.Total, true
}

func (c *BookCache) StoreListing(books []models.Book, total int64) {
	if c == nil {
		return
	}
	data, err := json.Marshal(cachedListing{Books: books, Total: total})
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c.client.Set(ctx, bookListKey, data, c.ttl)
}

// Invalidate drops the cached listing; called after any book write.
func (c *BookCache) Invalidate() {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c.client.Del(ctx, bookListKey)
}
