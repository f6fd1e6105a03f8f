package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	model "taskhive.com/taskhive/internal/models"
)

// TaskCache is a read-through cache for task rows. A nil *TaskCache is
// valid and disables caching, so the service works without Redis.
type TaskCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewTaskCache(client rueidis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{client: client, ttl: ttl}
}

func key(taskID string) string {
	return fmt.Sprintf("task:%s", taskID)
}

// Get returns the cached task or nil on miss. Cache failures are treated
// as misses; the store stays authoritative.
func (c *TaskCache) Get(ctx context.Context, taskID string) *model.Task {
	if c == nil {
		return nil
	}

	raw, err := c.client.Do(ctx, c.client.B().Get().Key(key(taskID)).Build()).AsBytes()
	if err != nil {
		return nil
	}

	var task model.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil
	}
	return &task
}

func (c *TaskCache) Set(ctx context.Context, task *model.Task) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(task)
	if err != nil {
		return
	}

	_ = c.client.Do(ctx, c.client.B().Set().
		Key(key(task.ID)).
		Value(string(raw)).
		Ex(c.ttl).
		Build()).Error()
}

// Invalidate drops the cached row; callers do this on every write so the
// next read repopulates from the store.
func (c *TaskCache) Invalidate(ctx context.Context, taskID string) {
	if c == nil {
		return
	}
	_ = c.client.Do(ctx, c.client.B().Del().Key(key(taskID)).Build()).Error()
}
