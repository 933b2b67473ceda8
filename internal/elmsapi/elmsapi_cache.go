package elmsapi

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"elms-portal/internal/leave"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LeavesAllKey        = "elms:leaves:all"
	LeavesByEmployeeKey = "elms:leaves:employee:"
	HeadsAllKey         = "elms:heads:all"
	// leaveKeysSet tracks every cached leave list so a status change can drop them all.
	leaveKeysSet = "elms:leaves:keys"
)

func GetLeavesByEmployeeKey(employeeID string) string {
	return LeavesByEmployeeKey + employeeID
}

// CachedClient shares list reads through Redis for ttl and collapses
// concurrent identical reads. Every write drops the lists it can affect, and
// a read that was in flight when that happened is not cached.
type CachedClient struct {
	Client
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger

	mu  sync.Mutex
	gen uint64
}

func NewCachedClient(inner Client, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *CachedClient {
	l := zap.L().Named("elmsapi.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("elmsapi.cache")
	}
	return &CachedClient{
		Client: inner,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (c *CachedClient) ListLeaves(ctx context.Context) ([]leave.Record, error) {
	return cachedList(ctx, c, LeavesAllKey, true, c.Client.ListLeaves)
}

func (c *CachedClient) ListLeavesByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	return cachedList(ctx, c, GetLeavesByEmployeeKey(employeeID), true, func(ctx context.Context) ([]leave.Record, error) {
		return c.Client.ListLeavesByEmployee(ctx, employeeID)
	})
}

func (c *CachedClient) ListHeads(ctx context.Context) ([]DepartmentHead, error) {
	return cachedList(ctx, c, HeadsAllKey, false, c.Client.ListHeads)
}

func (c *CachedClient) SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error) {
	resp, err := c.Client.SubmitLeave(ctx, req)
	if err == nil {
		c.invalidate(ctx, LeavesAllKey, GetLeavesByEmployeeKey(req.EmployeeID))
	}
	return resp, err
}

func (c *CachedClient) UpdateLeaveStatus(ctx context.Context, id string, status leave.Status) error {
	err := c.Client.UpdateLeaveStatus(ctx, id, status)
	if err == nil {
		c.invalidateLeaves(ctx)
	}
	return err
}

func (c *CachedClient) CreateHead(ctx context.Context, req CreateHeadRequest) error {
	err := c.Client.CreateHead(ctx, req)
	if err == nil {
		c.invalidate(ctx, HeadsAllKey)
	}
	return err
}

func (c *CachedClient) UpdateHead(ctx context.Context, id string, req UpdateHeadRequest) error {
	err := c.Client.UpdateHead(ctx, id, req)
	if err == nil {
		c.invalidate(ctx, HeadsAllKey)
	}
	return err
}

func (c *CachedClient) DeleteHead(ctx context.Context, id string) error {
	err := c.Client.DeleteHead(ctx, id)
	if err == nil {
		c.invalidate(ctx, HeadsAllKey)
	}
	return err
}

func (c *CachedClient) ToggleHeadStatus(ctx context.Context, id string) (DepartmentHead, error) {
	head, err := c.Client.ToggleHeadStatus(ctx, id)
	if err == nil {
		c.invalidate(ctx, HeadsAllKey)
	}
	return head, err
}

// cachedList serves key from Redis or fetches it once for every concurrent
// caller. The shared fetch runs detached from any one caller's cancellation;
// each caller still stops waiting when its own ctx is done.
func cachedList[T any](ctx context.Context, c *CachedClient, key string, trackLeaves bool, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if c.rdb == nil || c.ttl <= 0 {
		return fetch(ctx)
	}

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var out []T
		if json.Unmarshal([]byte(cached), &out) == nil {
			return out, nil
		}
	}

	shared := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		gen := c.generation()
		out, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		c.store(shared, key, gen, trackLeaves, out)
		return out, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	}
}

func (c *CachedClient) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// store caches a list fetched at generation gen, unless an invalidation has
// happened since.
func (c *CachedClient) store(ctx context.Context, key string, gen uint64, trackLeaves bool, list any) {
	payload, err := json.Marshal(list)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Debug("list changed during fetch, not cached", zap.String("key", key))
		return
	}
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, payload, c.ttl)
	if trackLeaves {
		pipe.SAdd(ctx, leaveKeysSet, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("cache list failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CachedClient) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked(ctx, keys)
}

// invalidateLeaves drops every tracked leave list. The lock is held from
// reading the set to the delete so no list written meanwhile escapes it.
func (c *CachedClient) invalidateLeaves(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.rdb.SMembers(ctx, leaveKeysSet).Result()
	if err != nil {
		c.logger.Error("failed to read cached leave lists", zap.Error(err))
	}
	c.dropLocked(ctx, append(keys, LeavesAllKey, leaveKeysSet))
}

func (c *CachedClient) dropLocked(ctx context.Context, keys []string) {
	c.gen++
	for _, key := range keys {
		c.sf.Forget(key)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("failed to invalidate list cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
