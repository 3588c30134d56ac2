package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

type Cache struct {
	RDB    *redis.Client
	Prefix string
	sf     singleflight.Group
}

func New(addr, pass string, db int, prefix string) *Cache {
	return &Cache{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Prefix: prefix,
	}
}

func (c *Cache) Key(k string) string { return c.Prefix + k }

func (c *Cache) Ping(ctx context.Context) error { return c.RDB.Ping(ctx).Err() }

func (c *Cache) Close() error { return c.RDB.Close() }

const (
	loadTimeout = 5 * time.Second
	verTTL      = 24 * time.Hour
)

func (c *Cache) verKey(key string) string { return key + ":ver" }

// GetOrLoad 读缓存；未命中（或 redis 不可用）时 singleflight 合并回源并回写。
// 回源前记下 key 的版本号，只有版本未变才回写：回源期间发生的 Invalidate 会让这次回写作废。
// 版本号也是 singleflight 的一部分，失效之后到达的请求不会复用失效前的回源结果。
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	key = c.Key(key)
	if b, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	ver, verErr := c.RDB.Get(ctx, c.verKey(key)).Int64()
	// 读不到版本号（redis 不可用）就只回源不回写
	cacheable := verErr == nil || errors.Is(verErr, redis.Nil)
	flight := key + "@nocache"
	if cacheable {
		flight = key + "@" + strconv.FormatInt(ver, 10)
	}

	v, err, _ := c.sf.Do(flight, func() (any, error) {
		// 共享回源不跟随首个调用方的取消
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		b, e := load(lctx)
		if e != nil {
			return nil, e
		}
		if cacheable {
			_ = c.setIfVersion(lctx, key, ver, b, ttl)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// setIfVersion WATCH 版本 key，版本变化时放弃写入
func (c *Cache) setIfVersion(ctx context.Context, key string, ver int64, b []byte, ttl time.Duration) error {
	vk := c.verKey(key)
	return c.RDB.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, vk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != ver {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, b, ttl)
			return nil
		})
		return err
	}, vk)
}

// Invalidate 删除若干 key 并递增其版本号；写路径在落库成功后调用
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	// 写已落库，调用方断开也要失效
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
	defer cancel()
	_, err := c.RDB.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			full := c.Key(k)
			p.Del(ctx, full)
			p.Incr(ctx, c.verKey(full))
			p.Expire(ctx, c.verKey(full), verTTL)
		}
		return nil
	})
	return err
}
