package cache

import (
	"context"
	"errors"
)

// ErrMiss 表示缓存中不存在请求的键。
var ErrMiss = errors.New("cache: key not found")

// Store 是缓存后端的最小接口。条目不设 TTL，
// 失效完全由调用方显式触发。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
}
