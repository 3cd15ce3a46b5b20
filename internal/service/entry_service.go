package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/GKleim/wiki/internal/cache"
	"github.com/GKleim/wiki/internal/db"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("entry not found")

// 缓存键布局：列表存于 topEntriesKey，刷新时间存于 topTimeKey；
// 单篇文章按其 id 存放，刷新时间为 "time|<id>"。
const (
	topEntriesKey = "top"
	topTimeKey    = "top_time"
	recentLimit   = 10
)

// EntryService 负责博客文章的写入与旁路缓存读取。
// 缓存不设 TTL：列表仅在新文章写入后强制刷新，单篇文章创建后不可变，
// 过期程度通过"上次查询时间"暴露给页面。
type EntryService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewEntryService creates an EntryService instance.
func NewEntryService(gdb *gorm.DB, store cache.Store) *EntryService {
	return &EntryService{db: gdb, cache: store}
}

// Recent returns the newest posts, served from cache unless force is set.
// 返回值中的时间为该列表上次从数据库刷新的时刻。
func (s *EntryService) Recent(ctx context.Context, force bool) ([]db.Post, time.Time, error) {
	// 未命中或缓存不可用时都退化为直接查询
	if !force {
		if data, err := s.cache.Get(ctx, topEntriesKey); err == nil {
			var posts []db.Post
			if err := json.Unmarshal(data, &posts); err == nil {
				return posts, s.refreshTime(ctx, topTimeKey), nil
			}
		}
	}

	var posts []db.Post
	if err := s.db.Order("created_at desc, id desc").Limit(recentLimit).Find(&posts).Error; err != nil {
		return nil, time.Time{}, err
	}

	now := time.Now()
	if data, err := json.Marshal(posts); err == nil {
		s.cache.Set(ctx, topEntriesKey, data)
		s.storeRefreshTime(ctx, topTimeKey, now)
	}

	return posts, now, nil
}

// Get returns a single post by id, served from cache when possible.
func (s *EntryService) Get(ctx context.Context, id uint) (*db.Post, time.Time, error) {
	key := strconv.FormatUint(uint64(id), 10)
	timeKey := fmt.Sprintf("time|%s", key)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var post db.Post
		if err := json.Unmarshal(data, &post); err == nil {
			return &post, s.refreshTime(ctx, timeKey), nil
		}
	}

	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, ErrEntryNotFound
		}
		return nil, time.Time{}, err
	}

	now := time.Now()
	if data, err := json.Marshal(&post); err == nil {
		s.cache.Set(ctx, key, data)
		s.storeRefreshTime(ctx, timeKey, now)
	}

	return &post, now, nil
}

// Create persists a post and forces the recent list to refresh,
// so the next read sees the new entry first.
func (s *EntryService) Create(ctx context.Context, subject, content string) (*db.Post, error) {
	post := db.Post{Subject: subject, Content: content}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	if _, _, err := s.Recent(ctx, true); err != nil {
		return nil, err
	}

	return &post, nil
}

// Flush clears the whole cache unconditionally.
func (s *EntryService) Flush(ctx context.Context) error {
	return s.cache.Flush(ctx)
}

func (s *EntryService) storeRefreshTime(ctx context.Context, key string, at time.Time) {
	s.cache.Set(ctx, key, []byte(at.Format(time.RFC3339Nano)))
}

func (s *EntryService) refreshTime(ctx context.Context, key string) time.Time {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return time.Time{}
	}
	at, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return time.Time{}
	}
	return at
}
