package service

import (
	"errors"

	"github.com/GKleim/wiki/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrRevisionNotFound = errors.New("revision not found")
	ErrContentRequired  = errors.New("page content is required")
)

// historyLimit 限制历史记录只保留展示最近的修订。
const historyLimit = 10

// WikiService 负责 wiki 页面与其修订历史。
// 修订只追加；页面当前内容是最近一条修订。
type WikiService struct {
	db *gorm.DB
}

// NewWikiService creates a WikiService instance.
func NewWikiService(gdb *gorm.DB) *WikiService {
	return &WikiService{db: gdb}
}

// PageByTag fetches a page slot by its URL slug.
func (s *WikiService) PageByTag(tag string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("tag = ?", tag).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// CurrentContent returns the most recent revision of a page.
func (s *WikiService) CurrentContent(page *db.Page) (*db.Content, error) {
	var content db.Content
	if err := s.db.Where("page_id = ?", page.ID).
		Order("created_at desc, id desc").
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRevisionNotFound
		}
		return nil, err
	}
	return &content, nil
}

// History returns up to the 10 most recent revisions, newest first.
func (s *WikiService) History(page *db.Page) ([]db.Content, error) {
	var contents []db.Content
	if err := s.db.Where("page_id = ?", page.ID).
		Order("created_at desc, id desc").
		Limit(historyLimit).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// ContentAtVersion 返回历史列表中指定位置的修订（0 为最新）。
// version 越界时返回 ErrRevisionNotFound。
func (s *WikiService) ContentAtVersion(page *db.Page, version int) (*db.Content, error) {
	if version <= 0 {
		return s.CurrentContent(page)
	}

	history, err := s.History(page)
	if err != nil {
		return nil, err
	}
	if version >= len(history) {
		return nil, ErrRevisionNotFound
	}
	return &history[version], nil
}

// Save appends a revision to the page named by tag, creating the page
// slot on first write. Edits 恰好加一，并借此推动页面的修改时间前进。
func (s *WikiService) Save(tag, body, author string) (*db.Page, error) {
	if body == "" {
		return nil, ErrContentRequired
	}

	var page db.Page
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag = ?", tag).First(&page).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// 页面只在第一次保存内容时创建，首位作者即 owner
			page = db.Page{Tag: tag, Owner: author, Edits: 0}
			if err := tx.Create(&page).Error; err != nil {
				return err
			}
		}

		content := db.Content{PageID: page.ID, Body: body, Author: author}
		if err := tx.Create(&content).Error; err != nil {
			return err
		}

		page.Edits++
		return tx.Save(&page).Error
	})
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// NewestPages returns the most recently created pages for the wiki home.
func (s *WikiService) NewestPages(limit int) ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("created_at desc, id desc").Limit(limit).Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// RecentlyUpdatedPages returns the most recently edited pages.
func (s *WikiService) RecentlyUpdatedPages(limit int) ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("updated_at desc, id desc").Limit(limit).Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}
