package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/GKleim/wiki/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWikiServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Page{}, &db.Content{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSaveCreatesPageOnFirstWrite(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	page, err := svc.Save("Houston_Texas", "first revision", "alice")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if page.Tag != "Houston_Texas" {
		t.Fatalf("expected tag 'Houston_Texas', got %s", page.Tag)
	}
	if page.Owner != "alice" {
		t.Fatalf("expected owner 'alice', got %s", page.Owner)
	}
	if page.Edits != 1 {
		t.Fatalf("expected edit counter 1, got %d", page.Edits)
	}

	content, err := svc.CurrentContent(page)
	if err != nil {
		t.Fatalf("CurrentContent returned error: %v", err)
	}
	if content.Body != "first revision" {
		t.Fatalf("expected first revision body, got %q", content.Body)
	}
}

func TestSaveAppendsRevisionsAndCountsEdits(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	if _, err := svc.Save("go", "v1", "alice"); err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	page, err := svc.Save("go", "v2", "bob")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// owner 始终是第一位作者
	if page.Owner != "alice" {
		t.Fatalf("expected owner to stay 'alice', got %s", page.Owner)
	}
	if page.Edits != 2 {
		t.Fatalf("expected edit counter 2, got %d", page.Edits)
	}

	var revisions int64
	db.DB.Model(&db.Content{}).Where("page_id = ?", page.ID).Count(&revisions)
	if revisions != 2 {
		t.Fatalf("expected 2 revisions, found %d", revisions)
	}

	content, err := svc.CurrentContent(page)
	if err != nil {
		t.Fatalf("CurrentContent returned error: %v", err)
	}
	if content.Body != "v2" || content.Author != "bob" {
		t.Fatalf("expected latest revision v2 by bob, got %q by %s", content.Body, content.Author)
	}
}

func TestSaveRejectsEmptyContent(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	if _, err := svc.Save("go", "", "alice"); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}

	// 没有内容时不应创建页面槽位
	if _, err := svc.PageByTag("go"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected no page slot, got %v", err)
	}
}

func TestHistoryIsBoundedToTenNewestFirst(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	for i := 1; i <= 12; i++ {
		if _, err := svc.Save("go", fmt.Sprintf("v%d", i), "alice"); err != nil {
			t.Fatalf("failed to save revision %d: %v", i, err)
		}
	}

	page, err := svc.PageByTag("go")
	if err != nil {
		t.Fatalf("PageByTag returned error: %v", err)
	}

	history, err := svc.History(page)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(history))
	}
	if history[0].Body != "v12" {
		t.Fatalf("expected newest revision first, got %q", history[0].Body)
	}
}

func TestContentAtVersion(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	for i := 1; i <= 3; i++ {
		if _, err := svc.Save("go", fmt.Sprintf("v%d", i), "alice"); err != nil {
			t.Fatalf("failed to save revision %d: %v", i, err)
		}
	}

	page, err := svc.PageByTag("go")
	if err != nil {
		t.Fatalf("PageByTag returned error: %v", err)
	}

	current, err := svc.ContentAtVersion(page, 0)
	if err != nil {
		t.Fatalf("ContentAtVersion(0) returned error: %v", err)
	}
	if current.Body != "v3" {
		t.Fatalf("expected v3 at position 0, got %q", current.Body)
	}

	older, err := svc.ContentAtVersion(page, 2)
	if err != nil {
		t.Fatalf("ContentAtVersion(2) returned error: %v", err)
	}
	if older.Body != "v1" {
		t.Fatalf("expected v1 at position 2, got %q", older.Body)
	}

	if _, err := svc.ContentAtVersion(page, 9); !errors.Is(err, ErrRevisionNotFound) {
		t.Fatalf("expected ErrRevisionNotFound for out-of-range version, got %v", err)
	}
}

func TestPageByTagMissing(t *testing.T) {
	cleanup := setupWikiServiceTestDB(t)
	defer cleanup()

	svc := NewWikiService(db.DB)
	if _, err := svc.PageByTag("missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}
