package db

import "gorm.io/gorm"

// Page 定义了 wiki 页面槽位。
// Edits 在每次成功写入 Content 后恰好加一，也是唯一会推动
// UpdatedAt 前进的写入。
type Page struct {
	gorm.Model
	Tag   string `gorm:"uniqueIndex;not null"`
	Owner string `gorm:"not null"`
	Edits int    `gorm:"not null;default:0"`
}

// Content 是页面的一次修订。修订只追加，不覆盖；
// 页面当前内容即其最近一条修订。
type Content struct {
	gorm.Model
	PageID uint   `gorm:"index;not null"`
	Body   string `gorm:"type:text;not null"`
	Author string `gorm:"not null"`
}
