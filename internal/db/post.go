package db

import (
	"time"

	"gorm.io/gorm"
)

// Post 定义了博客文章模型。
// 文章创建后不可更新或删除；UpdatedAt 由 gorm 在任何写入时自动刷新。
type Post struct {
	gorm.Model
	Subject string `gorm:"not null"`
	Content string `gorm:"type:text;not null"`
}

// entryTimeFormat 对应原始 JSON 输出的 C 风格日期（"%c"）。
const entryTimeFormat = time.ANSIC

// AsDict converts the post into the map rendered on .json endpoints.
func (p *Post) AsDict() map[string]interface{} {
	return map[string]interface{}{
		"subject":  p.Subject,
		"content":  p.Content,
		"created":  p.CreatedAt.Format(entryTimeFormat),
		"modified": p.UpdatedAt.Format(entryTimeFormat),
	}
}
