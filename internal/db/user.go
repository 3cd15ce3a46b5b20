package db

import "gorm.io/gorm"

// User 定义了用户模型。
// Password 存储加盐摘要（"hex,salt"），注册后记录不再被修改。
// CreatedAt 即用户的注册时间。
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Email    string
}
