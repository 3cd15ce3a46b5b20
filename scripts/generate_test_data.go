package main

import (
	"fmt"
	"log"

	"github.com/GKleim/wiki/internal/auth"
	"github.com/GKleim/wiki/internal/config"
	"github.com/GKleim/wiki/internal/db"
	"github.com/google/uuid"
)

// 测试数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	createTestUsers()
	createTestPosts()
	createTestPages()

	fmt.Println("测试数据生成完成！")
	fmt.Println("用户: alice (密码: alice123)")
}

// 创建测试用户
func createTestUsers() {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		return
	}

	users := []db.User{
		{Username: "alice", Password: auth.MakePasswordHash("alice", "alice123"), Email: "alice@example.com"},
		{Username: "bob", Password: auth.MakePasswordHash("bob", "bob123")},
	}
	for i := range users {
		db.DB.Create(&users[i])
	}
}

// 创建测试文章
func createTestPosts() {
	var count int64
	db.DB.Model(&db.Post{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	for i := 1; i <= 5; i++ {
		post := db.Post{
			Subject: fmt.Sprintf("Sample post %d", i),
			Content: fmt.Sprintf("This is the body of sample post %d.", i),
		}
		db.DB.Create(&post)
	}
}

// 创建测试 wiki 页面；uuid 保证标签不与已有页面冲突
func createTestPages() {
	var count int64
	db.DB.Model(&db.Page{}).Count(&count)
	if count > 0 {
		fmt.Println("页面已存在，跳过创建")
		return
	}

	for i := 1; i <= 3; i++ {
		tag := fmt.Sprintf("sample-page-%s", uuid.NewString()[:8])
		page := db.Page{Tag: tag, Owner: "alice", Edits: 1}
		if err := db.DB.Create(&page).Error; err != nil {
			log.Fatal("创建页面失败:", err)
		}

		content := db.Content{
			PageID: page.ID,
			Body:   fmt.Sprintf("Initial revision of %s.", tag),
			Author: "alice",
		}
		db.DB.Create(&content)
	}
}
