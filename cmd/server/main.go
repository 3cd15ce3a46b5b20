package main

import (
	"log"

	"github.com/GKleim/wiki/internal/auth"
	"github.com/GKleim/wiki/internal/cache"
	"github.com/GKleim/wiki/internal/config"
	"github.com/GKleim/wiki/internal/db"
	"github.com/GKleim/wiki/internal/handler"
	"github.com/GKleim/wiki/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 未配置 redis 时使用进程内缓存
	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		store = cache.NewMemoryStore()
	}

	signer := auth.NewTokenSigner(cfg.SessionSecret)
	api := handler.NewAPI(db.DB, store, signer)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, "web/template/*.html")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
