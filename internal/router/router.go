package router

import (
	"github.com/GKleim/wiki/internal/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 加载模板
	r.LoadHTMLGlob(templateGlob)

	// wiki 首页
	r.GET("/", api.Home)
	r.GET("/home", api.Home)

	// 账号相关路由
	r.GET("/signup", api.ShowSignup)
	r.POST("/signup", api.Signup)
	r.GET("/login", api.ShowLogin)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)
	r.GET("/welcome", api.Welcome)

	// 博客路由；列表与详情带 .json 变体
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog.json", api.ShowBlogJSON)
	r.GET("/blog/:id", api.ShowEntry)

	newpost := r.Group("/blog/newpost")
	newpost.Use(api.AuthRequired())
	{
		newpost.GET("", api.ShowNewPost)
		newpost.POST("", api.CreatePost)
	}

	// 管理入口：清空缓存
	r.GET("/flush", api.Flush)

	// wiki 路由；编辑需要登录
	r.GET("/wiki/:tag", api.ShowWikiPage)
	r.GET("/history/:tag", api.ShowHistory)

	edit := r.Group("/edit")
	edit.Use(api.AuthRequired())
	{
		edit.GET("/:tag", api.ShowEditPage)
		edit.POST("/:tag", api.SaveWikiPage)
	}

	return r
}
