package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/GKleim/wiki/internal/db"
	"github.com/GKleim/wiki/internal/service"
	"github.com/gin-gonic/gin"
)

type entryView struct {
	ID       uint
	Subject  string
	Body     template.HTML
	Created  string
	Modified string
}

func newEntryView(post *db.Post) entryView {
	return entryView{
		ID:       post.ID,
		Subject:  post.Subject,
		Body:     renderMarkdown(post.Content),
		Created:  post.CreatedAt.Format("2006-01-02 15:04"),
		Modified: post.UpdatedAt.Format("2006-01-02 15:04"),
	}
}

// ShowBlog 渲染最近文章列表，列表来自旁路缓存。
// 路径以 .json 结尾时输出 JSON。
func (a *API) ShowBlog(c *gin.Context) {
	a.renderBlogList(c, false)
}

// ShowBlogJSON 输出最近文章列表的 JSON 形式。
func (a *API) ShowBlogJSON(c *gin.Context) {
	a.renderBlogList(c, true)
}

func (a *API) renderBlogList(c *gin.Context, wantsJSON bool) {
	posts, refreshedAt, err := a.entries.Recent(c.Request.Context(), false)
	if err != nil {
		if wantsJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entries"})
			return
		}
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	if wantsJSON {
		dicts := make([]map[string]interface{}, 0, len(posts))
		for i := range posts {
			dicts = append(dicts, posts[i].AsDict())
		}
		c.JSON(http.StatusOK, dicts)
		return
	}

	views := make([]entryView, 0, len(posts))
	for i := range posts {
		views = append(views, newEntryView(&posts[i]))
	}

	c.HTML(http.StatusOK, "front.html", gin.H{
		"title":      "Blog",
		"entries":    views,
		"last_query": sinceRefresh(refreshedAt),
		"login_name": a.loginName(c),
	})
}

// ShowEntry 渲染单篇文章（permalink），同样走旁路缓存。
func (a *API) ShowEntry(c *gin.Context) {
	id, wantsJSON, err := parseUintParam(c, "id")
	if err != nil {
		c.String(http.StatusNotFound, "Sorry, Nothing at this URL.")
		return
	}

	post, refreshedAt, err := a.entries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.String(http.StatusNotFound, "Sorry, Nothing at this URL.")
			return
		}
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	if wantsJSON {
		c.JSON(http.StatusOK, post.AsDict())
		return
	}

	c.HTML(http.StatusOK, "permalink.html", gin.H{
		"title":      post.Subject,
		"entry":      newEntryView(post),
		"last_query": sinceRefresh(refreshedAt),
		"login_name": a.loginName(c),
	})
}

// ShowNewPost 渲染发帖表单
func (a *API) ShowNewPost(c *gin.Context) {
	c.HTML(http.StatusOK, "newpost.html", gin.H{
		"title":      "New Post",
		"login_name": a.loginName(c),
	})
}

// CreatePost 处理发帖：两个字段都必填，成功后跳转到新文章。
// 写入成功会强制刷新最近列表缓存。
func (a *API) CreatePost(c *gin.Context) {
	subject := c.PostForm("subject")
	content := c.PostForm("content")

	if subject == "" || content == "" {
		c.HTML(http.StatusOK, "newpost.html", gin.H{
			"title":      "New Post",
			"subject":    subject,
			"content":    content,
			"error":      "we need both a subject and content!",
			"login_name": a.loginName(c),
		})
		return
	}

	post, err := a.entries.Create(c.Request.Context(), subject, content)
	if err != nil {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/blog/%d", post.ID))
}

// Flush 无条件清空缓存后跳转到注册页。
func (a *API) Flush(c *gin.Context) {
	if err := a.entries.Flush(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}
	c.Redirect(http.StatusFound, "/signup")
}
