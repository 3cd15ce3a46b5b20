package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/GKleim/wiki/internal/db"
	"github.com/GKleim/wiki/internal/service"
	"github.com/gin-gonic/gin"
)

const homePageLimit = 10

// Home 渲染 wiki 首页：最新创建与最近更新的页面。
func (a *API) Home(c *gin.Context) {
	newest, err := a.wiki.NewestPages(homePageLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	updated, err := a.wiki.RecentlyUpdatedPages(homePageLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":         "Home",
		"newest_pages":  newest,
		"updated_pages": updated,
		"login_name":    a.loginName(c),
	})
}

// ShowWikiPage 渲染 wiki 页面的当前内容或 ?v= 指定的历史修订。
// 页面不存在时跳转到编辑页，由用户创建。
func (a *API) ShowWikiPage(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	page, err := a.wiki.PageByTag(tag)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%s", tag))
			return
		}
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	content, err := a.contentForVersion(c, page)
	if err != nil {
		c.String(http.StatusNotFound, "Sorry, Nothing at this URL.")
		return
	}

	c.HTML(http.StatusOK, "wikipage.html", gin.H{
		"title":      tag,
		"page_tag":   tag,
		"content":    renderMarkdown(content.Body),
		"login_name": a.loginName(c),
	})
}

// ShowEditPage 渲染编辑界面；页面不存在时给出创建提示文案。
func (a *API) ShowEditPage(c *gin.Context) {
	tag := c.Param("tag")

	body := "The requested page does not exist.\n" +
		"To create the page, enter in this text field and click \"save\"."

	page, err := a.wiki.PageByTag(tag)
	if err == nil {
		if content, cerr := a.contentForVersion(c, page); cerr == nil {
			body = content.Body
		}
	} else if !errors.Is(err, service.ErrPageNotFound) {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	c.HTML(http.StatusOK, "editpage.html", gin.H{
		"title":      fmt.Sprintf("edit | %s", tag),
		"page_tag":   tag,
		"content":    body,
		"login_name": a.loginName(c),
	})
}

// SaveWikiPage 保存一次编辑：首次保存创建页面槽位，之后追加修订。
func (a *API) SaveWikiPage(c *gin.Context) {
	tag := c.Param("tag")
	body := c.PostForm("content")

	user := a.currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := a.wiki.Save(tag, body, user.Username); err != nil {
		if errors.Is(err, service.ErrContentRequired) {
			c.HTML(http.StatusOK, "editpage.html", gin.H{
				"title":      fmt.Sprintf("edit | %s", tag),
				"page_tag":   tag,
				"content":    body,
				"error":      "content is required",
				"login_name": user.Username,
			})
			return
		}
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/wiki/%s", tag))
}

// ShowHistory 渲染页面最近的修订历史。
func (a *API) ShowHistory(c *gin.Context) {
	tag := c.Param("tag")

	page, err := a.wiki.PageByTag(tag)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%s", tag))
			return
		}
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	history, err := a.wiki.History(page)
	if err != nil {
		c.String(http.StatusInternalServerError, "Sorry, unexpected error.")
		return
	}

	type revisionView struct {
		Version int
		Author  string
		Created string
		Preview string
	}

	views := make([]revisionView, 0, len(history))
	for i := range history {
		preview := history[i].Body
		if runes := []rune(preview); len(runes) > 80 {
			preview = string(runes[:80]) + "…"
		}
		views = append(views, revisionView{
			Version: i,
			Author:  history[i].Author,
			Created: history[i].CreatedAt.Format("2006-01-02 15:04"),
			Preview: strings.ReplaceAll(preview, "\n", " "),
		})
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"title":      fmt.Sprintf("history | %s", tag),
		"page_tag":   tag,
		"history":    views,
		"login_name": a.loginName(c),
	})
}

// contentForVersion 根据 ?v= 参数选择修订，缺省为当前内容。
func (a *API) contentForVersion(c *gin.Context, page *db.Page) (*db.Content, error) {
	version := 0
	if raw := c.Query("v"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, service.ErrRevisionNotFound
		}
		version = parsed
	}
	return a.wiki.ContentAtVersion(page, version)
}
