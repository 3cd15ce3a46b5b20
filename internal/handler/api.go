package handler

import (
	"bytes"
	"html/template"

	"github.com/GKleim/wiki/internal/auth"
	"github.com/GKleim/wiki/internal/cache"
	"github.com/GKleim/wiki/internal/service"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	users   *service.UserService
	entries *service.EntryService
	wiki    *service.WikiService
	signer  *auth.TokenSigner
}

// NewAPI constructs a handler set with shared services.
// 密钥与缓存后端由启动代码显式传入，进程内不设全局状态。
func NewAPI(gdb *gorm.DB, store cache.Store, signer *auth.TokenSigner) *API {
	return &API{
		db:      gdb,
		users:   service.NewUserService(gdb),
		entries: service.NewEntryService(gdb, store),
		wiki:    service.NewWikiService(gdb),
		signer:  signer,
	}
}

// renderMarkdown 将正文渲染为消毒后的 HTML 片段。
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
