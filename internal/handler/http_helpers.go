package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// splitJSONSuffix 去掉路径参数末尾的 ".json" 并报告是否存在。
// 列表与详情端点依赖它选择 JSON 或 HTML 输出。
func splitJSONSuffix(raw string) (string, bool) {
	if trimmed, ok := strings.CutSuffix(raw, ".json"); ok {
		return trimmed, true
	}
	return raw, false
}

func parseUintParam(c *gin.Context, key string) (uint, bool, error) {
	raw, wantsJSON := splitJSONSuffix(c.Param(key))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, wantsJSON, fmt.Errorf("invalid %s", key)
	}
	return uint(id), wantsJSON, nil
}

// sinceRefresh 生成"距上次查询"的展示文案。
func sinceRefresh(at time.Time) string {
	if at.IsZero() {
		return ""
	}
	elapsed := time.Since(at)
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("queried %ds ago", int(elapsed.Seconds()))
}
