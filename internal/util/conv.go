package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MustParseUint 将路径参数转换为无符号整数，解析失败时返回 0。
// 0 不是合法主键，后续查询会以"未找到"收场
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePagination 读取 page/limit 查询参数并夹取到安全范围，
// 防止负数页码或超大 limit 直接进入 SQL
func ParsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
