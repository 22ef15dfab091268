package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/api/middleware"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// MustGetStudentID 从 Gin 上下文中安全提取 student_id。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetStudentID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxStudentID)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetEmail 从 Gin 上下文中安全提取 email。
func MustGetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxEmail)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}
