package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// 注入 gin.Context 的声明键
const (
	CtxEmail     = "email"
	CtxName      = "name"
	CtxRole      = "role"
	CtxStudentID = "student_id"
	CtxIsManager = "is_manager"
)

// extractBearer 从 Authorization: Bearer <token> 中提取 token
func extractBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// injectClaims 将 token 声明写入请求上下文，下游 Handler 只读取注入值，
// 不再重新推导身份
func injectClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxName, claims.Name)
	c.Set(CtxRole, claims.Role)
	c.Set(CtxStudentID, claims.StudentID)
	c.Set(CtxIsManager, claims.IsManager)
}

// JWTAuth JWT 认证中间件
// 缺少认证头 → 401；token 无效或已过期 → 403（过期与篡改对外不做区分）
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Forbidden(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		injectClaims(c, claims)
		c.Next()
	}
}

// AdminAuth 管理员认证中间件
// 在 JWTAuth 的基础上额外要求 role=admin；角色不符 → 403
func AdminAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Forbidden(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			response.Forbidden(c, 10003, "需要管理员权限")
			c.Abort()
			return
		}

		injectClaims(c, claims)
		c.Next()
	}
}
