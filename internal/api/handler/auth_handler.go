package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegisterStudent 学生注册
// POST /auth/register-student
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "所有字段均为必填")
		return
	}

	if err := h.authSvc.RegisterStudent(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			response.BadRequest(c, 10001, "密码长度不能少于 8 个字符")
		case errors.Is(err, service.ErrDuplicateStudent):
			response.Conflict(c, 11003, "学号或邮箱已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "账号创建成功")
}

// SignIn 登录，签发 1 小时有效期的 Bearer Token
// POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "邮箱和密码均为必填")
		return
	}

	result, err := h.authSvc.SignIn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// 不区分邮箱错误还是密码错误
			response.Unauthorized(c, 11001, "邮箱或密码错误")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11002, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 登出
// POST /dashboard/logout
// Token 无服务端状态，客户端清除本地会话即可
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OKMessage(c, "登出成功，请清除本地会话数据")
}
