package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// ProfileHandler 学生个人档案 HTTP 处理器
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler 创建 ProfileHandler
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// GetProfile 查看个人档案
// GET /profile/get-profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.profileSvc.Get(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11002, "档案不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateProfile 更新个人档案
// PUT /profile/update-profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "姓名与邮箱均为必填")
		return
	}

	if err := h.profileSvc.Update(c.Request.Context(), studentID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			response.BadRequest(c, 10001, "两次输入的密码不一致")
		case errors.Is(err, service.ErrPasswordTooShort):
			response.BadRequest(c, 10001, "密码长度不能少于 8 个字符")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11002, "学生不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "档案更新成功")
}
