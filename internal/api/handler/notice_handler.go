package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// NoticeHandler 公告模块 HTTP 处理器
type NoticeHandler struct {
	noticeSvc service.NoticeService
}

// NewNoticeHandler 创建 NoticeHandler
func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

// List 公告列表
// GET /notice
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.noticeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notices)
}
