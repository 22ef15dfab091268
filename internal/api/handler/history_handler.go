package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// HistoryHandler 订餐历史 HTTP 处理器
type HistoryHandler struct {
	historySvc service.HistoryService
}

// NewHistoryHandler 创建 HistoryHandler
func NewHistoryHandler(historySvc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historySvc: historySvc}
}

// MealHistory 订餐历史（含 Taken/Skipped 状态）
// GET /history/meal-history
func (h *HistoryHandler) MealHistory(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	entries, err := h.historySvc.MealHistory(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}
