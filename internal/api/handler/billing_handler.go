package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// BillingHandler 账单模块 HTTP 处理器
type BillingHandler struct {
	billingSvc service.BillingService
}

// NewBillingHandler 创建 BillingHandler
func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

// CurrentMonth 当月账单汇总
// GET /billing/current-month
func (h *BillingHandler) CurrentMonth(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.billingSvc.CurrentMonth(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
