package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// DashboardHandler 学生仪表盘 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// TodayMeal 今日餐食
// GET /dashboard/student/today-meal
func (h *DashboardHandler) TodayMeal(c *gin.Context) {
	items, err := h.dashboardSvc.TodayMeal(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// TotalMeals 当月订餐总量
// GET /dashboard/student/total-meals
func (h *DashboardHandler) TotalMeals(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.TotalMeals(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// OutstandingDues 未结清金额
// GET /dashboard/student/outstanding-dues
func (h *DashboardHandler) OutstandingDues(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.OutstandingDues(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// MealSchedule 餐食排期
// GET /dashboard/student/schedule
func (h *DashboardHandler) MealSchedule(c *gin.Context) {
	items, err := h.dashboardSvc.MealSchedule(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Notices 公告列表
// GET /dashboard/student/notifications
func (h *DashboardHandler) Notices(c *gin.Context) {
	items, err := h.dashboardSvc.Notices(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// MealHistory 订餐记录
// GET /dashboard/student/meal-history
func (h *DashboardHandler) MealHistory(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	items, err := h.dashboardSvc.MealHistory(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Billing 账单明细
// GET /dashboard/student/billing
func (h *DashboardHandler) Billing(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	items, err := h.dashboardSvc.Billing(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Profile 学生档案
// GET /dashboard/student/profile
func (h *DashboardHandler) Profile(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.Profile(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11002, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// HighestMealTaker 当月用餐最多的学生
// GET /dashboard/highest-meal-taker
func (h *DashboardHandler) HighestMealTaker(c *gin.Context) {
	result, err := h.dashboardSvc.HighestMealTaker(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoMealData) {
			response.NotFound(c, 11004, "本月暂无订餐数据")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// StudentName 页头展示用学生姓名
// GET /dashboard/header/student-name
func (h *DashboardHandler) StudentName(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.StudentName(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11002, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
