package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// AdminHandler 管理端 HTTP 处理器
type AdminHandler struct {
	adminSvc  service.AdminService
	exportSvc service.ExportService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(adminSvc service.AdminService, exportSvc service.ExportService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, exportSvc: exportSvc}
}

// TodayMeals 今日餐食（含创建者）
// GET /admin/today-meals
func (h *AdminHandler) TodayMeals(c *gin.Context) {
	items, err := h.adminSvc.TodayMeals(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// HighestMealTaker 当月用餐最多的学生
// GET /admin/highest-meal-taker
func (h *AdminHandler) HighestMealTaker(c *gin.Context) {
	result, err := h.adminSvc.HighestMealTaker(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// HighestBillPayer 当月消费金额最高的学生
// GET /admin/highest-bill-payer
func (h *AdminHandler) HighestBillPayer(c *gin.Context) {
	result, err := h.adminSvc.HighestBillPayer(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// AverageMealPrice 当月餐食均价
// GET /admin/average-meal-price
func (h *AdminHandler) AverageMealPrice(c *gin.Context) {
	result, err := h.adminSvc.AverageMealPrice(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CurrentManagers 在任膳食管理员列表
// GET /admin/current-managers
func (h *AdminHandler) CurrentManagers(c *gin.Context) {
	items, err := h.adminSvc.CurrentManagers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// AddManager 任命膳食管理员
// POST /admin/add-manager
func (h *AdminHandler) AddManager(c *gin.Context) {
	var req dto.AddManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "所有字段均为必填")
		return
	}

	if err := h.adminSvc.AddManager(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "日期格式无效，应为 2006-01-02")
		case errors.Is(err, service.ErrDuplicateManager):
			response.Conflict(c, 11003, "该管理员编号已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "管理员任命成功")
}

// RemoveManager 移除膳食管理员
// DELETE /admin/remove-manager/:manager_id
func (h *AdminHandler) RemoveManager(c *gin.Context) {
	managerID, err := strconv.Atoi(c.Param("manager_id"))
	if err != nil {
		response.BadRequest(c, 10001, "管理员编号无效")
		return
	}

	if err := h.adminSvc.RemoveManager(c.Request.Context(), managerID); err != nil {
		if errors.Is(err, service.ErrManagerNotFound) {
			response.NotFound(c, 11002, "膳食管理员不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "管理员移除成功")
}

// MealOverview 当月单品销量
// GET /admin/meal-overview
func (h *AdminHandler) MealOverview(c *gin.Context) {
	items, err := h.adminSvc.MealOverview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// SalesOverview 周/月销售总额
// GET /admin/sales-overview
func (h *AdminHandler) SalesOverview(c *gin.Context) {
	items, err := h.adminSvc.SalesOverview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// GetProfile 管理员档案
// GET /admin/get-profile
func (h *AdminHandler) GetProfile(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	result, err := h.adminSvc.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.NotFound(c, 11002, "管理员不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateProfile 更新管理员档案
// PUT /admin/update-profile
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "姓名与邮箱均为必填")
		return
	}

	if err := h.adminSvc.UpdateProfile(c.Request.Context(), email, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			response.BadRequest(c, 10001, "密码长度不能少于 8 个字符")
		case errors.Is(err, service.ErrAdminNotFound):
			response.NotFound(c, 11002, "管理员不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "档案更新成功")
}

// ListStudents 学生列表
// GET /students
func (h *AdminHandler) ListStudents(c *gin.Context) {
	items, err := h.adminSvc.ListStudents(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// ExportSalesReport 导出当月销售报表
// GET /admin/sales-report/export
func (h *AdminHandler) ExportSalesReport(c *gin.Context) {
	buf, filename, err := h.exportSvc.SalesReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoSales) {
			response.NotFound(c, 11004, "本月暂无销售数据")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
