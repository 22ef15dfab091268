package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// ScheduleHandler 订餐模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
	exportSvc   service.ExportService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService, exportSvc service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, exportSvc: exportSvc}
}

// NextDaySchedule 次日餐食排期
// GET /schedule/next-day-schedule
func (h *ScheduleHandler) NextDaySchedule(c *gin.Context) {
	items, err := h.scheduleSvc.NextDaySchedule(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// BookMeal 订餐
// POST /schedule/book-meal
func (h *ScheduleHandler) BookMeal(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	var req dto.BookMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "餐食编号与份数均为必填")
		return
	}

	result, err := h.scheduleSvc.BookMeal(c.Request.Context(), studentID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ExportICS 导出餐食排期为 iCalendar
// GET /schedule/export-ics
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.exportSvc.ScheduleICS(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoSchedule) {
			response.NotFound(c, 11004, "暂无可导出的餐食排期")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
