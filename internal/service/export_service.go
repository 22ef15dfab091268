package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSales    = errors.New("本月暂无销售数据")
	ErrExportNoSchedule = errors.New("暂无可导出的餐食排期")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 销售报表导出为 Excel (.xlsx)，面向管理端
//   - 餐食排期导出为 iCalendar (.ics)，面向学生端
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// SalesReport 导出当月销售报表（单品销量 + 周/月销售总额）
	SalesReport(ctx context.Context) (*bytes.Buffer, string, error)
	// ScheduleICS 导出今日起的餐食排期为 iCalendar
	ScheduleICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) SalesReport(ctx context.Context) (*bytes.Buffer, string, error) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	overview, err := s.repo.Booking.MealOverview(ctx, year, month)
	if err != nil {
		s.logger.Error("查询单品销量失败", zap.Error(err))
		return nil, "", err
	}
	if len(overview) == 0 {
		return nil, "", ErrExportNoSales
	}

	weekly, err := s.repo.Booking.SalesSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		s.logger.Error("查询周销售额失败", zap.Error(err))
		return nil, "", err
	}
	monthly, err := s.repo.Booking.SalesForMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("查询月销售额失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	// 表头
	f.SetCellValue(sheet, "A1", "餐食")
	f.SetCellValue(sheet, "B1", "销量")
	for i, row := range overview {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Description)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.TotalSold)
	}

	// 汇总区
	base := len(overview) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "近 7 天销售额")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base), weekly)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+1), "本月销售额")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+1), monthly)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("sales-report-%04d-%02d.xlsx", year, month)
	return buf, filename, nil
}

func (s *exportService) ScheduleICS(ctx context.Context) (*bytes.Buffer, string, error) {
	meals, err := s.repo.Meal.ListFrom(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询餐食排期失败", zap.Error(err))
		return nil, "", err
	}
	if len(meals) == 0 {
		return nil, "", ErrExportNoSchedule
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Hall-E-Meal//Schedule//EN")

	for _, m := range meals {
		event := cal.AddEvent(fmt.Sprintf("meal-%d@hall-e-meal", m.MealID))
		event.SetSummary(fmt.Sprintf("%s: %s", m.MealType, m.Description))
		event.SetDescription(fmt.Sprintf("价格 %.2f", m.Price))
		event.SetAllDayStartAt(m.Date)
		event.SetAllDayEndAt(m.Date.AddDate(0, 0, 1))
		event.SetDtStampTime(time.Now())
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "meal-schedule.ics", nil
}
