package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

func TestSalesReport(t *testing.T) {
	repo, _, _, _, bookingRepo, _, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	bookingRepo.overview = []repository.MealSales{
		{Description: "Beef curry", TotalSold: 30},
		{Description: "Fish", TotalSold: 12},
	}
	bookingRepo.salesWeekly = 900
	bookingRepo.salesMonthly = 3600

	buf, filename, err := svc.SalesReport(context.Background())
	if err != nil {
		t.Fatalf("导出应成功, got %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名 = %q, 应以 .xlsx 结尾", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件无法被 excelize 读取: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Sales", "A2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if got != "Beef curry" {
		t.Errorf("A2 = %q, want Beef curry", got)
	}
}

func TestSalesReportNoData(t *testing.T) {
	repo, _, _, _, _, _, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	if _, _, err := svc.SalesReport(context.Background()); !errors.Is(err, ErrExportNoSales) {
		t.Errorf("无销售数据应返回 ErrExportNoSales, got %v", err)
	}
}

func TestScheduleICS(t *testing.T) {
	repo, _, _, mealRepo, _, _, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	mealRepo.meals = []model.Meal{
		{MealID: 1, Date: time.Now().AddDate(0, 0, 1), MealType: "Lunch", Description: "Beef curry", Price: 60},
	}

	buf, filename, err := svc.ScheduleICS(context.Background())
	if err != nil {
		t.Fatalf("导出应成功, got %v", err)
	}
	if filename != "meal-schedule.ics" {
		t.Errorf("文件名 = %q", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("输出不是合法的 iCalendar 结构")
	}
	if !strings.Contains(out, "Beef curry") {
		t.Error("事件摘要缺少餐食描述")
	}
}

func TestScheduleICSNoData(t *testing.T) {
	repo, _, _, _, _, _, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	if _, _, err := svc.ScheduleICS(context.Background()); !errors.Is(err, ErrExportNoSchedule) {
		t.Errorf("无排期应返回 ErrExportNoSchedule, got %v", err)
	}
}
