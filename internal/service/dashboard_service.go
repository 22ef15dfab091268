package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// ErrNoMealData 当月无订餐数据
var ErrNoMealData = errors.New("本月暂无订餐数据")

// DashboardService 学生仪表盘业务接口
// 所有身份相关查询以 token 中注入的 student_id 为准
type DashboardService interface {
	TodayMeal(ctx context.Context) ([]dto.TodayMealItem, error)
	TotalMeals(ctx context.Context, studentID string) (*dto.TotalMealsResponse, error)
	OutstandingDues(ctx context.Context, studentID string) (*dto.OutstandingDuesResponse, error)
	MealSchedule(ctx context.Context) ([]dto.ScheduleItem, error)
	Notices(ctx context.Context) ([]dto.DashboardNoticeItem, error)
	MealHistory(ctx context.Context, studentID string) ([]dto.DashboardHistoryItem, error)
	Billing(ctx context.Context, studentID string) ([]dto.BillingLineItem, error)
	Profile(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error)
	// HighestMealTaker 当月订餐份数最多的学生；平局按消费金额取高者
	HighestMealTaker(ctx context.Context) (*dto.TopConsumerResponse, error)
	StudentName(ctx context.Context, studentID string) (*dto.StudentNameResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) TodayMeal(ctx context.Context) ([]dto.TodayMealItem, error) {
	meals, err := s.repo.Meal.ListByDate(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询今日餐食失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.TodayMealItem, 0, len(meals))
	for _, m := range meals {
		items = append(items, dto.TodayMealItem{
			Description: m.Description,
			MealType:    m.MealType,
			Price:       m.Price,
		})
	}
	return items, nil
}

func (s *dashboardService) TotalMeals(ctx context.Context, studentID string) (*dto.TotalMealsResponse, error) {
	now := time.Now()
	total, err := s.repo.Booking.TotalForMonth(ctx, studentID, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error("查询当月订餐总量失败", zap.Error(err))
		return nil, err
	}
	return &dto.TotalMealsResponse{TotalMeals: total}, nil
}

func (s *dashboardService) OutstandingDues(ctx context.Context, studentID string) (*dto.OutstandingDuesResponse, error) {
	dues, err := s.repo.Booking.OutstandingDues(ctx, studentID, time.Now())
	if err != nil {
		s.logger.Error("查询未结清金额失败", zap.Error(err))
		return nil, err
	}
	return &dto.OutstandingDuesResponse{OutstandingDues: dues}, nil
}

func (s *dashboardService) MealSchedule(ctx context.Context) ([]dto.ScheduleItem, error) {
	meals, err := s.repo.Meal.ListFrom(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询餐食排期失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ScheduleItem, 0, len(meals))
	for _, m := range meals {
		items = append(items, dto.ScheduleItem{
			MealID:      m.MealID,
			Date:        m.Date,
			MealType:    m.MealType,
			Description: m.Description,
			Price:       m.Price,
		})
	}
	return items, nil
}

func (s *dashboardService) Notices(ctx context.Context) ([]dto.DashboardNoticeItem, error) {
	notices, err := s.repo.Notice.List(ctx)
	if err != nil {
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.DashboardNoticeItem, 0, len(notices))
	for _, n := range notices {
		items = append(items, dto.DashboardNoticeItem{
			Subject: n.Subject,
			Message: n.Message,
			Date:    n.Date,
		})
	}
	return items, nil
}

func (s *dashboardService) MealHistory(ctx context.Context, studentID string) ([]dto.DashboardHistoryItem, error) {
	rows, err := s.repo.Booking.ListWithMeal(ctx, studentID)
	if err != nil {
		s.logger.Error("查询订餐记录失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.DashboardHistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DashboardHistoryItem{
			MealType:   r.MealType,
			Date:       r.Date,
			Quantities: r.Quantities,
			Price:      r.Price,
		})
	}
	return items, nil
}

func (s *dashboardService) Billing(ctx context.Context, studentID string) ([]dto.BillingLineItem, error) {
	lines, err := s.repo.Booking.BillingLines(ctx, studentID)
	if err != nil {
		s.logger.Error("查询账单明细失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.BillingLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.BillingLineItem{
			Description: l.Description,
			Price:       l.Price,
			Quantities:  l.Quantities,
			TotalCost:   l.TotalCost,
		})
	}
	return items, nil
}

func (s *dashboardService) Profile(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询学生档案失败", zap.Error(err))
		return nil, err
	}

	return &dto.StudentProfileResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}

func (s *dashboardService) HighestMealTaker(ctx context.Context) (*dto.TopConsumerResponse, error) {
	now := time.Now()
	top, err := s.repo.Booking.TopConsumer(ctx, now.Year(), int(now.Month()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMealData
		}
		s.logger.Error("查询当月用餐之王失败", zap.Error(err))
		return nil, err
	}

	return &dto.TopConsumerResponse{
		Name:       top.Name,
		TotalMeals: top.TotalMeals,
	}, nil
}

func (s *dashboardService) StudentName(ctx context.Context, studentID string) (*dto.StudentNameResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询学生姓名失败", zap.Error(err))
		return nil, err
	}
	return &dto.StudentNameResponse{Name: student.Name}, nil
}
