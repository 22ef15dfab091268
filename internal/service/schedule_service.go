package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// ScheduleService 订餐业务接口
type ScheduleService interface {
	NextDaySchedule(ctx context.Context) ([]dto.NextDayMealItem, error)
	// BookMeal 以当前日期为订餐日期创建订餐记录，返回新订单编号
	BookMeal(ctx context.Context, studentID string, req *dto.BookMealRequest) (*dto.BookMealResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) NextDaySchedule(ctx context.Context) ([]dto.NextDayMealItem, error) {
	meals, err := s.repo.Meal.ListByDate(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询次日排期失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.NextDayMealItem, 0, len(meals))
	for _, m := range meals {
		items = append(items, dto.NextDayMealItem{
			MealID:      m.MealID,
			MealType:    m.MealType,
			Description: m.Description,
			Price:       m.Price,
		})
	}
	return items, nil
}

func (s *scheduleService) BookMeal(ctx context.Context, studentID string, req *dto.BookMealRequest) (*dto.BookMealResponse, error) {
	booking := &model.Booking{
		Date:       time.Now(),
		Quantities: req.Quantities,
		StudentID:  studentID,
		MealID:     req.MealID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.logger.Error("创建订餐记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.BookMealResponse{BookingID: booking.BookingID}, nil
}
