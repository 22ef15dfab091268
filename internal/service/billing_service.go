package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// BillingService 账单业务接口
type BillingService interface {
	// CurrentMonth 当月账单汇总；无订餐记录时各项为 0
	CurrentMonth(ctx context.Context, studentID string) (*dto.MonthlyBillingResponse, error)
}

type billingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBillingService 创建 BillingService 实例
func NewBillingService(repo *repository.Repository, logger *zap.Logger) BillingService {
	return &billingService{repo: repo, logger: logger}
}

func (s *billingService) CurrentMonth(ctx context.Context, studentID string) (*dto.MonthlyBillingResponse, error) {
	now := time.Now()
	summary, err := s.repo.Booking.MonthlySummary(ctx, studentID, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error("查询当月账单失败", zap.Error(err))
		return nil, err
	}

	return &dto.MonthlyBillingResponse{
		MealsTaken:  summary.MealsTaken,
		CostPerMeal: summary.CostPerMeal,
		TotalAmount: summary.TotalAmount,
	}, nil
}
