package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// HistoryService 订餐历史业务接口
type HistoryService interface {
	MealHistory(ctx context.Context, studentID string) ([]dto.MealHistoryEntry, error)
}

type historyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHistoryService 创建 HistoryService 实例
func NewHistoryService(repo *repository.Repository, logger *zap.Logger) HistoryService {
	return &historyService{repo: repo, logger: logger}
}

func (s *historyService) MealHistory(ctx context.Context, studentID string) ([]dto.MealHistoryEntry, error) {
	rows, err := s.repo.Booking.ListWithMeal(ctx, studentID)
	if err != nil {
		s.logger.Error("查询订餐历史失败", zap.Error(err))
		return nil, err
	}

	entries := make([]dto.MealHistoryEntry, 0, len(rows))
	for _, r := range rows {
		status := "Skipped"
		if r.Quantities > 0 {
			status = "Taken"
		}
		entries = append(entries, dto.MealHistoryEntry{
			ID:     r.BookingID,
			Type:   r.MealType,
			Date:   r.Date,
			Cost:   float64(r.Quantities) * r.Price,
			Status: status,
		})
	}
	return entries, nil
}
