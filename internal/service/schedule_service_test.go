package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

func TestBookMeal(t *testing.T) {
	repo, _, _, _, bookingRepo, _, _ := newMockRepository()
	svc := NewScheduleService(repo, zap.NewNop())

	result, err := svc.BookMeal(context.Background(), "S1", &dto.BookMealRequest{
		MealID:     7,
		Quantities: 2,
	})
	if err != nil {
		t.Fatalf("订餐应成功, got %v", err)
	}
	if result.BookingID != 1 {
		t.Errorf("booking_id = %d, want 1", result.BookingID)
	}

	if len(bookingRepo.bookings) != 1 {
		t.Fatalf("len(bookings) = %d, want 1", len(bookingRepo.bookings))
	}
	stored := bookingRepo.bookings[0]
	if stored.StudentID != "S1" || stored.MealID != 7 || stored.Quantities != 2 {
		t.Errorf("订餐记录字段不符: %+v", stored)
	}
	// 订餐日期取当天
	if stored.Date.Format("2006-01-02") != time.Now().Format("2006-01-02") {
		t.Errorf("订餐日期 = %v, 应为今日", stored.Date)
	}
}

func TestNextDaySchedule(t *testing.T) {
	repo, _, _, mealRepo, _, _, _ := newMockRepository()
	svc := NewScheduleService(repo, zap.NewNop())

	mealRepo.meals = []model.Meal{
		{MealID: 1, Date: time.Now(), MealType: "Lunch", Description: "Beef curry", Price: 60},
		{MealID: 2, Date: time.Now().AddDate(0, 0, 3), MealType: "Dinner", Description: "Fish", Price: 70},
	}

	items, err := svc.NextDaySchedule(context.Background())
	if err != nil {
		t.Fatalf("查询排期应成功, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].MealID != 1 || items[0].Description != "Beef curry" {
		t.Errorf("排期条目不符: %+v", items[0])
	}
}
