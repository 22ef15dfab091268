package dto

import "time"

// ── 学生仪表盘模块 DTO ──

// TodayMealItem 今日餐食条目
type TodayMealItem struct {
	Description string  `json:"description"`
	MealType    string  `json:"meal_type"`
	Price       float64 `json:"price"`
}

// TotalMealsResponse 当月订餐总量
type TotalMealsResponse struct {
	TotalMeals int `json:"total_meals"`
}

// OutstandingDuesResponse 截至今日的未结清金额
type OutstandingDuesResponse struct {
	OutstandingDues float64 `json:"outstanding_dues"`
}

// ScheduleItem 餐食排期条目
type ScheduleItem struct {
	MealID      int       `json:"meal_id"`
	Date        time.Time `json:"date"`
	MealType    string    `json:"meal_type"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// DashboardNoticeItem 仪表盘公告条目
type DashboardNoticeItem struct {
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// DashboardHistoryItem 仪表盘订餐记录条目
type DashboardHistoryItem struct {
	MealType   string    `json:"meal_type"`
	Date       time.Time `json:"date"`
	Quantities int       `json:"quantities"`
	Price      float64   `json:"price"`
}

// BillingLineItem 账单明细条目
type BillingLineItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantities  int     `json:"quantities"`
	TotalCost   float64 `json:"total_cost"`
}

// StudentProfileResponse 仪表盘学生档案
type StudentProfileResponse struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TopConsumerResponse 当月用餐最多的学生
type TopConsumerResponse struct {
	Name       string `json:"name"`
	TotalMeals int    `json:"total_meals"`
}

// StudentNameResponse 页头展示用学生姓名
type StudentNameResponse struct {
	Name string `json:"name"`
}
