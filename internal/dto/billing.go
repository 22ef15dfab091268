package dto

import "time"

// ── 账单与历史模块 DTO ──

// MonthlyBillingResponse 当月账单汇总
type MonthlyBillingResponse struct {
	MealsTaken  int     `json:"meals_taken"`
	CostPerMeal float64 `json:"cost_per_meal"`
	TotalAmount float64 `json:"total_amount"`
}

// MealHistoryEntry 订餐历史条目
// Status: 数量大于 0 记为 Taken，否则 Skipped
type MealHistoryEntry struct {
	ID     int       `json:"id"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Cost   float64   `json:"cost"`
	Status string    `json:"status"`
}
