package dto

// ── 订餐模块 DTO ──

// BookMealRequest 订餐请求
type BookMealRequest struct {
	MealID     int `json:"meal_id"    binding:"required"`
	Quantities int `json:"quantities" binding:"required,min=1"`
}

// BookMealResponse 订餐成功响应
type BookMealResponse struct {
	BookingID int `json:"booking_id"`
}

// NextDayMealItem 次日餐食条目
type NextDayMealItem struct {
	MealID      int     `json:"meal_id"`
	MealType    string  `json:"meal_type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
