package dto

import "time"

// ── 管理端模块 DTO ──

// AdminTodayMealItem 今日餐食条目（含创建者）
type AdminTodayMealItem struct {
	MealType    string  `json:"meal_type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatorName string  `json:"creator_name"`
}

// TopPayerResponse 当月消费金额最高的学生
type TopPayerResponse struct {
	Name      string  `json:"name"`
	TotalBill float64 `json:"total_bill"`
}

// AveragePriceResponse 当月餐食均价
type AveragePriceResponse struct {
	AveragePrice float64 `json:"average_price"`
}

// ManagerItem 在任膳食管理员条目
type ManagerItem struct {
	ManagerID       int       `json:"manager_id"`
	StudentID       string    `json:"student_id"`
	Name            string    `json:"name"`
	AppointmentDate time.Time `json:"appointment_date"`
	RetirementDate  time.Time `json:"retirement_date"`
}

// AddManagerRequest 任命膳食管理员请求
// 日期格式 2006-01-02
type AddManagerRequest struct {
	ManagerID       int    `json:"manager_id"       binding:"required"`
	StudentID       string `json:"student_id"       binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	RetirementDate  string `json:"retirement_date"  binding:"required"`
}

// MealOverviewItem 单品销量条目
type MealOverviewItem struct {
	Description string `json:"description"`
	TotalSold   int    `json:"total_sold"`
}

// SalesPeriodItem 销售汇总条目（weekly / monthly）
type SalesPeriodItem struct {
	Period    string  `json:"period"`
	TotalSale float64 `json:"total_sale"`
}

// AdminProfileResponse 管理员档案响应
type AdminProfileResponse struct {
	AdminID int    `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// UpdateAdminProfileRequest 管理员档案更新请求
type UpdateAdminProfileRequest struct {
	Name     string `json:"name"  binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// StudentListItem 学生列表条目
type StudentListItem struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
