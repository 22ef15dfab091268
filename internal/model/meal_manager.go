package model

import "time"

// MealManager 膳食管理员任期表 — 对应 meal_manager
// 学生在 [AppointmentDate, RetirementDate] 区间内持有管理员资格
type MealManager struct {
	ManagerID       int       `gorm:"column:manager_id;primaryKey"                json:"manager_id"`
	StudentID       string    `gorm:"column:student_id;type:varchar(20);not null" json:"student_id"`
	AppointmentDate time.Time `gorm:"column:appointment_date;type:date;not null"  json:"appointment_date"`
	RetirementDate  time.Time `gorm:"column:retirement_date;type:date;not null"   json:"retirement_date"`
}

// TableName 指定表名
func (MealManager) TableName() string { return "meal_manager" }
