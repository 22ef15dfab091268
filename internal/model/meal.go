package model

import "time"

// Meal 餐食表 — 对应 meal
type Meal struct {
	MealID      int       `gorm:"column:meal_id;primaryKey;autoIncrement" json:"meal_id"`
	Date        time.Time `gorm:"type:date;not null"                      json:"date"`
	MealType    string    `gorm:"column:meal_type;type:varchar(50);not null" json:"meal_type"`
	Description string    `gorm:"type:text;not null"                      json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null"             json:"price"`
	ManagerID   *int      `gorm:"column:manager_id"                       json:"manager_id,omitempty"`
}

// TableName 指定表名
func (Meal) TableName() string { return "meal" }
