package model

import "time"

// Booking 订餐表 — 对应 booking
type Booking struct {
	BookingID  int       `gorm:"column:booking_id;primaryKey;autoIncrement" json:"booking_id"`
	Date       time.Time `gorm:"type:date;not null"                         json:"date"`
	Quantities int       `gorm:"not null"                                   json:"quantities"`
	StudentID  string    `gorm:"column:student_id;type:varchar(20);not null" json:"student_id"`
	MealID     int       `gorm:"column:meal_id;not null"                    json:"meal_id"`
}

// TableName 指定表名
func (Booking) TableName() string { return "booking" }
