package model

import "time"

// Student 学生表 — 对应 student
type Student struct {
	StudentID    string    `gorm:"column:student_id;type:varchar(20);primaryKey"       json:"student_id"`
	Name         string    `gorm:"type:varchar(100);not null"                          json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;unique"                   json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"     json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                  json:"created_at"`
}

// TableName 指定表名
func (Student) TableName() string { return "student" }
