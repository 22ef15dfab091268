package model

import "time"

// Notice 公告表 — 对应 notice
type Notice struct {
	NoticeID int       `gorm:"column:notice_id;primaryKey;autoIncrement" json:"notice_id"`
	Type     string    `gorm:"type:varchar(50);not null;default:'general'" json:"type"`
	Subject  string    `gorm:"type:varchar(255);not null"                json:"subject"`
	Message  string    `gorm:"type:text;not null"                        json:"message"`
	Date     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"date"`
}

// TableName 指定表名
func (Notice) TableName() string { return "notice" }
