package model

// Admin 管理员表 — 对应 admin
// 管理员账号线下开通，系统内不提供注册入口
type Admin struct {
	AdminID      int    `gorm:"column:admin_id;primaryKey;autoIncrement"        json:"admin_id"`
	Name         string `gorm:"type:varchar(100);not null"                      json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique"               json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
}

// TableName 指定表名
func (Admin) TableName() string { return "admin" }
