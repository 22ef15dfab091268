package dto

import "time"

// ── 个人档案模块 DTO ──

// ProfileResponse 学生个人档案响应
// 仅返回可公开字段，密码散列永不出现在响应中
type ProfileResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest 学生档案更新请求
// 提供 password 时必须与 confirm_password 一致，且长度不少于 8
type UpdateProfileRequest struct {
	Name            string `json:"name"  binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
