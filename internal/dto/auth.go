package dto

// ── 认证模块 DTO ──

// RegisterStudentRequest 学生注册请求
// 密码长度下限在 Service 层校验，以便返回独立的错误消息
type RegisterStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Name      string `json:"name"       binding:"required"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required"`
}

// SignInRequest 登录请求
type SignInRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 登录响应中的用户信息（脱敏）
type UserInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StudentID string `json:"student_id,omitempty"`
	IsManager *bool  `json:"is_manager,omitempty"` // 仅学生账号返回
}

// SignInResponse 登录成功响应
type SignInResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
