package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pretom95/Hall-E-Meal-backend/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

// 角色取值
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Claims 自定义 JWT 声明
// 管理员 token 不携带 student_id / is_manager
type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"` // "admin" | "student"
	StudentID string `json:"student_id,omitempty"`
	IsManager bool   `json:"is_manager,omitempty"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// GenerateAdminToken 为管理员签发 Token
func (m *Manager) GenerateAdminToken(email, name string) (string, error) {
	return m.sign(Claims{
		Email: email,
		Name:  name,
		Role:  RoleAdmin,
	})
}

// GenerateStudentToken 为学生签发 Token
// isManager 表示当前日期是否处于膳食管理员任期内
func (m *Manager) GenerateStudentToken(email, name, studentID string, isManager bool) (string, error) {
	return m.sign(Claims{
		Email:     email,
		Name:      name,
		Role:      RoleStudent,
		StudentID: studentID,
		IsManager: isManager,
	})
}

func (m *Manager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwtv5.RegisteredClaims{
		ID:        uuid.New().String(),
		IssuedAt:  jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
		Issuer:    "hall-e-meal",
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证 Token
// 过期与签名不合法在对外响应中不做区分，调用方统一按"无效或已过期"处理
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
