package jwt

import (
	"testing"
	"time"

	"github.com/pretom95/Hall-E-Meal-backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Hour,
	})
}

func TestGenerateAndParseStudentToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateStudentToken("ann@x.com", "Ann", "S1", true)
	if err != nil {
		t.Fatalf("GenerateStudentToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Email != "ann@x.com" {
		t.Errorf("期望 Email=ann@x.com，实际=%s", claims.Email)
	}
	if claims.Name != "Ann" {
		t.Errorf("期望 Name=Ann，实际=%s", claims.Name)
	}
	if claims.Role != RoleStudent {
		t.Errorf("期望 Role=student，实际=%s", claims.Role)
	}
	if claims.StudentID != "S1" {
		t.Errorf("期望 StudentID=S1，实际=%s", claims.StudentID)
	}
	if !claims.IsManager {
		t.Error("期望 IsManager=true")
	}
	if claims.Issuer != "hall-e-meal" {
		t.Errorf("期望 Issuer=hall-e-meal，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestGenerateAndParseAdminToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAdminToken("admin@x.com", "Boss")
	if err != nil {
		t.Fatalf("GenerateAdminToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Role != RoleAdmin {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if claims.StudentID != "" {
		t.Errorf("管理员 token 不应携带 student_id，实际=%s", claims.StudentID)
	}
	if claims.IsManager {
		t.Error("管理员 token 不应携带 is_manager=true")
	}

	// 检查过期时间约为 1h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Errorf("Token TTL 期望约 1h，实际=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("期望解析无效 token 返回错误")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret: "different-secret-key",
		TokenTTL:  time.Hour,
	})

	token, _ := m1.GenerateAdminToken("admin@x.com", "Boss")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("不同密钥签名的 token 不应通过验证")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// 创建一个 TTL 极短的 manager 来测试过期
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  1 * time.Millisecond,
	})

	token, _ := m.GenerateStudentToken("ann@x.com", "Ann", "S1", false)
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("过期 token 不应通过验证")
	}
	if err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}
