package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/service"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

// mockAuthService 认证服务打桩
type mockAuthService struct {
	registerErr error
	signInResp  *dto.SignInResponse
	signInErr   error
}

func (m *mockAuthService) RegisterStudent(_ context.Context, _ *dto.RegisterStudentRequest) error {
	return m.registerErr
}

func (m *mockAuthService) SignIn(_ context.Context, _ *dto.SignInRequest) (*dto.SignInResponse, error) {
	return m.signInResp, m.signInErr
}

func newAuthTestRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/auth/register-student", h.RegisterStudent)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/dashboard/logout", h.Logout)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w, resp
}

func TestRegisterStudentHandler(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/register-student", gin.H{
		"student_id": "S1",
		"name":       "Ann",
		"email":      "ann@example.com",
		"password":   "secret-pass-123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Message != "账号创建成功" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegisterStudentHandlerMissingFields(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/register-student", gin.H{
		"student_id": "S1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp.Code != 10001 {
		t.Errorf("code = %d, want 10001", resp.Code)
	}
}

func TestRegisterStudentHandlerShortPassword(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{registerErr: service.ErrPasswordTooShort})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/register-student", gin.H{
		"student_id": "S1",
		"name":       "Ann",
		"email":      "ann@example.com",
		"password":   "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp.Message != "密码长度不能少于 8 个字符" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegisterStudentHandlerDuplicate(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{registerErr: service.ErrDuplicateStudent})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/register-student", gin.H{
		"student_id": "S1",
		"name":       "Ann",
		"email":      "ann@example.com",
		"password":   "secret-pass-123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if resp.Code != 11003 {
		t.Errorf("code = %d, want 11003", resp.Code)
	}
}

func TestSignInHandler(t *testing.T) {
	isManager := false
	r := newAuthTestRouter(&mockAuthService{
		signInResp: &dto.SignInResponse{
			Token: "fake-jwt-token",
			User: dto.UserInfo{
				Name:      "Ann",
				Email:     "ann@example.com",
				Role:      jwt.RoleStudent,
				StudentID: "S1",
				IsManager: &isManager,
			},
		},
	})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email":    "ann@example.com",
		"password": "secret-pass-123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data 类型不符: %T", resp.Data)
	}
	if data["token"] != "fake-jwt-token" {
		t.Errorf("token = %v", data["token"])
	}
	user, ok := data["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("user 类型不符: %T", data["user"])
	}
	if user["role"] != jwt.RoleStudent || user["student_id"] != "S1" {
		t.Errorf("user 字段不符: %+v", user)
	}
}

func TestSignInHandlerWrongPassword(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{signInErr: service.ErrInvalidCredentials})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email":    "ann@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if resp.Code != 11001 {
		t.Errorf("code = %d, want 11001", resp.Code)
	}
}

func TestSignInHandlerUserNotFound(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{signInErr: service.ErrUserNotFound})

	w, resp := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever-pass",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp.Code != 11002 {
		t.Errorf("code = %d, want 11002", resp.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	r := newAuthTestRouter(&mockAuthService{})

	w, resp := doJSON(t, r, http.MethodPost, "/dashboard/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Message != "登出成功，请清除本地会话数据" {
		t.Errorf("message = %q", resp.Message)
	}
}
