package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pretom95/Hall-E-Meal-backend/config"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/response"
)

func newTestManager(ttl time.Duration) *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key",
		TokenTTL:  ttl,
	})
}

// newAuthTestRouter 同一引擎上挂载学生路由与管理员路由
func newAuthTestRouter(jwtMgr *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/dashboard")
	protected.Use(JWTAuth(jwtMgr))
	protected.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"student_id": c.GetString(CtxStudentID),
			"role":       c.GetString(CtxRole),
		})
	})

	admin := r.Group("/admin")
	admin.Use(AdminAuth(jwtMgr))
	admin.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"email": c.GetString(CtxEmail)})
	})

	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := newAuthTestRouter(newTestManager(time.Hour))

	w := doGet(r, "/dashboard/ping", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Code != 10002 {
		t.Errorf("code = %d, want 10002", resp.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	r := newAuthTestRouter(newTestManager(time.Hour))

	w := doGet(r, "/dashboard/ping", "not-a-valid-token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	other := jwt.NewManager(&config.AuthConfig{
		JWTSecret: "another-secret",
		TokenTTL:  time.Hour,
	})
	token, err := other.GenerateStudentToken("ann@example.com", "Ann", "S1", false)
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(newTestManager(time.Hour))
	w := doGet(r, "/dashboard/ping", token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	mgr := newTestManager(-time.Minute) // 签发即过期
	token, err := mgr.GenerateStudentToken("ann@example.com", "Ann", "S1", false)
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(newTestManager(time.Hour))
	w := doGet(r, "/dashboard/ping", token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("过期 token status = %d, want 403", w.Code)
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	mgr := newTestManager(time.Hour)
	token, err := mgr.GenerateStudentToken("ann@example.com", "Ann", "S1", false)
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(mgr)
	w := doGet(r, "/dashboard/ping", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if data["student_id"] != "S1" || data["role"] != jwt.RoleStudent {
		t.Errorf("注入的声明不符: %+v", data)
	}
}

func TestAdminAuthRejectsStudentToken(t *testing.T) {
	mgr := newTestManager(time.Hour)
	token, err := mgr.GenerateStudentToken("ann@example.com", "Ann", "S1", false)
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(mgr)
	w := doGet(r, "/admin/ping", token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("学生 token 访问管理端 status = %d, want 403", w.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Code != 10003 {
		t.Errorf("code = %d, want 10003", resp.Code)
	}
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	mgr := newTestManager(time.Hour)
	token, err := mgr.GenerateAdminToken("boss@example.com", "Boss")
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(mgr)
	w := doGet(r, "/admin/ping", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
}

// 管理员 token 同样可以访问学生端路由
func TestJWTAuthAcceptsAdminToken(t *testing.T) {
	mgr := newTestManager(time.Hour)
	token, err := mgr.GenerateAdminToken("boss@example.com", "Boss")
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}

	r := newAuthTestRouter(mgr)
	w := doGet(r, "/dashboard/ping", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
