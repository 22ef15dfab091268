package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/config"
	"github.com/pretom95/Hall-E-Meal-backend/internal/api/handler"
	"github.com/pretom95/Hall-E-Meal-backend/internal/api/middleware"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 认证模块（无需认证） ──
	auth := r.Group("/auth")
	{
		auth.POST("/register-student", h.Auth.RegisterStudent)
		auth.POST("/signin", h.Auth.SignIn)
	}

	// ── 学生端（需学生或管理员 token） ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr))
	{
		dashboard := authorized.Group("/dashboard")
		{
			dashboard.GET("/student/today-meal", h.Dashboard.TodayMeal)
			dashboard.GET("/student/total-meals", h.Dashboard.TotalMeals)
			dashboard.GET("/student/outstanding-dues", h.Dashboard.OutstandingDues)
			dashboard.GET("/student/schedule", h.Dashboard.MealSchedule)
			dashboard.GET("/student/notifications", h.Dashboard.Notices)
			dashboard.GET("/student/meal-history", h.Dashboard.MealHistory)
			dashboard.GET("/student/billing", h.Dashboard.Billing)
			dashboard.GET("/student/profile", h.Dashboard.Profile)
			dashboard.GET("/highest-meal-taker", h.Dashboard.HighestMealTaker)
			dashboard.GET("/header/student-name", h.Dashboard.StudentName)
			dashboard.POST("/logout", h.Auth.Logout)
		}

		schedule := authorized.Group("/schedule")
		{
			schedule.GET("/next-day-schedule", h.Schedule.NextDaySchedule)
			schedule.POST("/book-meal", h.Schedule.BookMeal)
			schedule.GET("/export-ics", h.Schedule.ExportICS)
		}

		authorized.GET("/history/meal-history", h.History.MealHistory)
		authorized.GET("/billing/current-month", h.Billing.CurrentMonth)

		profile := authorized.Group("/profile")
		{
			profile.GET("/get-profile", h.Profile.GetProfile)
			profile.PUT("/update-profile", h.Profile.UpdateProfile)
		}

		authorized.GET("/notice", h.Notice.List)
	}

	// ── 管理端（需管理员 token） ──
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(jwtMgr))
	{
		admin.GET("/today-meals", h.Admin.TodayMeals)
		admin.GET("/highest-meal-taker", h.Admin.HighestMealTaker)
		admin.GET("/highest-bill-payer", h.Admin.HighestBillPayer)
		admin.GET("/average-meal-price", h.Admin.AverageMealPrice)
		admin.GET("/current-managers", h.Admin.CurrentManagers)
		admin.POST("/add-manager", h.Admin.AddManager)
		admin.DELETE("/remove-manager/:manager_id", h.Admin.RemoveManager)
		admin.GET("/meal-overview", h.Admin.MealOverview)
		admin.GET("/sales-overview", h.Admin.SalesOverview)
		admin.GET("/get-profile", h.Admin.GetProfile)
		admin.PUT("/update-profile", h.Admin.UpdateProfile)
		admin.GET("/sales-report/export", h.Admin.ExportSalesReport)
	}

	// 学生名册仅管理员可见
	students := r.Group("/students")
	students.Use(middleware.AdminAuth(jwtMgr))
	{
		students.GET("", h.Admin.ListStudents)
	}

	return r
}
