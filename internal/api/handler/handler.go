package handler

import "github.com/pretom95/Hall-E-Meal-backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Schedule  *ScheduleHandler
	Billing   *BillingHandler
	History   *HistoryHandler
	Profile   *ProfileHandler
	Notice    *NoticeHandler
	Admin     *AdminHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Schedule:  NewScheduleHandler(svc.Schedule, svc.Export),
		Billing:   NewBillingHandler(svc.Billing),
		History:   NewHistoryHandler(svc.History),
		Profile:   NewProfileHandler(svc.Profile),
		Notice:    NewNoticeHandler(svc.Notice),
		Admin:     NewAdminHandler(svc.Admin, svc.Export),
	}
}
