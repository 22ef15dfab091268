package service

import (
	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
)

// Service 所有业务 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Dashboard DashboardService
	Schedule  ScheduleService
	Billing   BillingService
	History   HistoryService
	Profile   ProfileService
	Notice    NoticeService
	Admin     AdminService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, jwtMgr, logger),
		Dashboard: NewDashboardService(repo, logger),
		Schedule:  NewScheduleService(repo, logger),
		Billing:   NewBillingService(repo, logger),
		History:   NewHistoryService(repo, logger),
		Profile:   NewProfileService(repo, logger),
		Notice:    NewNoticeService(repo, logger),
		Admin:     NewAdminService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}
