package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

var (
	ErrAdminNotFound    = errors.New("管理员不存在")
	ErrManagerNotFound  = errors.New("膳食管理员不存在")
	ErrDuplicateManager = errors.New("该管理员编号已存在")
	ErrInvalidDate      = errors.New("日期格式无效，应为 2006-01-02")
)

// AdminService 管理端业务接口
type AdminService interface {
	TodayMeals(ctx context.Context) ([]dto.AdminTodayMealItem, error)
	HighestMealTaker(ctx context.Context) (*dto.TopConsumerResponse, error)
	HighestBillPayer(ctx context.Context) (*dto.TopPayerResponse, error)
	AverageMealPrice(ctx context.Context) (*dto.AveragePriceResponse, error)
	CurrentManagers(ctx context.Context) ([]dto.ManagerItem, error)
	AddManager(ctx context.Context, req *dto.AddManagerRequest) error
	RemoveManager(ctx context.Context, managerID int) error
	MealOverview(ctx context.Context) ([]dto.MealOverviewItem, error)
	// SalesOverview 近 7 天与当月销售总额
	SalesOverview(ctx context.Context) ([]dto.SalesPeriodItem, error)
	Profile(ctx context.Context, email string) (*dto.AdminProfileResponse, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateAdminProfileRequest) error
	ListStudents(ctx context.Context) ([]dto.StudentListItem, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService 创建 AdminService 实例
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) TodayMeals(ctx context.Context) ([]dto.AdminTodayMealItem, error) {
	rows, err := s.repo.Meal.ListByDateWithCreator(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询今日餐食失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.AdminTodayMealItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.AdminTodayMealItem{
			MealType:    r.MealType,
			Description: r.Description,
			Price:       r.Price,
			CreatorName: r.CreatorName,
		})
	}
	return items, nil
}

func (s *adminService) HighestMealTaker(ctx context.Context) (*dto.TopConsumerResponse, error) {
	now := time.Now()
	top, err := s.repo.Booking.TopConsumer(ctx, now.Year(), int(now.Month()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.TopConsumerResponse{}, nil
		}
		s.logger.Error("查询当月用餐之王失败", zap.Error(err))
		return nil, err
	}
	return &dto.TopConsumerResponse{Name: top.Name, TotalMeals: top.TotalMeals}, nil
}

func (s *adminService) HighestBillPayer(ctx context.Context) (*dto.TopPayerResponse, error) {
	now := time.Now()
	top, err := s.repo.Booking.TopPayer(ctx, now.Year(), int(now.Month()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.TopPayerResponse{}, nil
		}
		s.logger.Error("查询当月消费之王失败", zap.Error(err))
		return nil, err
	}
	return &dto.TopPayerResponse{Name: top.Name, TotalBill: top.TotalBill}, nil
}

func (s *adminService) AverageMealPrice(ctx context.Context) (*dto.AveragePriceResponse, error) {
	now := time.Now()
	avg, err := s.repo.Meal.AveragePriceForMonth(ctx, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error("查询餐食均价失败", zap.Error(err))
		return nil, err
	}
	return &dto.AveragePriceResponse{AveragePrice: avg}, nil
}

func (s *adminService) CurrentManagers(ctx context.Context) ([]dto.ManagerItem, error) {
	rows, err := s.repo.Manager.ListCurrent(ctx, time.Now())
	if err != nil {
		s.logger.Error("查询在任管理员失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ManagerItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ManagerItem{
			ManagerID:       r.ManagerID,
			StudentID:       r.StudentID,
			Name:            r.Name,
			AppointmentDate: r.AppointmentDate,
			RetirementDate:  r.RetirementDate,
		})
	}
	return items, nil
}

func (s *adminService) AddManager(ctx context.Context, req *dto.AddManagerRequest) error {
	appointment, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return ErrInvalidDate
	}
	retirement, err := time.Parse("2006-01-02", req.RetirementDate)
	if err != nil {
		return ErrInvalidDate
	}

	manager := &model.MealManager{
		ManagerID:       req.ManagerID,
		StudentID:       req.StudentID,
		AppointmentDate: appointment,
		RetirementDate:  retirement,
	}

	if err := s.repo.Manager.Create(ctx, manager); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateManager
		}
		s.logger.Error("任命管理员失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *adminService) RemoveManager(ctx context.Context, managerID int) error {
	affected, err := s.repo.Manager.Delete(ctx, managerID)
	if err != nil {
		s.logger.Error("移除管理员失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrManagerNotFound
	}
	return nil
}

func (s *adminService) MealOverview(ctx context.Context) ([]dto.MealOverviewItem, error) {
	now := time.Now()
	rows, err := s.repo.Booking.MealOverview(ctx, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error("查询单品销量失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.MealOverviewItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MealOverviewItem{
			Description: r.Description,
			TotalSold:   r.TotalSold,
		})
	}
	return items, nil
}

func (s *adminService) SalesOverview(ctx context.Context) ([]dto.SalesPeriodItem, error) {
	now := time.Now()

	weekly, err := s.repo.Booking.SalesSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		s.logger.Error("查询周销售额失败", zap.Error(err))
		return nil, err
	}

	monthly, err := s.repo.Booking.SalesForMonth(ctx, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error("查询月销售额失败", zap.Error(err))
		return nil, err
	}

	return []dto.SalesPeriodItem{
		{Period: "weekly", TotalSale: weekly},
		{Period: "monthly", TotalSale: monthly},
	}, nil
}

func (s *adminService) Profile(ctx context.Context, email string) (*dto.AdminProfileResponse, error) {
	admin, err := s.repo.Admin.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("查询管理员档案失败", zap.Error(err))
		return nil, err
	}

	return &dto.AdminProfileResponse{
		AdminID: admin.AdminID,
		Name:    admin.Name,
		Email:   admin.Email,
	}, nil
}

func (s *adminService) UpdateProfile(ctx context.Context, email string, req *dto.UpdateAdminProfileRequest) error {
	var passwordHash *string
	if req.Password != "" {
		if len(req.Password) < 8 {
			return ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			s.logger.Error("密码散列失败", zap.Error(err))
			return err
		}
		h := string(hash)
		passwordHash = &h
	}

	affected, err := s.repo.Admin.UpdateProfile(ctx, email, req.Name, req.Email, passwordHash)
	if err != nil {
		s.logger.Error("更新管理员档案失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (s *adminService) ListStudents(ctx context.Context) ([]dto.StudentListItem, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.StudentListItem, 0, len(students))
	for _, st := range students {
		items = append(items, dto.StudentListItem{
			StudentID: st.StudentID,
			Name:      st.Name,
			Email:     st.Email,
			CreatedAt: st.CreatedAt,
		})
	}
	return items, nil
}
