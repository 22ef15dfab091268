package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// ErrPasswordMismatch 两次输入的密码不一致
var ErrPasswordMismatch = errors.New("两次输入的密码不一致")

// ProfileService 学生个人档案业务接口
type ProfileService interface {
	Get(ctx context.Context, studentID string) (*dto.ProfileResponse, error)
	// Update 更新姓名与邮箱；请求携带密码时校验确认密码并重新散列
	Update(ctx context.Context, studentID string, req *dto.UpdateProfileRequest) error
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) Get(ctx context.Context, studentID string) (*dto.ProfileResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询个人档案失败", zap.Error(err))
		return nil, err
	}

	// 密码散列不进入响应
	return &dto.ProfileResponse{
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}

func (s *profileService) Update(ctx context.Context, studentID string, req *dto.UpdateProfileRequest) error {
	var passwordHash *string
	if req.Password != "" {
		if req.Password != req.ConfirmPassword {
			return ErrPasswordMismatch
		}
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

	affected, err := s.repo.Student.UpdateProfile(ctx, studentID, req.Name, req.Email, passwordHash)
	if err != nil {
		s.logger.Error("更新个人档案失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
