package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/dto"
	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
	"github.com/pretom95/Hall-E-Meal-backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrDuplicateStudent   = errors.New("学号或邮箱已存在")
	ErrPasswordTooShort   = errors.New("密码长度不能少于 8 个字符")
)

// errNoSuchAccount 解析器内部哨兵：当前账号类型下无此邮箱，交给下一个解析器
var errNoSuchAccount = errors.New("no such account")

// bcrypt 工作因子，与历史存量散列保持一致
const bcryptCost = 10

// accountResolver 单一账号类型的登录解析器。
// 返回 errNoSuchAccount 表示该类型下不存在此邮箱；
// 密码不匹配等其他错误立即终止整条解析链。
type accountResolver func(ctx context.Context, email, password string) (*dto.SignInResponse, error)

// AuthService 认证业务接口
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger

	// resolvers 按序尝试的账号解析链。
	// 契约：管理员解析先于学生解析——同一邮箱同时存在于两张表时，
	// 登录身份始终解析为管理员。调整顺序会破坏既有客户端行为。
	resolvers []accountResolver
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	s := &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
	s.resolvers = []accountResolver{
		s.resolveAdmin,
		s.resolveStudent,
	}
	return s
}

func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	// 仅存储散列，明文不落库
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("密码散列失败", zap.Error(err))
		return err
	}

	student := &model.Student{
		StudentID:    req.StudentID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateStudent
		}
		s.logger.Error("创建学生账号失败", zap.Error(err))
		return err
	}

	return nil
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	for _, resolve := range s.resolvers {
		result, err := resolve(ctx, req.Email, req.Password)
		if errors.Is(err, errNoSuchAccount) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrUserNotFound
}

// resolveAdmin 管理员账号解析
func (s *authService) resolveAdmin(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
	admin, err := s.repo.Admin.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNoSuchAccount
		}
		s.logger.Error("查询管理员失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateAdminToken(admin.Email, admin.Name)
	if err != nil {
		s.logger.Error("签发管理员 token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.SignInResponse{
		Token: token,
		User: dto.UserInfo{
			Name:  admin.Name,
			Email: admin.Email,
			Role:  jwt.RoleAdmin,
		},
	}, nil
}

// resolveStudent 学生账号解析，附带当前管理员身份推导
func (s *authService) resolveStudent(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
	student, err := s.repo.Student.GetByEmailWithManagerStatus(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNoSuchAccount
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateStudentToken(student.Email, student.Name, student.StudentID, student.IsManager)
	if err != nil {
		s.logger.Error("签发学生 token 失败", zap.Error(err))
		return nil, err
	}

	isManager := student.IsManager
	return &dto.SignInResponse{
		Token: token,
		User: dto.UserInfo{
			Name:      student.Name,
			Email:     student.Email,
			Role:      jwt.RoleStudent,
			StudentID: student.StudentID,
			IsManager: &isManager,
		},
	}, nil
}
