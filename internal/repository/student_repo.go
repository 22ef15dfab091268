package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// StudentWithManagerStatus 学生记录及其当前管理员身份
type StudentWithManagerStatus struct {
	model.Student
	IsManager bool
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, studentID string) (*model.Student, error)
	// GetByEmailWithManagerStatus 按邮箱查询学生，并依据 meal_manager
	// 任期区间推导当前日期下的 is_manager 状态
	GetByEmailWithManagerStatus(ctx context.Context, email string) (*StudentWithManagerStatus, error)
	// UpdateProfile 更新姓名与邮箱；passwordHash 非 nil 时一并更新密码散列。
	// 返回受影响行数，0 表示学生不存在。
	UpdateProfile(ctx context.Context, studentID, name, email string, passwordHash *string) (int64, error)
	List(ctx context.Context) ([]model.Student, error)
}

// studentRepo StudentRepository 的 GORM 实现
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, studentID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByEmailWithManagerStatus(ctx context.Context, email string) (*StudentWithManagerStatus, error) {
	var row StudentWithManagerStatus
	err := r.db.WithContext(ctx).
		Table("student AS s").
		Select(`s.*, EXISTS (
			SELECT 1 FROM meal_manager m
			WHERE m.student_id = s.student_id
			  AND CURRENT_DATE BETWEEN m.appointment_date AND m.retirement_date
		) AS is_manager`).
		Where("s.email = ?", email).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *studentRepo) UpdateProfile(ctx context.Context, studentID, name, email string, passwordHash *string) (int64, error) {
	updates := map[string]interface{}{
		"name":  name,
		"email": email,
	}
	if passwordHash != nil {
		updates["password_hash"] = *passwordHash
	}

	result := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("student_id = ?", studentID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}
