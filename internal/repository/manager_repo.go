package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// ManagerWithName 在任管理员及学生姓名
type ManagerWithName struct {
	ManagerID       int
	StudentID       string
	Name            string
	AppointmentDate time.Time
	RetirementDate  time.Time
}

// ManagerRepository 膳食管理员任期数据访问接口
type ManagerRepository interface {
	Create(ctx context.Context, manager *model.MealManager) error
	// ListCurrent 返回退休日期晚于指定日期的任期记录
	ListCurrent(ctx context.Context, onDate time.Time) ([]ManagerWithName, error)
	// Delete 按 manager_id 删除任期记录；返回受影响行数
	Delete(ctx context.Context, managerID int) (int64, error)
}

// managerRepo ManagerRepository 的 GORM 实现
type managerRepo struct {
	db *gorm.DB
}

// NewManagerRepo 创建 ManagerRepository 实例
func NewManagerRepo(db *gorm.DB) ManagerRepository {
	return &managerRepo{db: db}
}

func (r *managerRepo) Create(ctx context.Context, manager *model.MealManager) error {
	return r.db.WithContext(ctx).Create(manager).Error
}

func (r *managerRepo) ListCurrent(ctx context.Context, onDate time.Time) ([]ManagerWithName, error) {
	var rows []ManagerWithName
	err := r.db.WithContext(ctx).
		Table("meal_manager AS mm").
		Select("mm.manager_id, mm.student_id, s.name, mm.appointment_date, mm.retirement_date").
		Joins("JOIN student s ON mm.student_id = s.student_id").
		Where("mm.retirement_date > ?", onDate.Format("2006-01-02")).
		Scan(&rows).Error
	return rows, err
}

func (r *managerRepo) Delete(ctx context.Context, managerID int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Delete(&model.MealManager{})
	return result.RowsAffected, result.Error
}
