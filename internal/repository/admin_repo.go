package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// AdminRepository 管理员数据访问接口
// 管理员账号线下开通，不提供 Create
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	// UpdateProfile 按当前邮箱定位管理员并更新档案；
	// passwordHash 非 nil 时一并更新密码散列。返回受影响行数。
	UpdateProfile(ctx context.Context, currentEmail, name, email string, passwordHash *string) (int64, error)
}

// adminRepo AdminRepository 的 GORM 实现
type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo 创建 AdminRepository 实例
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) UpdateProfile(ctx context.Context, currentEmail, name, email string, passwordHash *string) (int64, error) {
	updates := map[string]interface{}{
		"name":  name,
		"email": email,
	}
	if passwordHash != nil {
		updates["password_hash"] = *passwordHash
	}

	result := r.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("email = ?", currentEmail).
		Updates(updates)
	return result.RowsAffected, result.Error
}
