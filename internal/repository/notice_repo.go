package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// NoticeRepository 公告数据访问接口
type NoticeRepository interface {
	// List 返回全部公告，按日期降序
	List(ctx context.Context) ([]model.Notice, error)
}

// noticeRepo NoticeRepository 的 GORM 实现
type noticeRepo struct {
	db *gorm.DB
}

// NewNoticeRepo 创建 NoticeRepository 实例
func NewNoticeRepo(db *gorm.DB) NoticeRepository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) List(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&notices).Error
	return notices, err
}
