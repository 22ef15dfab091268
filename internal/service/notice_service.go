package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// NoticeService 公告业务接口
type NoticeService interface {
	List(ctx context.Context) ([]model.Notice, error)
}

type noticeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoticeService 创建 NoticeService 实例
func NewNoticeService(repo *repository.Repository, logger *zap.Logger) NoticeService {
	return &noticeService{repo: repo, logger: logger}
}

func (s *noticeService) List(ctx context.Context) ([]model.Notice, error) {
	notices, err := s.repo.Notice.List(ctx)
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return nil, err
	}
	return notices, nil
}
