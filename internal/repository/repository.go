package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student StudentRepository
	Admin   AdminRepository
	Meal    MealRepository
	Booking BookingRepository
	Manager ManagerRepository
	Notice  NoticeRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student: NewStudentRepo(db),
		Admin:   NewAdminRepo(db),
		Meal:    NewMealRepo(db),
		Booking: NewBookingRepo(db),
		Manager: NewManagerRepo(db),
		Notice:  NewNoticeRepo(db),
	}
}
