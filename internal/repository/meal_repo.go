package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// MealWithCreator 餐食及其创建者（经 meal_manager 关联到学生姓名）
type MealWithCreator struct {
	MealType    string
	Description string
	Price       float64
	CreatorName string
}

// MealRepository 餐食数据访问接口
type MealRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]model.Meal, error)
	// ListFrom 返回指定日期（含）之后的餐食排期，按日期升序
	ListFrom(ctx context.Context, date time.Time) ([]model.Meal, error)
	// ListByDateWithCreator 返回指定日期的餐食及创建者姓名
	ListByDateWithCreator(ctx context.Context, date time.Time) ([]MealWithCreator, error)
	// AveragePriceForMonth 指定年月的餐食均价；无数据时返回 0
	AveragePriceForMonth(ctx context.Context, year, month int) (float64, error)
}

// mealRepo MealRepository 的 GORM 实现
type mealRepo struct {
	db *gorm.DB
}

// NewMealRepo 创建 MealRepository 实例
func NewMealRepo(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) ListByDate(ctx context.Context, date time.Time) ([]model.Meal, error) {
	var meals []model.Meal
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Find(&meals).Error
	return meals, err
}

func (r *mealRepo) ListFrom(ctx context.Context, date time.Time) ([]model.Meal, error) {
	var meals []model.Meal
	err := r.db.WithContext(ctx).
		Where("date >= ?", date.Format("2006-01-02")).
		Order("date ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepo) ListByDateWithCreator(ctx context.Context, date time.Time) ([]MealWithCreator, error) {
	var rows []MealWithCreator
	err := r.db.WithContext(ctx).
		Table("meal AS m").
		Select("m.meal_type, m.description, m.price, s.name AS creator_name").
		Joins("JOIN meal_manager mm ON m.manager_id = mm.manager_id").
		Joins("JOIN student s ON mm.student_id = s.student_id").
		Where("m.date = ?", date.Format("2006-01-02")).
		Scan(&rows).Error
	return rows, err
}

func (r *mealRepo) AveragePriceForMonth(ctx context.Context, year, month int) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&model.Meal{}).
		Select("AVG(price)").
		Where("EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?", month, year).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
