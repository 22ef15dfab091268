package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
)

// BookingWithMeal 订餐记录及所订餐食信息
type BookingWithMeal struct {
	BookingID  int
	MealType   string
	Date       time.Time
	Quantities int
	Price      float64
}

// BillingLine 账单明细行
type BillingLine struct {
	Description string
	Price       float64
	Quantities  int
	TotalCost   float64
}

// MonthlySummary 当月账单汇总
type MonthlySummary struct {
	MealsTaken  int
	CostPerMeal float64
	TotalAmount float64
}

// StudentTotal 按学生聚合的统计行
type StudentTotal struct {
	Name       string
	TotalMeals int
	TotalBill  float64
}

// MealSales 单品销量统计行
type MealSales struct {
	Description string
	TotalSold   int
}

// BookingRepository 订餐数据访问接口
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	// TotalForMonth 指定学生在指定年月的订餐总份数
	TotalForMonth(ctx context.Context, studentID string, year, month int) (int, error)
	// OutstandingDues 指定学生截至 until（含）的累计应付金额
	OutstandingDues(ctx context.Context, studentID string, until time.Time) (float64, error)
	// ListWithMeal 指定学生的全部订餐记录（含餐食信息），按日期降序
	ListWithMeal(ctx context.Context, studentID string) ([]BookingWithMeal, error)
	// BillingLines 指定学生的账单明细
	BillingLines(ctx context.Context, studentID string) ([]BillingLine, error)
	// MonthlySummary 指定学生在指定年月的账单汇总
	MonthlySummary(ctx context.Context, studentID string, year, month int) (*MonthlySummary, error)
	// TopConsumer 指定年月订餐份数最多的学生；平局时按消费金额取高者。
	// 无数据返回 gorm.ErrRecordNotFound。
	TopConsumer(ctx context.Context, year, month int) (*StudentTotal, error)
	// TopPayer 指定年月消费金额最高的学生；无数据返回 gorm.ErrRecordNotFound
	TopPayer(ctx context.Context, year, month int) (*StudentTotal, error)
	// MealOverview 指定年月各餐食销量，按销量降序
	MealOverview(ctx context.Context, year, month int) ([]MealSales, error)
	// SalesSince 指定日期（含）以来的销售总额
	SalesSince(ctx context.Context, from time.Time) (float64, error)
	// SalesForMonth 指定年月的销售总额
	SalesForMonth(ctx context.Context, year, month int) (float64, error)
}

// bookingRepo BookingRepository 的 GORM 实现
type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo 创建 BookingRepository 实例
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) TotalForMonth(ctx context.Context, studentID string, year, month int) (int, error) {
	var total *int
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("SUM(quantities)").
		Where("student_id = ?", studentID).
		Where("EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?", month, year).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *bookingRepo) OutstandingDues(ctx context.Context, studentID string, until time.Time) (float64, error) {
	var dues *float64
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("SUM(m.price * b.quantities)").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("b.student_id = ? AND b.date <= ?", studentID, until.Format("2006-01-02")).
		Scan(&dues).Error
	if err != nil || dues == nil {
		return 0, err
	}
	return *dues, nil
}

func (r *bookingRepo) ListWithMeal(ctx context.Context, studentID string) ([]BookingWithMeal, error) {
	var rows []BookingWithMeal
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("b.booking_id, m.meal_type, b.date, b.quantities, m.price").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("b.student_id = ?", studentID).
		Order("b.date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *bookingRepo) BillingLines(ctx context.Context, studentID string) ([]BillingLine, error) {
	var rows []BillingLine
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("m.description, m.price, b.quantities, (m.price * b.quantities) AS total_cost").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("b.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}

func (r *bookingRepo) MonthlySummary(ctx context.Context, studentID string, year, month int) (*MonthlySummary, error) {
	var row struct {
		MealsTaken  *int
		CostPerMeal *float64
		TotalAmount *float64
	}
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select(`SUM(b.quantities) AS meals_taken,
			MAX(m.price) AS cost_per_meal,
			SUM(b.quantities * m.price) AS total_amount`).
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("b.student_id = ?", studentID).
		Where("EXTRACT(MONTH FROM b.date) = ? AND EXTRACT(YEAR FROM b.date) = ?", month, year).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{}
	if row.MealsTaken != nil {
		summary.MealsTaken = *row.MealsTaken
	}
	if row.CostPerMeal != nil {
		summary.CostPerMeal = *row.CostPerMeal
	}
	if row.TotalAmount != nil {
		summary.TotalAmount = *row.TotalAmount
	}
	return summary, nil
}

func (r *bookingRepo) TopConsumer(ctx context.Context, year, month int) (*StudentTotal, error) {
	var row StudentTotal
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("s.name, SUM(b.quantities) AS total_meals").
		Joins("JOIN student s ON b.student_id = s.student_id").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("EXTRACT(MONTH FROM b.date) = ? AND EXTRACT(YEAR FROM b.date) = ?", month, year).
		Group("b.student_id, s.name").
		Order("total_meals DESC, SUM(b.quantities * m.price) DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *bookingRepo) TopPayer(ctx context.Context, year, month int) (*StudentTotal, error) {
	var row StudentTotal
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("s.name, SUM(b.quantities * m.price) AS total_bill").
		Joins("JOIN student s ON b.student_id = s.student_id").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("EXTRACT(MONTH FROM b.date) = ? AND EXTRACT(YEAR FROM b.date) = ?", month, year).
		Group("b.student_id, s.name").
		Order("total_bill DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *bookingRepo) MealOverview(ctx context.Context, year, month int) ([]MealSales, error) {
	var rows []MealSales
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("m.description, COUNT(b.booking_id) AS total_sold").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("EXTRACT(MONTH FROM b.date) = ? AND EXTRACT(YEAR FROM b.date) = ?", month, year).
		Group("b.meal_id, m.description").
		Order("total_sold DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *bookingRepo) SalesSince(ctx context.Context, from time.Time) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("SUM(b.quantities * m.price)").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("b.date >= ?", from.Format("2006-01-02")).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *bookingRepo) SalesForMonth(ctx context.Context, year, month int) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("SUM(b.quantities * m.price)").
		Joins("JOIN meal m ON b.meal_id = m.meal_id").
		Where("EXTRACT(MONTH FROM b.date) = ? AND EXTRACT(YEAR FROM b.date) = ?", month, year).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
