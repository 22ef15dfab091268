package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pretom95/Hall-E-Meal-backend/internal/model"
	"github.com/pretom95/Hall-E-Meal-backend/internal/repository"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student // key: student_id
	managers map[string]bool           // student_id → 当前是否在任管理员
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: make(map[string]*model.Student),
		managers: make(map[string]bool),
	}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.StudentID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, s := range m.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, studentID string) (*model.Student, error) {
	if s, ok := m.students[studentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmailWithManagerStatus(_ context.Context, email string) (*repository.StudentWithManagerStatus, error) {
	for _, s := range m.students {
		if s.Email == email {
			return &repository.StudentWithManagerStatus{
				Student:   *s,
				IsManager: m.managers[s.StudentID],
			}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) UpdateProfile(_ context.Context, studentID, name, email string, passwordHash *string) (int64, error) {
	s, ok := m.students[studentID]
	if !ok {
		return 0, nil
	}
	s.Name = name
	s.Email = email
	if passwordHash != nil {
		s.PasswordHash = *passwordHash
	}
	return 1, nil
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin // key: email
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.admins[email]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) UpdateProfile(_ context.Context, currentEmail, name, email string, passwordHash *string) (int64, error) {
	a, ok := m.admins[currentEmail]
	if !ok {
		return 0, nil
	}
	delete(m.admins, currentEmail)
	a.Name = name
	a.Email = email
	if passwordHash != nil {
		a.PasswordHash = *passwordHash
	}
	m.admins[email] = a
	return 1, nil
}

// ── Mock MealRepository ──

type mockMealRepo struct {
	meals       []model.Meal
	withCreator []repository.MealWithCreator
	avgPrice    float64
}

func newMockMealRepo() *mockMealRepo {
	return &mockMealRepo{}
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (m *mockMealRepo) ListByDate(_ context.Context, date time.Time) ([]model.Meal, error) {
	var result []model.Meal
	for _, meal := range m.meals {
		if sameDate(meal.Date, date) {
			result = append(result, meal)
		}
	}
	return result, nil
}

func (m *mockMealRepo) ListFrom(_ context.Context, date time.Time) ([]model.Meal, error) {
	var result []model.Meal
	day := date.Format("2006-01-02")
	for _, meal := range m.meals {
		if meal.Date.Format("2006-01-02") >= day {
			result = append(result, meal)
		}
	}
	return result, nil
}

func (m *mockMealRepo) ListByDateWithCreator(_ context.Context, _ time.Time) ([]repository.MealWithCreator, error) {
	return m.withCreator, nil
}

func (m *mockMealRepo) AveragePriceForMonth(_ context.Context, _, _ int) (float64, error) {
	return m.avgPrice, nil
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings []*model.Booking
	nextID   int

	createErr    error
	total        int
	dues         float64
	listRows     []repository.BookingWithMeal
	billingLines []repository.BillingLine
	summary      *repository.MonthlySummary
	topConsumer  *repository.StudentTotal
	topPayer     *repository.StudentTotal
	overview     []repository.MealSales
	salesWeekly  float64
	salesMonthly float64
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{nextID: 1, summary: &repository.MonthlySummary{}}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.BookingID = m.nextID
	m.nextID++
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *mockBookingRepo) TotalForMonth(_ context.Context, _ string, _, _ int) (int, error) {
	return m.total, nil
}

func (m *mockBookingRepo) OutstandingDues(_ context.Context, _ string, _ time.Time) (float64, error) {
	return m.dues, nil
}

func (m *mockBookingRepo) ListWithMeal(_ context.Context, _ string) ([]repository.BookingWithMeal, error) {
	return m.listRows, nil
}

func (m *mockBookingRepo) BillingLines(_ context.Context, _ string) ([]repository.BillingLine, error) {
	return m.billingLines, nil
}

func (m *mockBookingRepo) MonthlySummary(_ context.Context, _ string, _, _ int) (*repository.MonthlySummary, error) {
	return m.summary, nil
}

func (m *mockBookingRepo) TopConsumer(_ context.Context, _, _ int) (*repository.StudentTotal, error) {
	if m.topConsumer == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.topConsumer, nil
}

func (m *mockBookingRepo) TopPayer(_ context.Context, _, _ int) (*repository.StudentTotal, error) {
	if m.topPayer == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.topPayer, nil
}

func (m *mockBookingRepo) MealOverview(_ context.Context, _, _ int) ([]repository.MealSales, error) {
	return m.overview, nil
}

func (m *mockBookingRepo) SalesSince(_ context.Context, _ time.Time) (float64, error) {
	return m.salesWeekly, nil
}

func (m *mockBookingRepo) SalesForMonth(_ context.Context, _, _ int) (float64, error) {
	return m.salesMonthly, nil
}

// ── Mock ManagerRepository ──

type mockManagerRepo struct {
	managers map[int]*model.MealManager
	names    map[string]string // student_id → 姓名
}

func newMockManagerRepo() *mockManagerRepo {
	return &mockManagerRepo{
		managers: make(map[int]*model.MealManager),
		names:    make(map[string]string),
	}
}

func (m *mockManagerRepo) Create(_ context.Context, manager *model.MealManager) error {
	if _, ok := m.managers[manager.ManagerID]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.managers[manager.ManagerID] = manager
	return nil
}

func (m *mockManagerRepo) ListCurrent(_ context.Context, onDate time.Time) ([]repository.ManagerWithName, error) {
	var result []repository.ManagerWithName
	for _, mgr := range m.managers {
		if mgr.RetirementDate.After(onDate) {
			result = append(result, repository.ManagerWithName{
				ManagerID:       mgr.ManagerID,
				StudentID:       mgr.StudentID,
				Name:            m.names[mgr.StudentID],
				AppointmentDate: mgr.AppointmentDate,
				RetirementDate:  mgr.RetirementDate,
			})
		}
	}
	return result, nil
}

func (m *mockManagerRepo) Delete(_ context.Context, managerID int) (int64, error) {
	if _, ok := m.managers[managerID]; !ok {
		return 0, nil
	}
	delete(m.managers, managerID)
	return 1, nil
}

// ── Mock NoticeRepository ──

type mockNoticeRepo struct {
	notices []model.Notice
}

func newMockNoticeRepo() *mockNoticeRepo {
	return &mockNoticeRepo{}
}

func (m *mockNoticeRepo) List(_ context.Context) ([]model.Notice, error) {
	return m.notices, nil
}

// newMockRepository 组装全套 mock Repository
func newMockRepository() (*repository.Repository, *mockStudentRepo, *mockAdminRepo, *mockMealRepo, *mockBookingRepo, *mockManagerRepo, *mockNoticeRepo) {
	studentRepo := newMockStudentRepo()
	adminRepo := newMockAdminRepo()
	mealRepo := newMockMealRepo()
	bookingRepo := newMockBookingRepo()
	managerRepo := newMockManagerRepo()
	noticeRepo := newMockNoticeRepo()

	repo := &repository.Repository{
		Student: studentRepo,
		Admin:   adminRepo,
		Meal:    mealRepo,
		Booking: bookingRepo,
		Manager: managerRepo,
		Notice:  noticeRepo,
	}
	return repo, studentRepo, adminRepo, mealRepo, bookingRepo, managerRepo, noticeRepo
}
