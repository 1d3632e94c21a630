package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentcar/database"
	"rentcar/models"

	"gorm.io/gorm"
)

// IncomeInput 创建每日收入的参数
// Month 可以是月份名称或数字；TotalIncome 为指针以区分 0 与未传
type IncomeInput struct {
	Year        int
	Month       any
	Day         int
	TotalIncome *float64
}

// IncomeUpdate 部分更新参数，nil 表示不修改
type IncomeUpdate struct {
	Year        *int
	Month       any
	Day         *int
	TotalIncome *float64
}

// MonthlyIncome 月度汇总
type MonthlyIncome struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	MonthName          string          `json:"monthName"`
	TotalMonthlyIncome float64         `json:"totalMonthlyIncome"`
	DailyIncomes       []models.Income `json:"dailyIncomes"`
}

// IncomeService 每日收入读写，只访问 incomes 表
type IncomeService struct {
	db *gorm.DB
}

func NewIncomeService(db *gorm.DB) *IncomeService {
	return &IncomeService{db: db}
}

// Create 创建每日收入
// 日期唯一性由 idx_income_date 唯一索引保证，并发创建同一日期时只有一个成功
func (s *IncomeService) Create(ctx context.Context, in IncomeInput) (*models.Income, error) {
	var missing []string
	if in.Year == 0 {
		missing = append(missing, "year")
	}
	if isEmptyMonth(in.Month) {
		missing = append(missing, "month")
	}
	if in.Day == 0 {
		missing = append(missing, "day")
	}
	if in.TotalIncome == nil {
		missing = append(missing, "totalIncome")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	month, err := NormalizeMonth(in.Month)
	if err != nil {
		return nil, err
	}
	if err := validateDate(in.Year, in.Day); err != nil {
		return nil, err
	}

	income := models.Income{Year: in.Year, Month: month, Day: in.Day, TotalIncome: *in.TotalIncome}
	if err := s.db.WithContext(ctx).Create(&income).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: %04d-%02d-%02d", ErrDuplicateDate, in.Year, month, in.Day)
		}
		return nil, fmt.Errorf("保存收入失败: %w", err)
	}
	return &income, nil
}

// List 全部收入，按日期排序
func (s *IncomeService) List(ctx context.Context) ([]models.Income, error) {
	var list []models.Income
	if err := s.db.WithContext(ctx).Order("year ASC, month ASC, day ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	return list, nil
}

// Get 按ID查询
func (s *IncomeService) Get(ctx context.Context, id uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.WithContext(ctx).First(&income, id).Error; err != nil {
		return nil, notFoundOr(err, ErrIncomeNotFound)
	}
	return &income, nil
}

// ForYear 按年份查询，以月份名称分组，组内按 (month, day) 排序
func (s *IncomeService) ForYear(ctx context.Context, year int) (map[string][]models.Income, error) {
	var list []models.Income
	err := s.db.WithContext(ctx).
		Where("year = ?", year).
		Order("month ASC, day ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrIncomeNotFound, year)
	}

	grouped := make(map[string][]models.Income)
	for _, in := range list {
		name := MonthName(in.Month)
		grouped[name] = append(grouped[name], in)
	}
	return grouped, nil
}

// ForMonth 月度汇总：总收入 + 按日排序的明细
func (s *IncomeService) ForMonth(ctx context.Context, year int, month any) (*MonthlyIncome, error) {
	m, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}

	var list []models.Income
	err = s.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, m).
		Order("day ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %04d-%02d", ErrIncomeNotFound, year, m)
	}

	var total float64
	for _, in := range list {
		total += in.TotalIncome
	}
	return &MonthlyIncome{
		Year:               year,
		Month:              m,
		MonthName:          MonthName(m),
		TotalMonthlyIncome: total,
		DailyIncomes:       list,
	}, nil
}

// ForDay 查询某一天的收入
func (s *IncomeService) ForDay(ctx context.Context, year int, month any, day int) (*models.Income, error) {
	m, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}

	var income models.Income
	err = s.db.WithContext(ctx).
		Where("year = ? AND month = ? AND day = ?", year, m, day).
		Take(&income).Error
	if err != nil {
		return nil, notFoundOr(err, ErrIncomeNotFound)
	}
	return &income, nil
}

// Update 部分更新；修改日期后与已有记录冲突时返回 ErrDuplicateDate
func (s *IncomeService) Update(ctx context.Context, id uint, upd IncomeUpdate) (*models.Income, error) {
	income, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Year != nil {
		income.Year = *upd.Year
		updates["year"] = *upd.Year
	}
	if !isEmptyMonth(upd.Month) {
		m, err := NormalizeMonth(upd.Month)
		if err != nil {
			return nil, err
		}
		income.Month = m
		updates["month"] = m
	}
	if upd.Day != nil {
		income.Day = *upd.Day
		updates["day"] = *upd.Day
	}
	if upd.TotalIncome != nil {
		updates["total_income"] = *upd.TotalIncome
	}
	if len(updates) == 0 {
		return income, nil
	}
	if err := validateDate(income.Year, income.Day); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(income).Updates(updates).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: %04d-%02d-%02d", ErrDuplicateDate, income.Year, income.Month, income.Day)
		}
		return nil, fmt.Errorf("更新收入失败: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete 删除收入
func (s *IncomeService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Income{}, id)
	if res.Error != nil {
		return fmt.Errorf("删除收入失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrIncomeNotFound
	}
	return nil
}

func validateDate(year, day int) error {
	if year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrValidation)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: day must be between 1 and 31", ErrValidation)
	}
	return nil
}

// isEmptyMonth 未传或零值视为缺失
func isEmptyMonth(v any) bool {
	switch m := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(m) == ""
	case float64:
		return m == 0
	case int:
		return m == 0
	}
	return false
}

func notFoundOr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("查询失败: %w", err)
}
