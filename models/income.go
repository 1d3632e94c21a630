package models

import "time"

// Income 每日收入
// (year, month, day) 由唯一索引 idx_income_date 保证唯一
type Income struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Year        int       `json:"year" gorm:"not null;uniqueIndex:idx_income_date,priority:1"`
	Month       int       `json:"month" gorm:"not null;uniqueIndex:idx_income_date,priority:2"`
	Day         int       `json:"day" gorm:"not null;uniqueIndex:idx_income_date,priority:3"`
	TotalIncome float64   `json:"totalIncome" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Income) TableName() string {
	return "incomes"
}
