package models

import "time"

// Region 取还车地区
type Region struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Region) TableName() string {
	return "regions"
}

// GetDefaultRegions 启动时初始化的地区列表
func GetDefaultRegions() []string {
	return []string{
		"Toshkent", "Samarqand", "Buxoro", "Farg'ona", "Andijon", "Namangan",
		"Xorazm", "Qashqadaryo", "Surxondaryo", "Jizzax", "Navoiy", "Sirdaryo",
	}
}
