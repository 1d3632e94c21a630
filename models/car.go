package models

import (
	"strings"
	"time"
)

// 车辆类别
const (
	CategorySedan     = "Sedan"
	CategoryCabriolet = "Cabriolet"
	CategoryPickup    = "Pickup"
	CategorySUV       = "SUV"
	CategoryMinivan   = "Minivan"
)

// MinGallerySize 图集最少图片数
const MinGallerySize = 4

// 车辆字段默认值
const (
	DefaultGearBox = "Automatic"
	DefaultFuel    = "Petrol"
	DefaultDoors   = 4
	DefaultSeats   = 5
)

// Car 车辆模型
type Car struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"size:100;not null"`
	Brand          string     `json:"brand" gorm:"size:100;not null;index"`
	Category       string     `json:"category" gorm:"size:20;not null;index"`
	PricePerDay    float64    `json:"pricePerDay" gorm:"type:decimal(10,2);not null"`
	ImageURL       string     `json:"imageUrl" gorm:"size:500"`
	Gallery        StringList `json:"gallery" gorm:"type:text;not null"`
	GearBox        string     `json:"gearBox" gorm:"size:30"`
	Fuel           string     `json:"fuel" gorm:"size:30"`
	Doors          int        `json:"doors"`
	Seats          int        `json:"seats"`
	AirConditioner bool       `json:"airConditioner"`
	Distance       float64    `json:"distance"`
	Equipment      StringList `json:"equipment" gorm:"type:text"`
	Available      bool       `json:"available" gorm:"index"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Car) TableName() string {
	return "cars"
}

// GetCategories 获取所有车辆类别
func GetCategories() []string {
	return []string{CategorySedan, CategoryCabriolet, CategoryPickup, CategorySUV, CategoryMinivan}
}

// CanonicalCategory 忽略大小写匹配类别，返回标准写法
func CanonicalCategory(category string) (string, bool) {
	category = strings.TrimSpace(category)
	for _, c := range GetCategories() {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}
	return "", false
}
