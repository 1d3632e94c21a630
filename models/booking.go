package models

import "time"

// Booking 预订记录
// CarName 在创建或更换车辆时从车辆复制，之后不随车辆改名同步
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CarID         uint      `json:"carId" gorm:"index;not null"`
	CarName       string    `json:"carName" gorm:"size:100;not null"`
	PlaceOfRental string    `json:"placeOfRental" gorm:"size:200;not null"`
	PlaceOfReturn string    `json:"placeOfReturn" gorm:"size:200;not null"`
	RentalDate    time.Time `json:"rentalDate" gorm:"not null"`
	ReturnDate    time.Time `json:"returnDate" gorm:"not null"`
	PhoneNumber   string    `json:"phoneNumber" gorm:"size:30;not null"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Booking) TableName() string {
	return "bookings"
}
