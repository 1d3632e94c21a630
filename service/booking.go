package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"rentcar/models"

	"gorm.io/gorm"
)

// 预订日期支持的格式
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// BookingInput 创建预订参数，CarID 必须指向已存在的车辆
type BookingInput struct {
	CarID         uint
	PlaceOfRental string
	PlaceOfReturn string
	RentalDate    string
	ReturnDate    string
	PhoneNumber   string
}

// BookingUpdate 部分更新参数，nil 表示不修改
type BookingUpdate struct {
	CarID         *uint
	PlaceOfRental *string
	PlaceOfReturn *string
	RentalDate    *string
	ReturnDate    *string
	PhoneNumber   *string
}

// BookingService 预订服务，写入时把车辆名称复制到预订记录
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create 创建预订
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*models.Booking, error) {
	var missing []string
	if in.CarID == 0 {
		missing = append(missing, "carId")
	}
	for name, v := range map[string]string{
		"placeOfRental": in.PlaceOfRental,
		"placeOfReturn": in.PlaceOfReturn,
		"rentalDate":    in.RentalDate,
		"returnDate":    in.ReturnDate,
		"phoneNumber":   in.PhoneNumber,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	rentalDate, err := ParseBookingDate(in.RentalDate)
	if err != nil {
		return nil, err
	}
	returnDate, err := ParseBookingDate(in.ReturnDate)
	if err != nil {
		return nil, err
	}

	car, err := s.findCar(ctx, in.CarID)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		CarID:         car.ID,
		CarName:       car.Name,
		PlaceOfRental: strings.TrimSpace(in.PlaceOfRental),
		PlaceOfReturn: strings.TrimSpace(in.PlaceOfReturn),
		RentalDate:    rentalDate,
		ReturnDate:    returnDate,
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
	}
	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("创建预订失败: %w", err)
	}
	return &booking, nil
}

// Update 更新预订；传入新的 CarID 时重新查询车辆并复制名称
func (s *BookingService) Update(ctx context.Context, id uint, upd BookingUpdate) (*models.Booking, error) {
	var blank []string
	for name, v := range map[string]*string{
		"placeOfRental": upd.PlaceOfRental,
		"placeOfReturn": upd.PlaceOfReturn,
		"phoneNumber":   upd.PhoneNumber,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			blank = append(blank, name)
		}
	}
	if len(blank) > 0 {
		sort.Strings(blank)
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(blank, ", "))
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.CarID != nil {
		car, err := s.findCar(ctx, *upd.CarID)
		if err != nil {
			return nil, err
		}
		updates["car_id"] = car.ID
		updates["car_name"] = car.Name
	}
	if upd.PlaceOfRental != nil {
		updates["place_of_rental"] = strings.TrimSpace(*upd.PlaceOfRental)
	}
	if upd.PlaceOfReturn != nil {
		updates["place_of_return"] = strings.TrimSpace(*upd.PlaceOfReturn)
	}
	if upd.RentalDate != nil {
		t, err := ParseBookingDate(*upd.RentalDate)
		if err != nil {
			return nil, err
		}
		updates["rental_date"] = t
	}
	if upd.ReturnDate != nil {
		t, err := ParseBookingDate(*upd.ReturnDate)
		if err != nil {
			return nil, err
		}
		updates["return_date"] = t
	}
	if upd.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*upd.PhoneNumber)
	}
	if len(updates) == 0 {
		return booking, nil
	}

	if err := s.db.WithContext(ctx).Model(booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新预订失败: %w", err)
	}
	return s.Get(ctx, id)
}

// List 全部预订，最新的在前
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询预订失败: %w", err)
	}
	return list, nil
}

// Get 按ID查询
func (s *BookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, notFoundOr(err, ErrBookingNotFound)
	}
	return &booking, nil
}

// Delete 删除预订
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("删除预订失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *BookingService) findCar(ctx context.Context, id uint) (*models.Car, error) {
	if id == 0 {
		return nil, ErrCarNotFound
	}
	var car models.Car
	if err := s.db.WithContext(ctx).Select("id", "name").First(&car, id).Error; err != nil {
		return nil, notFoundOr(err, ErrCarNotFound)
	}
	return &car, nil
}

// ParseBookingDate 解析预订日期，支持 RFC3339 与 YYYY-MM-DD 等格式
func ParseBookingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC3339", ErrValidation, s)
}
