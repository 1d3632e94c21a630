package service

import (
	"errors"
	"fmt"
)

// 业务错误，调用方使用 errors.Is 判断
var (
	ErrValidation   = errors.New("invalid input")
	ErrMissingField = fmt.Errorf("%w: missing fields", ErrValidation)
	ErrInvalidMonth = fmt.Errorf("%w: invalid month", ErrValidation)

	ErrNotFound        = errors.New("not found")
	ErrCarNotFound     = fmt.Errorf("car %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrIncomeNotFound  = fmt.Errorf("income %w", ErrNotFound)

	ErrDuplicate     = errors.New("already exists")
	ErrDuplicateDate = fmt.Errorf("income for this date %w", ErrDuplicate)
	ErrDuplicateName = fmt.Errorf("name %w", ErrDuplicate)
)
