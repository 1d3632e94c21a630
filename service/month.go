package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeMonth 将月份名称（不区分大小写）或 1-12 的数字统一为 1-12
// 支持 Go 整数类型、JSON 解码得到的整数值 float64、json.Number、time.Month 和字符串
func NormalizeMonth(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return checkMonth(v, value)
	case int8:
		return checkMonth(int(v), value)
	case int16:
		return checkMonth(int(v), value)
	case int32:
		return checkMonth(int(v), value)
	case int64:
		return checkMonth(int(v), value)
	case uint:
		return checkMonth(int(v), value)
	case uint8:
		return checkMonth(int(v), value)
	case uint16:
		return checkMonth(int(v), value)
	case uint32:
		return checkMonth(int(v), value)
	case uint64:
		if v > 12 {
			break
		}
		return checkMonth(int(v), value)
	case float64:
		if v != math.Trunc(v) || v < 1 || v > 12 {
			break
		}
		return int(v), nil
	case time.Month:
		return checkMonth(int(v), value)
	case json.Number:
		return NormalizeMonth(string(v))
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return checkMonth(n, value)
		}
		for i, name := range monthNames {
			if strings.EqualFold(s, name) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidMonth, value)
}

func checkMonth(n int, raw any) (int, error) {
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMonth, raw)
	}
	return n, nil
}

// MonthName 返回月份英文名，超出 1-12 返回空串
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
