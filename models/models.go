// Package models 定义持久化实体
package models

// All 返回需要自动迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&Car{},
		&Comment{},
		&Booking{},
		&Region{},
		&Income{},
	}
}
