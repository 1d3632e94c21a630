package database

import (
	"context"
	"fmt"

	"rentcar/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRegions 按名称幂等地写入默认地区
// 依赖 regions.name 唯一索引，已存在的名称被跳过，返回新增条数
func SeedRegions(ctx context.Context, db *gorm.DB) (int64, error) {
	names := models.GetDefaultRegions()
	regions := make([]models.Region, 0, len(names))
	for _, name := range names {
		regions = append(regions, models.Region{Name: name})
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&regions)
	if res.Error != nil {
		return 0, fmt.Errorf("初始化地区失败: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Bootstrap 启动时执行：迁移表结构并初始化地区
func Bootstrap(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if err := Migrate(db); err != nil {
		return err
	}
	inserted, err := SeedRegions(ctx, db)
	if err != nil {
		return err
	}
	log.Info("地区初始化完成", zap.Int64("inserted", inserted), zap.Int("total", len(models.GetDefaultRegions())))
	return nil
}
