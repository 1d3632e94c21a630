package database

import (
	"errors"
	"fmt"
	"strings"

	"rentcar/config"
	"rentcar/logger"
	"rentcar/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mysql 唯一键冲突错误码
const mysqlDuplicateEntry = 1062

// Open 连接数据库并配置连接池
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GormConfig(log, cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return db, nil
}

// GormConfig 统一的 gorm 配置，开启错误翻译以识别唯一键冲突
func GormConfig(log *zap.Logger, level string) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(log, level),
		TranslateError: true,
	}
}

// Dialector 根据连接串选择驱动
// postgres:// 与 postgresql:// 使用 PostgreSQL，mysql:// 前缀会被去掉，其余按 MySQL DSN 处理
func Dialector(dsn string) (gorm.Dialector, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return nil, errors.New("数据库连接串为空")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://")), nil
	default:
		return mysql.Open(dsn), nil
	}
}

// Migrate 自动迁移全部表结构（含唯一索引）
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("迁移表结构失败: %w", err)
	}
	return nil
}

// IsDuplicateKey 判断是否为唯一索引冲突
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
