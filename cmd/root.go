package cmd

import (
	"context"
	"fmt"
	"os"

	"rentcar/config"
	"rentcar/database"
	"rentcar/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Version 构建时可通过 -ldflags 覆盖
var Version = "1.0.0"

var (
	configFile string
	port       string
)

var rootCmd = &cobra.Command{
	Use:   "rentcar",
	Short: "RentCar 汽车租赁后台服务",
	Long: `RentCar 汽车租赁后台服务，提供车辆、评论、预订、地区与每日收入的 REST API。

不带子命令时等同于 rentcar serve。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "外部配置文件路径（可选）")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "监听端口，如: 5000 或 :5000")

	rootCmd.AddCommand(serveCmd, seedCmd, versionCmd)
}

// app 各子命令共用的运行时依赖
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

// setup 加载 .env 与配置，初始化日志和数据库，并执行迁移与地区初始化
func setup(ctx context.Context) (*app, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	if cfg.Source != "" {
		log.Info("已合并外部配置文件", zap.String("path", cfg.Source))
	}
	log.Info("连接数据库", zap.String("dsn", cfg.Database.RedactedDSN()))
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := database.Bootstrap(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.log.Warn("关闭数据库失败", zap.Error(err))
	}
	_ = a.log.Sync()
}
