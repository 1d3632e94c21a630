package config

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Email    EmailConfig    `mapstructure:"email"`

	// Source 已合并的外部配置文件路径，仅使用内置配置时为空
	Source string `mapstructure:"-"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig 数据库配置
// DSN 以 postgres:// 或 postgresql:// 开头时使用 PostgreSQL，否则按 MySQL DSN 处理
type DatabaseConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json 或 console
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	NotifyTo string `mapstructure:"notify_to"` // 新预订通知收件人
}

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	var source string
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
		}
		source = configPath
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/rentcar")
		externalViper.AddConfigPath("$HOME/.rentcar")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("合并配置文件 %s 失败: %w", externalViper.ConfigFileUsed(), err)
			}
			source = externalViper.ConfigFileUsed()
		}
	}

	// 3. 环境变量覆盖；PORT 和 DATABASE_URL 兼容常见部署方式
	v.SetEnvPrefix("RENTCAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "RENTCAR_SERVER_PORT", "PORT")
	_ = v.BindEnv("database.dsn", "RENTCAR_DATABASE_DSN", "DATABASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Source = source

	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验必要配置
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn 不能为空")
	}
	port, err := strconv.Atoi(strings.TrimPrefix(c.Server.Port, ":"))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("无效的端口: %q", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("无效的运行模式: %q", c.Server.Mode)
	}
	return nil
}

// Addr 返回 http.Server 监听地址，如 :5000
func (s ServerConfig) Addr() string {
	if strings.HasPrefix(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}

// RedactedDSN 隐藏连接串中的密码，用于日志输出
func (d DatabaseConfig) RedactedDSN() string {
	if u, err := url.Parse(d.DSN); err == nil && u.Scheme != "" && u.User != nil {
		return u.Redacted()
	}
	at := strings.LastIndex(d.DSN, "@")
	if at < 0 {
		return d.DSN
	}
	cred := d.DSN[:at]
	if colon := strings.Index(cred, ":"); colon >= 0 {
		return cred[:colon] + ":xxxxx" + d.DSN[at:]
	}
	return d.DSN
}
