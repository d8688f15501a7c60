package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Log           LogConfig           `mapstructure:"log"`
	Upload        UploadConfig        `mapstructure:"upload"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name           string `mapstructure:"name"`
	Version        string `mapstructure:"version"`
	Mode           string `mapstructure:"mode"`
	Port           int    `mapstructure:"port"`
	RequestTimeout int    `mapstructure:"request_timeout"` // 秒
}

// RequestTimeoutDuration 单个请求的超时时间，0 表示不限制
func (a *AppConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(a.RequestTimeout) * time.Second
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	StatsTTL int    `mapstructure:"stats_ttl"` // 秒
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StatsTTLDuration 频道统计缓存时长
func (r *RedisConfig) StatsTTLDuration() time.Duration {
	if r.StatsTTL <= 0 {
		return time.Minute
	}
	return time.Duration(r.StatsTTL) * time.Second
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	// PublicURL 对外访问的基础地址，为空时由 endpoint 拼接
	PublicURL string `mapstructure:"public_url"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
	GroupID string            `mapstructure:"group_id"`
}

// Topic 返回指定 key 的 topic，未配置时返回 key 本身
func (k *KafkaConfig) Topic(key string) string {
	if t, ok := k.Topics[key]; ok && t != "" {
		return t
	}
	return key
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// VideosIndex 视频索引名
func (e *ElasticsearchConfig) VideosIndex() string {
	if name := e.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ExpireDuration 返回过期时间
func (j *JWTConfig) ExpireDuration() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// UploadConfig 上传文件配置
type UploadConfig struct {
	TempDir      string `mapstructure:"temp_dir"`
	MaxVideoSize int64  `mapstructure:"max_video_size"` // MB
	MaxImageSize int64  `mapstructure:"max_image_size"` // MB
}

// MaxVideoBytes 视频文件大小上限（字节）
func (u *UploadConfig) MaxVideoBytes() int64 {
	return u.MaxVideoSize * 1024 * 1024
}

// MaxImageBytes 图片文件大小上限（字节）
func (u *UploadConfig) MaxImageBytes() int64 {
	return u.MaxImageSize * 1024 * 1024
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vidtube-go")
	v.SetDefault("app.mode", "debug")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.request_timeout", 30)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.stats_ttl", 60)
	v.SetDefault("minio.bucket", "vidtube-media")
	v.SetDefault("kafka.group_id", "vidtube-search-sync")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("upload.temp_dir", "/tmp/vidtube-uploads")
	v.SetDefault("upload.max_video_size", 500)
	v.SetDefault("upload.max_image_size", 10)
}

// Load 加载配置文件，环境变量（如 DATABASE_HOST）优先于文件
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// 设置配置文件路径
	v.SetConfigFile(configPath)

	// 设置配置文件类型
	v.SetConfigType("yaml")

	// 读取环境变量
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 解析配置到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验必须的配置项
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("app.port must be positive, got %d", c.App.Port)
	}
	return nil
}
