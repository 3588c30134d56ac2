package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

// Limits 两个 HTTP 引擎共用的限流 / 限并发 / 超时参数
type Limits struct {
	RPS         float64
	Burst       int
	Concurrency int64
	MaxBodyKB   int64
	TimeoutSec  int
}

type App struct {
	Name   string
	Env    string
	HTTP   HTTP
	Admin  AdminHTTP
	Limits Limits
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

// Redis Addr 为空表示不启用缓存
type Redis struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyprefix"`
	TTLSec    int    `mapstructure:"ttlsec"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Store Backend: memory（进程内，重启丢失）| gorm（走 DB 配置）
type Store struct {
	Backend string
	Seed    bool
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Store Store
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.name", "eco-waste-api")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8081)
	v.SetDefault("app.limits.rps", 200)
	v.SetDefault("app.limits.burst", 400)
	v.SetDefault("app.limits.concurrency", 300)
	v.SetDefault("app.limits.maxbodykb", 1024)
	v.SetDefault("app.limits.timeoutsec", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.maxsizemb", 100)
	v.SetDefault("log.file.maxbackups", 7)
	v.SetDefault("log.file.maxagedays", 30)
	v.SetDefault("jwt.issuer", "eco-waste-api")
	v.SetDefault("jwt.accesstokenttlmin", 120)
	v.SetDefault("db.maxopenconns", 20)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.loglevel", "warn")
	v.SetDefault("redis.keyprefix", "ecowaste:")
	v.SetDefault("redis.ttlsec", 60)
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.seed", true)
}

// Parse 读取 YAML 并叠加 APP_ 前缀环境变量（APP_DB_DSN -> db.dsn）
func Parse(path string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	return &c, nil
}

func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	c, err := Parse(path)
	if err != nil {
		log.Fatalf("load config %s: %v", path, err)
	}
	return c
}
