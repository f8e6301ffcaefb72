package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	GRPCAddr        string        `yaml:"grpc_addr"`
	GatewayAddr     string        `yaml:"gateway_addr"`
	GRPCTarget      string        `yaml:"grpc_target"`
	LogMode         string        `yaml:"log_mode"`
	RPCTimeout      time.Duration `yaml:"rpc_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	DB              DBConfig      `yaml:"db"`
	MinIO           MinIOConfig   `yaml:"minio"`
}

type DBConfig struct {
	Driver       string `yaml:"driver"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Name         string `yaml:"name"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	MySQLDSN     string `yaml:"mysql_dsn"`
	SQLitePath   string `yaml:"sqlite_path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type MinIOConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
	Bucket    string `yaml:"bucket"`
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8000",
		GRPCAddr:        ":50051",
		GatewayAddr:     ":8080",
		GRPCTarget:      "localhost:50051",
		LogMode:         "development",
		RPCTimeout:      10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		DB: DBConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         5432,
			Name:         "glossary",
			User:         "postgres",
			MySQLDSN:     "glossary:glossary@tcp(127.0.0.1:3306)/glossary?charset=utf8mb4&parseTime=True&loc=Local",
			SQLitePath:   "glossary.db",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		MinIO: MinIOConfig{
			Endpoint:  "127.0.0.1:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "glossary",
		},
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.GRPCAddr = getenv("GRPC_ADDR", c.GRPCAddr)
	c.GatewayAddr = getenv("GATEWAY_ADDR", c.GatewayAddr)
	c.GRPCTarget = getenv("GLOSSARY_GRPC_TARGET", c.GRPCTarget)
	c.LogMode = getenv("LOG_MODE", c.LogMode)
	c.RPCTimeout = time.Duration(getenvInt("RPC_TIMEOUT_SECONDS", int(c.RPCTimeout/time.Second))) * time.Second
	c.ShutdownTimeout = time.Duration(getenvInt("SHUTDOWN_TIMEOUT_SECONDS", int(c.ShutdownTimeout/time.Second))) * time.Second

	c.DB.Driver = getenv("DB_DRIVER", c.DB.Driver)
	c.DB.Host = getenv("POSTGRES_HOST", c.DB.Host)
	c.DB.Port = getenvInt("POSTGRES_PORT", c.DB.Port)
	c.DB.Name = getenv("POSTGRES_DB", c.DB.Name)
	c.DB.User = getenv("POSTGRES_USER", c.DB.User)
	c.DB.Password = getenv("POSTGRES_PASSWORD", c.DB.Password)
	c.DB.MySQLDSN = getenv("MYSQL_DSN", c.DB.MySQLDSN)
	c.DB.SQLitePath = getenv("SQLITE_PATH", c.DB.SQLitePath)
	c.DB.MaxOpenConns = getenvInt("DB_MAX_OPEN_CONNS", c.DB.MaxOpenConns)
	c.DB.MaxIdleConns = getenvInt("DB_MAX_IDLE_CONNS", c.DB.MaxIdleConns)

	c.MinIO.Enabled = getenvBool("MINIO_ENABLED", c.MinIO.Enabled)
	c.MinIO.Endpoint = getenv("MINIO_ENDPOINT", c.MinIO.Endpoint)
	c.MinIO.AccessKey = getenv("MINIO_ACCESS_KEY", c.MinIO.AccessKey)
	c.MinIO.SecretKey = getenv("MINIO_SECRET_KEY", c.MinIO.SecretKey)
	c.MinIO.Secure = getenvBool("MINIO_SECURE", c.MinIO.Secure)
	c.MinIO.Bucket = getenv("MINIO_BUCKET", c.MinIO.Bucket)
}

// PostgresDSN renders the connection URL for the postgres driver.
func (d DBConfig) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
