package shared

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	DBDriver       string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env present but unreadable")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}

	driver := strings.ToLower(env("DB_DRIVER", DriverMySQL))
	if driver == "pg" || driver == "postgresql" {
		driver = DriverPostgres
	}
	defPort, defUser, defPass := 3306, "root", "root"
	if driver == DriverPostgres {
		defPort, defUser, defPass = 5432, "postgres", "postgres"
	}

	httpAddr := ":3001"
	if p := os.Getenv("PORT"); p != "" {
		httpAddr = ":" + p
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", httpAddr),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 0)) * time.Second,
		RateLimitRPS:   atof("RATE_LIMIT_RPS", 0),
		RateLimitBurst: atoi("RATE_LIMIT_BURST", 20),

		DBDriver:       driver,
		DBHost:         env("DB_HOST", "localhost"),
		DBPort:         atoi("DB_PORT", defPort),
		DBUser:         env("DB_USER", defUser),
		DBPassword:     env("DB_PASSWORD", defPass),
		DBName:         env("DB_NAME", "hotel_db"),
		DBMaxOpenConns: atoi("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: atoi("DB_MAX_IDLE_CONNS", 10),

		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
	}
	if c.DBDriver != DriverMySQL && c.DBDriver != DriverPostgres {
		log.Warn().Str("driver", c.DBDriver).Msg("unknown DB_DRIVER, falling back to mysql")
		c.DBDriver = DriverMySQL
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; caching disabled")
	}
	return c
}

// DSN returns the connection string for the application database.
func (c Config) DSN() string { return c.dsn(c.DBName) }

// ServerDSN connects to the database server without selecting the
// application database (postgres: the maintenance "postgres" database).
func (c Config) ServerDSN() string {
	if c.DBDriver == DriverPostgres {
		return c.dsn("postgres")
	}
	return c.dsn("")
}

func (c Config) dsn(dbName string) string {
	addr := net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	switch c.DBDriver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DBUser, c.DBPassword),
			Host:     addr,
			Path:     "/" + dbName,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	default:
		mc := mysql.NewConfig()
		mc.User = c.DBUser
		mc.Passwd = c.DBPassword
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = dbName
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4,utf8"}
		return mc.FormatDSN()
	}
}

func (c Config) String() string {
	return fmt.Sprintf("%s://%s@%s:%d/%s", c.DBDriver, c.DBUser, c.DBHost, c.DBPort, c.DBName)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
