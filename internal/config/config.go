package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（:4000）
	GoEnv string // dev/prod

	Database Database

	JWTSecret  string        // JWT署名シークレット
	SessionTTL time.Duration // セッショントークンの有効期限（7日）
	BcryptCost int

	FEURLs []string // CORSで許可するフロントURL

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	Redis           Redis
	CatalogCacheTTL time.Duration

	// falseなら任意のステータスを書き込める（旧挙動）
	StrictOrderStatus bool
	// trueなら注文時にクライアントの価格を使う（旧挙動）
	TrustClientPrices bool

	AutoMigrate bool
}

type Database struct {
	URL      string // あれば最優先
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN はURLが無ければ各項目から組み立てる。
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type Redis struct {
	Addr     string // 空ならキャッシュ無効
	Password string
	DB       int
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

const devJWTSecret = "dev_secret_change_me"

// Loadは.envと環境変数から読む。.envが無くてもエラーにしない。
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv はgetenvから設定を組み立てる（テストでは差し替える）。
func FromEnv(getenv func(string) string) (Config, error) {
	r := reader{getenv: getenv}

	cfg := Config{
		Port:  normalizePort(r.str("PORT", "4000")),
		GoEnv: r.str("GO_ENV", "dev"),
		Database: Database{
			URL:      r.str("DATABASE_URL", ""),
			Host:     r.str("POSTGRES_HOST", "localhost"),
			Port:     r.int("POSTGRES_PORT", 5432),
			User:     r.str("POSTGRES_USER", "postgres"),
			Password: r.str("POSTGRES_PASSWORD", "postgres"),
			Name:     r.str("POSTGRES_DB", "cakeshop"),
			SSLMode:  r.str("POSTGRES_SSLMODE", "disable"),
		},
		JWTSecret:       r.str("JWT_SECRET", ""),
		SessionTTL:      time.Duration(r.int("SESSION_TTL_HOURS", 168)) * time.Hour,
		BcryptCost:      r.int("BCRYPT_COST", 10),
		FEURLs:          splitList(r.str("FE_URLS", "http://localhost:3000,http://localhost:3001")),
		RequestTimeout:  time.Duration(r.int("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		ShutdownTimeout: time.Duration(r.int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		Redis: Redis{
			Addr:     r.str("REDIS_ADDR", ""),
			Password: r.str("REDIS_PASSWORD", ""),
			DB:       r.int("REDIS_DB", 0),
		},
		CatalogCacheTTL:   time.Duration(r.int("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		StrictOrderStatus: r.bool("STRICT_ORDER_STATUS", true),
		TrustClientPrices: r.bool("TRUST_CLIENT_PRICES", false),
		AutoMigrate:       r.bool("AUTO_MIGRATE", false),
	}
	if r.err != nil {
		return Config{}, r.err
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		if cfg.GoEnv == "prod" {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

// 最初のエラーだけ覚えておく
type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) str(key, def string) string {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	return v
}

func (r *reader) int(key string, def int) int {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s must be number: %w", key, err)
	}
	return i
}

func (r *reader) bool(key string, def bool) bool {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b
}

func normalizePort(v string) string {
	if strings.HasPrefix(v, ":") {
		return v
	}
	return ":" + v
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
