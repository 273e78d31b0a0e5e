package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Telegram Telegram `validate:"required"`

	Vipayment Vipayment `validate:"required"`
	Moogold   Moogold   `validate:"required"`
	Jollymax  Jollymax  `validate:"required"`

	Reconciler Reconciler `validate:"required"`

	Catalog Catalog `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Telegram struct {
	Token        string  `validate:"required"`
	AdminChatIDs []int64 `validate:"required,min=1"`
}

type Vipayment struct {
	URI  string `validate:"required,url"`
	Key  string `validate:"required"`
	Sign string `validate:"required"`
}

type Moogold struct {
	URI       string `validate:"required,url"`
	SecretKey string `validate:"required"`
	PartnerID string `validate:"required"`
}

type Jollymax struct {
	URI            string `validate:"required,url"`
	MerchantAppID  string `validate:"required"`
	MerchantNo     string `validate:"required"`
	PrivateKeyPath string `validate:"required"`

	// у шлюза JollyMax самоподписанный сертификат, поэтому проверка по умолчанию выключена
	InsecureSkipVerify bool
}

type Reconciler struct {
	Interval time.Duration `validate:"required,gt=0"`
}

type Catalog struct {
	CacheCapacity int           `validate:"gte=1"`
	CacheTTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "skyshop-gateway"),
			Topic:   env("KAFKA_TOPIC", "skyshop-orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "skyshop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Telegram: Telegram{
			Token:        env("TELEGRAM_BOT_TOKEN", ""),
			AdminChatIDs: envInt64s("TELEGRAM_ADMIN_CHAT_IDS"),
		},

		Vipayment: Vipayment{
			URI:  env("VIPAYMENT_URI", "https://vip-reseller.co.id/api"),
			Key:  env("VIPAYMENT_API_KEY", ""),
			Sign: env("VIPAYMENT_SIGN", ""),
		},

		Moogold: Moogold{
			URI:       env("MOOGOLD_URI", "https://moogold.com/wp-json/v1/api/"),
			SecretKey: env("MOOGOLD_SECRET_KEY", ""),
			PartnerID: env("MOOGOLD_PARTNER_ID", ""),
		},

		Jollymax: Jollymax{
			URI:            env("JOLLYMAX_URI", "https://api.jollymax.com/aggregate-pay/api/gateway"),
			MerchantAppID:  env("JOLLYMAX_MERCHANT_APP_ID", ""),
			MerchantNo:     env("JOLLYMAX_MERCHANT_NO", ""),
			PrivateKeyPath: env("JOLLYMAX_PRIVATE_KEY_PATH", "jollymax_private.pem"),

			InsecureSkipVerify: envBool("JOLLYMAX_INSECURE_SKIP_VERIFY", true),
		},

		Reconciler: Reconciler{
			Interval: envDuration("RECONCILER_INTERVAL", 2*time.Minute),
		},

		Catalog: Catalog{
			CacheCapacity: envInt("CATALOG_CACHE_CAPACITY", 128),
			CacheTTL:      envDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envInt64s(key string) []int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
