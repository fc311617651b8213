package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Redis struct {
		Addr     string `yaml:"addr"` // пусто = realtime-публикация отключена
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Payments struct {
		// Доля платформы от бюджета задания. Раньше была зашита в код
		// литералом 0.1; теперь задается конфигурацией деплоймента.
		PlatformFeeRate float64 `yaml:"platform_fee_rate"`
		Currency        string  `yaml:"currency"`
	} `yaml:"payments"`

	Notifications struct {
		// Сколько дней хранить прочитанные уведомления до очистки воркером
		RetentionDays int `yaml:"retention_days"`
	} `yaml:"notifications"`

	RateLimit struct {
		PerSecond float64 `yaml:"per_second"`
		Burst     int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если DATABASE_URL задан в окружении - работаем от переменных окружения
// (docker/тесты), иначе читаем config/config.yaml.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = getenv("SERVER_ENV", "development")
	cfg.Server.Host = getenv("SERVER_HOST", "")
	cfg.Server.Port, _ = strconv.Atoi(getenv("SERVER_PORT", "4000"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(getenv("JWT_TTL", "60"))
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if rate := os.Getenv("PLATFORM_FEE_RATE"); rate != "" {
		cfg.Payments.PlatformFeeRate, _ = strconv.ParseFloat(rate, 64)
	}
	cfg.Payments.Currency = getenv("PAYMENT_CURRENCY", "")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Payments.PlatformFeeRate == 0 {
		cfg.Payments.PlatformFeeRate = 0.10
	}
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "INR"
	}
	if cfg.Notifications.RetentionDays == 0 {
		cfg.Notifications.RetentionDays = 30
	}
	if cfg.RateLimit.PerSecond == 0 {
		cfg.RateLimit.PerSecond = 20
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 40
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
