package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Store       StoreConfig     `mapstructure:"store"`
	Prefs       PrefsConfig     `mapstructure:"prefs"`
	Engine      EngineConfig    `mapstructure:"engine"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// StoreConfig 遠端食譜庫配置
type StoreConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PrefsConfig 偏好資料儲存配置
type PrefsConfig struct {
	RedisEnabled bool          `mapstructure:"redis_enabled"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	RedisDB      int           `mapstructure:"redis_db"`
	TTL          time.Duration `mapstructure:"ttl"`
	SearchCap    int           `mapstructure:"search_cap"`
}

// EngineConfig 比對與推薦引擎配置
type EngineConfig struct {
	SuggestionCount     int `mapstructure:"suggestion_count"`
	RecommendationCount int `mapstructure:"recommendation_count"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（沒有也沒關係，靠環境變數）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("store.base_url", "STORE_BASE_URL")
	viper.BindEnv("store.api_key", "STORE_API_KEY")
	viper.BindEnv("store.enabled", "STORE_ENABLED")
	viper.BindEnv("prefs.redis_enabled", "PREFS_REDIS_ENABLED")
	viper.BindEnv("prefs.redis_addr", "PREFS_REDIS_ADDR")
	viper.BindEnv("prefs.redis_db", "PREFS_REDIS_DB")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "store_base_url:", viper.GetString("store.base_url"), "store_api_key:", maskAPIKey(viper.GetString("store.api_key")))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "fridge-api")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 遠端食譜庫設定
	viper.SetDefault("store.enabled", false)
	viper.SetDefault("store.timeout", "15s")

	// 偏好資料設定
	viper.SetDefault("prefs.redis_enabled", false)
	viper.SetDefault("prefs.redis_addr", "localhost:6379")
	viper.SetDefault("prefs.redis_db", 0)
	viper.SetDefault("prefs.ttl", "720h") // 30 天
	viper.SetDefault("prefs.search_cap", 5)

	// 引擎設定
	viper.SetDefault("engine.suggestion_count", 3)
	viper.SetDefault("engine.recommendation_count", 3)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 重複請求視窗
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 遠端食譜庫啟用時必須有位址
	if config.Store.Enabled && config.Store.BaseURL == "" {
		return fmt.Errorf("store base url is required when store is enabled")
	}

	// 驗證偏好資料設定
	if config.Prefs.RedisEnabled && config.Prefs.RedisAddr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}
	if config.Prefs.SearchCap <= 0 {
		return fmt.Errorf("invalid search cap")
	}

	// 驗證引擎設定
	if config.Engine.SuggestionCount <= 0 {
		return fmt.Errorf("invalid suggestion count")
	}
	if config.Engine.RecommendationCount <= 0 {
		return fmt.Errorf("invalid recommendation count")
	}

	return nil
}
