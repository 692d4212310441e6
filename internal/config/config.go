// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AI       AIConfig       `mapstructure:"ai"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" | "sqlite"
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// RedactPaths に前方一致するパスは Debug でもボディを記録しない
	RedactPaths []string `mapstructure:"redact_paths"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// AIConfig は言語モデル呼び出しの設定。プロセス全体のシングルトンにせず、
// 構築時に ai.NewGeminiClient / study.NewOrchestrator へ明示的に渡す。
type AIConfig struct {
	Endpoint         string        `mapstructure:"endpoint"`
	APIVersion       string        `mapstructure:"api_version"`
	Model            string        `mapstructure:"model"`
	APIKey           string        `mapstructure:"api_key"`
	Timeout          time.Duration `mapstructure:"timeout"`
	OrderMaxTokens   int           `mapstructure:"order_max_tokens"`
	HintMaxTokens    int           `mapstructure:"hint_max_tokens"`
	ExplainMaxTokens int           `mapstructure:"explain_max_tokens"`
}

type AppConfig struct {
	FrontMaxLen int `mapstructure:"front_max_len"` // プロンプトに埋め込む front の最大文字数
}

// Load は .env → config.yaml → 環境変数 (APP_ プレフィックス) の順に設定を読み込みます。
// path は config.yaml を探すディレクトリ。
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, relying on process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 慣例的な環境変数名もそのまま受け付ける
	_ = v.BindEnv("ai.api_key", "APP_AI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")
	_ = v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "JWT_SECRET_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	applyFallbacks(&cfg)

	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.AI.APIKey == "" {
		log.Println("Warning: AI API key is not set; study order will always use the default ranking.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Database Driver: %s", cfg.Database.Driver)
	log.Printf("AI Model: %s (timeout %s)", cfg.AI.Model, cfg.AI.Timeout)
	log.Printf("Auth Enabled: %t", cfg.Auth.Enabled)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.redact_paths", []string{"/api/v1/ai/"})
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("ai.endpoint", DefaultAIEndpoint)
	v.SetDefault("ai.api_version", DefaultAIAPIVersion)
	v.SetDefault("ai.model", DefaultAIModel)
	v.SetDefault("ai.timeout", DefaultAITimeout)
	v.SetDefault("ai.order_max_tokens", DefaultOrderMaxTokens)
	v.SetDefault("ai.hint_max_tokens", DefaultHintMaxTokens)
	v.SetDefault("ai.explain_max_tokens", DefaultExplainMaxTokens)
	v.SetDefault("app.front_max_len", DefaultFrontMaxLen)
}

// applyFallbacks は設定ファイルで不正値(0や空)が指定された場合に既定値へ戻します。
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.AI.Timeout <= 0 {
		log.Printf("AI timeout not set or invalid, using default '%s'", DefaultAITimeout)
		cfg.AI.Timeout = DefaultAITimeout
	}
	if cfg.AI.OrderMaxTokens <= 0 {
		cfg.AI.OrderMaxTokens = DefaultOrderMaxTokens
	}
	if cfg.AI.HintMaxTokens <= 0 {
		cfg.AI.HintMaxTokens = DefaultHintMaxTokens
	}
	if cfg.AI.ExplainMaxTokens <= 0 {
		cfg.AI.ExplainMaxTokens = DefaultExplainMaxTokens
	}
	if cfg.App.FrontMaxLen <= 0 {
		cfg.App.FrontMaxLen = DefaultFrontMaxLen
	}
}
